package mock

import (
	"context"

	"github.com/fwojciec/newsfeed"
)

var _ newsfeed.Loader = (*Loader)(nil)

// Loader is a mock implementation of newsfeed.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, source string) (string, error)
}

func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	return l.LoadFn(ctx, source)
}
