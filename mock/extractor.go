package mock

import (
	"iter"

	"github.com/fwojciec/newsfeed"
)

var _ newsfeed.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsfeed.Extractor.
type Extractor struct {
	ExtractFn func(html string) (iter.Seq[newsfeed.Entry], error)
}

func (e *Extractor) Extract(html string) (iter.Seq[newsfeed.Entry], error) {
	return e.ExtractFn(html)
}
