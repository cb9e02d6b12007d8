// Package fs provides file-based loading of page snapshots and storage of
// feed reports.
package fs

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/newsfeed"
	"golang.org/x/net/html/charset"
)

// Ensure Loader implements newsfeed.Loader at compile time.
var _ newsfeed.Loader = (*Loader)(nil)

// Loader reads saved HTML pages from the local filesystem.
type Loader struct {
	charset string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCharset decodes snapshots from the named character set (e.g.
// "windows-1251") instead of reading them as UTF-8.
func WithCharset(label string) LoaderOption {
	return func(l *Loader) {
		l.charset = label
	}
}

// NewLoader creates a new Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the contents of the file at path as UTF-8 text.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", newsfeed.Errorf(newsfeed.ENOTFOUND,
			"file %q not found. Save the listing page from the Web Archive as %q first.", path, path)
	}
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", newsfeed.Errorf(newsfeed.EINVALID, "%q is a directory, not an HTML file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if l.charset != "" {
		r, err = charset.NewReaderLabel(l.charset, f)
		if err != nil {
			return "", newsfeed.Errorf(newsfeed.EINVALID, "unsupported charset %q", l.charset)
		}
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
