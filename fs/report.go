package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fwojciec/newsfeed"
)

// EncodeReport writes feed as indented JSON. Non-ASCII and HTML characters
// are written literally and categories keep feed order.
func EncodeReport(w io.Writer, feed *newsfeed.Feed) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return err
	}
	_, err := w.Write(unescapeSeparators(buf.Bytes()))
	return err
}

// unescapeSeparators turns the \u2028 and \u2029 escapes that encoding/json
// always emits back into literal runes. Escaped backslashes are skipped as a
// pair so text like \\u2028 is left alone.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+6 <= len(b) {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = utf8.AppendRune(out, '\u2028')
				i += 5
				continue
			case "2029":
				out = utf8.AppendRune(out, '\u2029')
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// ReadReport decodes a report written by WriteReport, keeping category order.
func ReadReport(path string) (*newsfeed.Feed, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, newsfeed.Errorf(newsfeed.ENOTFOUND, "report %q not found. Run 'newsfeed parse' first.", path)
	}
	if err != nil {
		return nil, err
	}

	var feed newsfeed.Feed
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, newsfeed.Errorf(newsfeed.EINVALID, "report %q is not a feed: %s", path, err)
	}
	return &feed, nil
}

// Ensure ReportWriter implements newsfeed.ReportWriter at compile time.
var _ newsfeed.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes feed reports as JSON files.
// The report is written to path.tmp and renamed into place, so readers
// never observe a partially written file.
type ReportWriter struct {
	path string
}

// NewReportWriter creates a ReportWriter targeting path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// Path returns the report location.
func (w *ReportWriter) Path() string {
	return w.path
}

func (w *ReportWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteReport encodes feed to the report file, replacing any previous one.
func (w *ReportWriter) WriteReport(ctx context.Context, feed *newsfeed.Feed) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(w.tempPath())
	if err != nil {
		return err
	}

	if err := EncodeReport(f, feed); err != nil {
		f.Close()
		os.Remove(w.tempPath())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(w.tempPath())
		return err
	}

	return os.Rename(w.tempPath(), w.path)
}
