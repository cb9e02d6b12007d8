// Package yaml loads selector profiles from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/newsfeed"
	"github.com/fwojciec/newsfeed/goquery"
	yaml "gopkg.in/yaml.v3"
)

// LoadSelectors reads a selector profile from path. Keys left out of the
// file keep their default values.
func LoadSelectors(path string) (newsfeed.Selectors, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return newsfeed.Selectors{}, newsfeed.Errorf(newsfeed.ENOTFOUND, "profile %q not found", path)
	}
	if err != nil {
		return newsfeed.Selectors{}, err
	}
	return ParseSelectors(data)
}

// ParseSelectors decodes a selector profile. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func ParseSelectors(data []byte) (newsfeed.Selectors, error) {
	var s newsfeed.Selectors

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return newsfeed.Selectors{}, newsfeed.Errorf(newsfeed.EINVALID, "invalid profile: %v", err)
	}

	s = s.WithDefaults()
	if err := s.Validate(); err != nil {
		return newsfeed.Selectors{}, err
	}
	if err := goquery.CompileSelectors(s); err != nil {
		return newsfeed.Selectors{}, err
	}
	return s, nil
}
