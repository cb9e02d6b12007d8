package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/newsfeed"
	"github.com/fwojciec/newsfeed/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectors(t *testing.T) {
	t.Parallel()

	t.Run("overrides given keys and keeps defaults for the rest", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
card: article.news-card
rubric: .news-card__rubric a
time_attr: data-published
`)

		s, err := yaml.ParseSelectors(data)

		require.NoError(t, err)
		assert.Equal(t, "article.news-card", s.Card)
		assert.Equal(t, ".news-card__rubric a", s.Rubric)
		assert.Equal(t, "data-published", s.TimeAttr)
		assert.Equal(t, newsfeed.DefaultSelectors().Link, s.Link)
		assert.Equal(t, newsfeed.DefaultSelectors().Title, s.Title)
	})

	t.Run("lowercases time attribute", func(t *testing.T) {
		t.Parallel()

		s, err := yaml.ParseSelectors([]byte("time_attr: dateTime\n"))

		require.NoError(t, err)
		assert.Equal(t, "datetime", s.TimeAttr)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		t.Parallel()

		s, err := yaml.ParseSelectors(nil)

		require.NoError(t, err)
		assert.Equal(t, newsfeed.DefaultSelectors(), s)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseSelectors([]byte("cards: div.card\n"))

		require.Error(t, err)
		assert.Equal(t, newsfeed.EINVALID, newsfeed.ErrorCode(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseSelectors([]byte("card: [unterminated\n"))

		require.Error(t, err)
		assert.Equal(t, newsfeed.EINVALID, newsfeed.ErrorCode(err))
	})

	t.Run("rejects selector that does not compile", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseSelectors([]byte("title: \"div[[[\"\n"))

		require.Error(t, err)
		assert.Equal(t, newsfeed.EINVALID, newsfeed.ErrorCode(err))
	})
}

func TestLoadSelectors(t *testing.T) {
	t.Parallel()

	t.Run("reads profile from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("link: a.card-link\n"), 0644))

		s, err := yaml.LoadSelectors(path)

		require.NoError(t, err)
		assert.Equal(t, "a.card-link", s.Link)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadSelectors(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, newsfeed.ENOTFOUND, newsfeed.ErrorCode(err))
	})
}
