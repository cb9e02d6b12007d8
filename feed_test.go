package newsfeed_test

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
	"testing"

	"github.com/fwojciec/newsfeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(es ...newsfeed.Entry) iter.Seq[newsfeed.Entry] {
	return slices.Values(es)
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence yields empty feed", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries())

		assert.Equal(t, 0, feed.Len())
		assert.Equal(t, 0, feed.Total())
		assert.Empty(t, feed.Categories())
		assert.Empty(t, feed.Groups())
	})

	t.Run("keeps first-seen category order", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Общество", Item: newsfeed.Item{Title: "A"}},
			newsfeed.Entry{Category: "Армия", Item: newsfeed.Item{Title: "B"}},
			newsfeed.Entry{Category: "Общество", Item: newsfeed.Item{Title: "C"}},
			newsfeed.Entry{Category: "Здоровье", Item: newsfeed.Item{Title: "D"}},
		))

		assert.Equal(t, []string{"Общество", "Армия", "Здоровье"}, feed.Categories())
		assert.Equal(t, 3, feed.Len())
		assert.Equal(t, 4, feed.Total())
	})

	t.Run("keeps document order within a category", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Society", Item: newsfeed.Item{Title: "first"}},
			newsfeed.Entry{Category: "Army", Item: newsfeed.Item{Title: "other"}},
			newsfeed.Entry{Category: "Society", Item: newsfeed.Item{Title: "second"}},
		))

		items := feed.Items("Society")
		require.Len(t, items, 2)
		assert.Equal(t, "first", items[0].Title)
		assert.Equal(t, "second", items[1].Title)
	})

	t.Run("does not merge categories differing in case or spacing", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Society"},
			newsfeed.Entry{Category: "society"},
			newsfeed.Entry{Category: "Soci ety"},
		))

		assert.Equal(t, []string{"Society", "society", "Soci ety"}, feed.Categories())
	})

	t.Run("does not de-duplicate identical items", func(t *testing.T) {
		t.Parallel()

		item := newsfeed.Item{Title: "Same", URL: "/same"}
		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Army", Item: item},
			newsfeed.Entry{Category: "Army", Item: item},
		))

		assert.Len(t, feed.Items("Army"), 2)
	})

	t.Run("returns nil items for unknown category", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(newsfeed.Entry{Category: "Army"}))

		assert.Nil(t, feed.Items("Sport"))
	})

	t.Run("returned slices do not alias the feed", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Army", Item: newsfeed.Item{Title: "original"}},
		))

		items := feed.Items("Army")
		items[0].Title = "changed"
		cats := feed.Categories()
		cats[0] = "changed"

		assert.Equal(t, "original", feed.Items("Army")[0].Title)
		assert.Equal(t, []string{"Army"}, feed.Categories())
	})

	t.Run("stops consuming when iteration of All stops", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "A"},
			newsfeed.Entry{Category: "B"},
			newsfeed.Entry{Category: "C"},
		))

		var seen []string
		for category := range feed.All() {
			seen = append(seen, category)
			if category == "B" {
				break
			}
		}

		assert.Equal(t, []string{"A", "B"}, seen)
	})
}

func TestFeed_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes categories in feed order", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Society", Item: newsfeed.Item{
				Title:    "X",
				URL:      "https://iz.ru/1",
				Datetime: "2024-01-01T10:00",
				TimeText: "10:00",
			}},
			newsfeed.Entry{Category: "Army", Item: newsfeed.Item{
				Title:       "Y",
				Description: "Z",
				URL:         "https://iz.ru/2",
			}},
		))

		data, err := json.Marshal(feed)
		require.NoError(t, err)

		want := `{"Society":[{"title":"X","description":"","url":"https://iz.ru/1","datetime":"2024-01-01T10:00","time_text":"10:00"}],` +
			`"Army":[{"title":"Y","description":"Z","url":"https://iz.ru/2","datetime":"","time_text":""}]}`
		assert.Equal(t, want, string(data))
	})

	t.Run("encodes empty feed as empty object", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(newsfeed.Aggregate(entries()))
		require.NoError(t, err)

		assert.Equal(t, "{}", string(data))
	})

	t.Run("renders non-ASCII and HTML characters literally", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Наука & техника", Item: newsfeed.Item{Title: "<Ракета>"}},
		))

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		require.NoError(t, enc.Encode(feed))

		assert.Contains(t, buf.String(), `"Наука & техника"`)
		assert.Contains(t, buf.String(), `"<Ракета>"`)
	})
}

func TestFeed_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()

		data := `{"Zeta":[{"title":"z"}],"Alpha":[{"title":"a1"},{"title":"a2"}],"Mid":[{"title":"m"}]}`

		var feed newsfeed.Feed
		require.NoError(t, json.Unmarshal([]byte(data), &feed))

		assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, feed.Categories())
		assert.Equal(t, 4, feed.Total())
		assert.Equal(t, "a2", feed.Items("Alpha")[1].Title)
	})

	t.Run("round trips through MarshalJSON", func(t *testing.T) {
		t.Parallel()

		original := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Армия", Item: newsfeed.Item{Title: "Y", Description: "Z"}},
			newsfeed.Entry{Category: "Общество", Item: newsfeed.Item{Title: "X", TimeText: "10:00"}},
		))

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded newsfeed.Feed
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, original.Groups(), decoded.Groups())
	})

	t.Run("keeps empty categories", func(t *testing.T) {
		t.Parallel()

		var feed newsfeed.Feed
		require.NoError(t, json.Unmarshal([]byte(`{"Empty":[]}`), &feed))

		assert.Equal(t, []string{"Empty"}, feed.Categories())
		assert.Equal(t, 0, feed.Total())
	})

	t.Run("rejects non-object input", func(t *testing.T) {
		t.Parallel()

		var feed newsfeed.Feed
		err := json.Unmarshal([]byte(`[1,2]`), &feed)

		require.Error(t, err)
	})
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	t.Run("lists categories with counts in feed order", func(t *testing.T) {
		t.Parallel()

		feed := newsfeed.Aggregate(entries(
			newsfeed.Entry{Category: "Общество"},
			newsfeed.Entry{Category: "Армия"},
			newsfeed.Entry{Category: "Общество"},
		))

		got := newsfeed.FormatSummary(feed)

		want := "Found news by category:\n- Общество: 2\n- Армия: 1\n"
		assert.Equal(t, want, got)
	})

	t.Run("reports zero categories for empty feed", func(t *testing.T) {
		t.Parallel()

		got := newsfeed.FormatSummary(newsfeed.Aggregate(entries()))

		assert.Equal(t, "Found news by category:\nNo categories found.\n", got)
	})
}
