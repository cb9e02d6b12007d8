package newsfeed

import (
	"fmt"
	"strings"
)

// FormatSummary renders one line per category with its item count,
// in feed order.
func FormatSummary(feed *Feed) string {
	var b strings.Builder
	b.WriteString("Found news by category:\n")
	if feed.Len() == 0 {
		b.WriteString("No categories found.\n")
		return b.String()
	}
	for category, items := range feed.All() {
		fmt.Fprintf(&b, "- %s: %d\n", category, len(items))
	}
	return b.String()
}
