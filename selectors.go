package newsfeed

import "strings"

// Selectors describes the markup of one news card as CSS selectors.
// Rubric and Link are looked up inside the card, Info inside Link, and
// Title, Description and Time inside Info.
type Selectors struct {
	Card        string `yaml:"card" json:"card"`
	Rubric      string `yaml:"rubric" json:"rubric"`
	Link        string `yaml:"link" json:"link"`
	Info        string `yaml:"info" json:"info"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Time        string `yaml:"time" json:"time"`
	TimeAttr    string `yaml:"time_attr" json:"timeAttr"`
}

// DefaultSelectors returns the card layout of the iz.ru rubric listing.
func DefaultSelectors() Selectors {
	return Selectors{
		Card:        "div.node__cart__item.show_views_and_comments",
		Rubric:      "div.node__cart__item__category_news div a",
		Link:        "a.node__cart__item__inside",
		Info:        "div.node__cart__item__inside__info",
		Title:       "div.node__cart__item__inside__info__title span",
		Description: "div.node__cart__item__inside__info__description",
		Time:        "time",
		TimeAttr:    "datetime",
	}
}

// WithDefaults returns a copy of s where every empty field is taken from
// DefaultSelectors. TimeAttr is lowercased since parsed attribute names are.
func (s Selectors) WithDefaults() Selectors {
	d := DefaultSelectors()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Card, d.Card)
	fill(&s.Rubric, d.Rubric)
	fill(&s.Link, d.Link)
	fill(&s.Info, d.Info)
	fill(&s.Title, d.Title)
	fill(&s.Description, d.Description)
	fill(&s.Time, d.Time)
	fill(&s.TimeAttr, d.TimeAttr)
	s.TimeAttr = strings.ToLower(s.TimeAttr)
	return s
}

// Validate returns an error if any selector is empty.
func (s Selectors) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"card", s.Card},
		{"rubric", s.Rubric},
		{"link", s.Link},
		{"info", s.Info},
		{"title", s.Title},
		{"description", s.Description},
		{"time", s.Time},
		{"time_attr", s.TimeAttr},
	}
	for _, f := range fields {
		if f.value == "" {
			return Errorf(EINVALID, "selector %q required", f.name)
		}
	}
	return nil
}
