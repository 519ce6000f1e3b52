package themes

import (
	"sort"
	"strings"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// maxExamples caps the example titles kept per category.
const maxExamples = 5

// Categorizer buckets book titles into thematic categories by
// case-insensitive keyword substring matching. Classification is
// non-exclusive: a title can land in zero, one, or several
// categories.
type Categorizer struct {
	table []Category
}

// NewCategorizer creates a categorizer over the given keyword table.
func NewCategorizer(table []Category) *Categorizer {
	return &Categorizer{table: table}
}

// Categories returns the table's category names in table order.
func (c *Categorizer) Categories() []string {
	names := make([]string, len(c.table))
	for i, cat := range c.table {
		names[i] = cat.Name
	}
	return names
}

// Categorize returns the categories whose keywords match the title,
// in table order.
func (c *Categorizer) Categorize(title string) []string {
	lower := strings.ToLower(title)

	var cats []string
	for _, cat := range c.table {
		if matches(cat, lower) {
			cats = append(cats, cat.Name)
		}
	}
	return cats
}

// matches reports whether any keyword of the category occurs in the
// lowercased title.
func matches(cat Category, lowerTitle string) bool {
	for _, kw := range cat.Keywords {
		if strings.Contains(lowerTitle, kw) {
			return true
		}
	}
	return false
}

// Stat summarizes the books matching one category.
type Stat struct {
	Count           int      `json:"count"`
	Examples        []string `json:"examples"`
	TopSystemCounts []int    `json:"top_system_counts"`
	TotalHoldings   int      `json:"total_holdings"`
}

// BuildStats classifies every book and aggregates per-category
// counts, example titles, and total holding weight. Examples are the
// up-to-five matches with the highest system counts; ties keep their
// original order.
func (c *Categorizer) BuildStats(books []model.Book) map[string]Stat {
	stats := make(map[string]Stat, len(c.table))

	for _, cat := range c.table {
		var matching []model.Book
		for _, b := range books {
			if matches(cat, strings.ToLower(b.Title)) {
				matching = append(matching, b)
			}
		}

		sort.SliceStable(matching, func(i, j int) bool {
			return matching[i].SystemCount > matching[j].SystemCount
		})

		st := Stat{Count: len(matching)}
		for _, b := range matching {
			st.TotalHoldings += b.SystemCount
		}
		for i, b := range matching {
			if i == maxExamples {
				break
			}
			st.Examples = append(st.Examples, b.Title)
			st.TopSystemCounts = append(st.TopSystemCounts, b.SystemCount)
		}

		stats[cat.Name] = st
	}

	return stats
}
