package report

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
	"github.com/tbbooher/ArgusPanoptes/internal/themes"
)

func testCategorizer() *themes.Categorizer {
	return themes.NewCategorizer(themes.DefaultTable())
}

func sysNames(systems []model.SystemRank) []string {
	names := make([]string, len(systems))
	for i, s := range systems {
		names[i] = s.SystemName
	}
	return names
}

func TestBuildContext_Tiers(t *testing.T) {
	in := Inputs{
		TopSystems: []model.SystemRank{
			{SystemID: "a", SystemName: "A", BooksHeld: 30},
			{SystemID: "b", SystemName: "B", BooksHeld: 10},
			{SystemID: "c", SystemName: "C", BooksHeld: 1},
		},
	}

	ctx := BuildContext(in, testCategorizer(), time.Now())
	assert.Equal(t, []string{"A"}, sysNames(ctx.Tier1))
	assert.Equal(t, []string{"B"}, sysNames(ctx.Tier2))
	assert.Equal(t, []string{"C"}, sysNames(ctx.Tier3))
}

func TestBuildContext_TierBoundaries(t *testing.T) {
	in := Inputs{
		TopSystems: []model.SystemRank{
			{SystemID: "t1", SystemName: "Exactly20", BooksHeld: 20},
			{SystemID: "t2", SystemName: "Exactly19", BooksHeld: 19},
			{SystemID: "t3", SystemName: "Exactly5", BooksHeld: 5},
			{SystemID: "t4", SystemName: "Exactly4", BooksHeld: 4},
			{SystemID: "t5", SystemName: "Exactly1", BooksHeld: 1},
			{SystemID: "t6", SystemName: "Zero", BooksHeld: 0},
		},
	}

	ctx := BuildContext(in, testCategorizer(), time.Now())
	assert.Equal(t, []string{"Exactly20"}, sysNames(ctx.Tier1))
	assert.Equal(t, []string{"Exactly19", "Exactly5"}, sysNames(ctx.Tier2))
	assert.Equal(t, []string{"Exactly4", "Exactly1"}, sysNames(ctx.Tier3))
}

func TestFoundPercent(t *testing.T) {
	assert.InDelta(t, 15.0, FoundPercent(model.SummaryStats{BooksScanned: 1000, BooksFound: 150}), 1e-9)
	assert.Zero(t, FoundPercent(model.SummaryStats{BooksScanned: 0, BooksFound: 0}))
	assert.InDelta(t, 33.3, FoundPercent(model.SummaryStats{BooksScanned: 3, BooksFound: 1}), 1e-9)
}

func TestBuildContext_MetadataJoin(t *testing.T) {
	in := Inputs{
		TopSystems: []model.SystemRank{
			{SystemID: "aus", SystemName: "Austin Public Library", BooksHeld: 40},
			{SystemID: "ghost", SystemName: "No Metadata", BooksHeld: 3},
		},
		Metadata: []model.SystemMeta{
			{ID: "aus", Vendor: "bibliocommons", Region: "Travis County", City: "Austin", Enabled: true},
		},
		Holdings: map[string]model.Holdings{
			"aus": {Books: []model.Book{
				{Title: "A Very Long Book Title That Exceeds The Thirty Character Preview"},
				{Title: "Second"},
				{Title: "Third"},
				{Title: "Fourth"},
			}},
		},
	}

	ctx := BuildContext(in, testCategorizer(), time.Now())
	require.Len(t, ctx.TopSystems, 2)

	aus := ctx.TopSystems[0]
	assert.Equal(t, "bibliocommons", aus.Vendor)
	assert.Equal(t, "Travis County", aus.Region)
	assert.Equal(t, "Austin", aus.City)
	assert.Len(t, aus.Books, 4)
	assert.Equal(t, "A Very Long Book Title That Ex; Second; Third", aus.TopTitles)

	// Systems without metadata fall back to the unknown vendor and
	// stay out of every metro subset.
	ghost := ctx.TopSystems[1]
	assert.Equal(t, "unknown", ghost.Vendor)
	assert.Empty(t, ghost.Region)

	// The inputs are not mutated.
	assert.Empty(t, in.TopSystems[0].Vendor)
}

func TestBuildContext_TitlePreviewKeepsRunesWhole(t *testing.T) {
	in := Inputs{
		TopSystems: []model.SystemRank{
			{SystemID: "lar", SystemName: "Laredo Public Library", BooksHeld: 6},
		},
		Holdings: map[string]model.Holdings{
			"lar": {Books: []model.Book{
				{Title: "Niños y niñas del mundo entero, un cuento ilustrado"},
			}},
		},
	}

	ctx := BuildContext(in, testCategorizer(), time.Now())
	require.Len(t, ctx.TopSystems, 1)

	preview := ctx.TopSystems[0].TopTitles
	assert.True(t, utf8.ValidString(preview))
	assert.Equal(t, 30, utf8.RuneCountInString(preview))
	assert.Equal(t, "Niños y niñas del mundo entero", preview)
}

func TestBuildContext_MetroSubsets(t *testing.T) {
	in := Inputs{
		TopSystems: []model.SystemRank{
			{SystemID: "d", SystemName: "Dallas", BooksHeld: 10},
			{SystemID: "h", SystemName: "Houston", BooksHeld: 20},
			{SystemID: "a", SystemName: "Austin", BooksHeld: 30},
			{SystemID: "s", SystemName: "San Antonio", BooksHeld: 40},
			{SystemID: "e", SystemName: "El Paso", BooksHeld: 50},
		},
		Metadata: []model.SystemMeta{
			{ID: "d", Region: "Dallas County"},
			{ID: "h", Region: "Harris County"},
			{ID: "a", Region: "Travis County"},
			{ID: "s", Region: "Bexar County"},
			{ID: "e", Region: "El Paso County"},
		},
	}

	ctx := BuildContext(in, testCategorizer(), time.Now())
	assert.Equal(t, []string{"Dallas"}, sysNames(ctx.DFWSystems))
	assert.Equal(t, []string{"Houston"}, sysNames(ctx.HoustonSystems))
	assert.Equal(t, []string{"Austin"}, sysNames(ctx.AustinSystems))
	assert.Equal(t, []string{"San Antonio"}, sysNames(ctx.SASystems))

	assert.Equal(t, 10, ctx.DFWBooks)
	assert.Equal(t, 20, ctx.HoustonBooks)
	assert.Equal(t, 30, ctx.AustinBooks)
	assert.Equal(t, 40, ctx.SABooks)

	// El Paso County matches no roster: in no subset, but still in
	// the main list.
	total := len(ctx.DFWSystems) + len(ctx.HoustonSystems) + len(ctx.AustinSystems) + len(ctx.SASystems)
	assert.Equal(t, 4, total)
	assert.Len(t, ctx.TopSystems, 5)
}

func TestBuildContext_Aggregates(t *testing.T) {
	in := Inputs{
		Stats: model.SummaryStats{BooksScanned: 200, BooksFound: 60, BooksNotFound: 140},
		TopBooks: []model.Book{
			{Title: "Gender Queer", SystemCount: 12},
			{Title: "Plain Title", SystemCount: 8},
		},
		NotFound: []model.Book{
			{Title: "Another Gender Queer Story", SystemCount: 99}, // weight reset to zero
		},
		TopSystems: []model.SystemRank{
			{SystemID: "1", SystemName: "S1", BooksHeld: 25, TotalCopies: 100},
			{SystemID: "2", SystemName: "S2", BooksHeld: 15, TotalCopies: 50},
			{SystemID: "3", SystemName: "S3", BooksHeld: 10, TotalCopies: 30},
			{SystemID: "4", SystemName: "S4", BooksHeld: 8, TotalCopies: 20},
			{SystemID: "5", SystemName: "S5", BooksHeld: 6, TotalCopies: 10},
			{SystemID: "6", SystemName: "S6", BooksHeld: 4, TotalCopies: 5},
		},
	}

	ctx := BuildContext(in, testCategorizer(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "March 14, 2026", ctx.ReportDate)
	assert.InDelta(t, 30.0, ctx.FoundPct, 1e-9)
	assert.Equal(t, 215, ctx.TotalCopies)
	assert.Equal(t, 210, ctx.Top5Copies)
	assert.Equal(t, "Gender Queer", ctx.TopBook.Title)
	assert.Equal(t, "S1", ctx.TopSystem.SystemName)

	st := ctx.Themes["Gender Identity & Transgender"]
	assert.Equal(t, 2, st.Count)
	// The not-found title contributes zero weight.
	assert.Equal(t, 12, st.TotalHoldings)
}

func TestBuildContext_EmptyInputs(t *testing.T) {
	ctx := BuildContext(Inputs{}, testCategorizer(), time.Now())

	assert.Zero(t, ctx.FoundPct)
	assert.Empty(t, ctx.TopBook.Title)
	assert.Empty(t, ctx.TopSystem.SystemName)
	assert.Empty(t, ctx.Tier1)
	assert.Len(t, ctx.Themes, len(themes.DefaultTable()))
}
