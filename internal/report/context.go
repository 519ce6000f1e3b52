// Package report assembles the narrative template context and renders
// the typeset document sources.
package report

import (
	"math"
	"strings"
	"time"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
	"github.com/tbbooher/ArgusPanoptes/internal/themes"
)

// Holdings-count thresholds for the narrative tiers. The tiers are
// mutually exclusive; the boundary values 20, 5, and 1 belong to the
// tier they open.
const (
	tier1Min = 20
	tier2Min = 5
	tier3Min = 1
)

// topTitleCount and topTitleChars shape the per-system title preview.
const (
	topTitleCount = 3
	topTitleChars = 30
)

// Metro region rosters. A system whose region matches none of these
// appears in no metro subset; the subsets are not a partition.
var (
	dfwCounties = []string{
		"Dallas County", "Tarrant County", "Collin County",
		"Denton County", "Ellis County", "Johnson County",
		"Rockwall County", "Kaufman County", "Wise County",
	}
	houstonCounties = []string{
		"Harris County", "Fort Bend County", "Montgomery County",
		"Galveston County", "Brazoria County",
	}
	austinCounties = []string{
		"Travis County", "Williamson County", "Hays County",
	}
	sanAntonioCounties = []string{
		"Bexar County",
	}
)

// Inputs groups the loaded documents the context builder consumes.
type Inputs struct {
	Stats      model.SummaryStats
	TopBooks   []model.Book
	TopSystems []model.SystemRank
	Holdings   map[string]model.Holdings
	NotFound   []model.Book
	Metadata   []model.SystemMeta
}

// Context carries every value the narrative templates reference.
// Missing data shows up as zero values, never as absent fields.
type Context struct {
	ReportDate string
	Stats      model.SummaryStats
	FoundPct   float64

	TopBook    model.Book
	TopSystem  model.SystemRank
	TopBooks   []model.Book
	TopSystems []model.SystemRank

	Tier1 []model.SystemRank
	Tier2 []model.SystemRank
	Tier3 []model.SystemRank

	NotFound []model.Book
	Themes   map[string]themes.Stat

	TotalCopies int
	Top5Copies  int

	DFWSystems     []model.SystemRank
	HoustonSystems []model.SystemRank
	AustinSystems  []model.SystemRank
	SASystems      []model.SystemRank
	DFWBooks       int
	HoustonBooks   int
	AustinBooks    int
	SABooks        int
}

// BuildContext joins system metadata onto the ranked list, partitions
// systems into tiers and metro subsets, classifies themes, and
// computes the headline aggregates. Pure: the inputs are left
// untouched.
func BuildContext(in Inputs, cat *themes.Categorizer, now time.Time) Context {
	metaByID := make(map[string]model.SystemMeta, len(in.Metadata))
	for _, m := range in.Metadata {
		metaByID[m.ID] = m
	}

	systems := make([]model.SystemRank, len(in.TopSystems))
	copy(systems, in.TopSystems)
	for i := range systems {
		enrich(&systems[i], metaByID, in.Holdings)
	}

	ctx := Context{
		ReportDate: now.Format("January 2, 2006"),
		Stats:      in.Stats,
		FoundPct:   FoundPercent(in.Stats),
		TopBooks:   in.TopBooks,
		TopSystems: systems,
		NotFound:   in.NotFound,
	}

	if len(in.TopBooks) > 0 {
		ctx.TopBook = in.TopBooks[0]
	}
	if len(systems) > 0 {
		ctx.TopSystem = systems[0]
	}

	for _, s := range systems {
		switch {
		case s.BooksHeld >= tier1Min:
			ctx.Tier1 = append(ctx.Tier1, s)
		case s.BooksHeld >= tier2Min:
			ctx.Tier2 = append(ctx.Tier2, s)
		case s.BooksHeld >= tier3Min:
			ctx.Tier3 = append(ctx.Tier3, s)
		}

		ctx.TotalCopies += s.TotalCopies

		switch {
		case containsRegion(dfwCounties, s.Region):
			ctx.DFWSystems = append(ctx.DFWSystems, s)
			ctx.DFWBooks += s.BooksHeld
		case containsRegion(houstonCounties, s.Region):
			ctx.HoustonSystems = append(ctx.HoustonSystems, s)
			ctx.HoustonBooks += s.BooksHeld
		case containsRegion(austinCounties, s.Region):
			ctx.AustinSystems = append(ctx.AustinSystems, s)
			ctx.AustinBooks += s.BooksHeld
		case containsRegion(sanAntonioCounties, s.Region):
			ctx.SASystems = append(ctx.SASystems, s)
			ctx.SABooks += s.BooksHeld
		}
	}

	for i, s := range systems {
		if i == 5 {
			break
		}
		ctx.Top5Copies += s.TotalCopies
	}

	// Not-found titles join the classification with zero weight.
	classified := make([]model.Book, 0, len(in.TopBooks)+len(in.NotFound))
	classified = append(classified, in.TopBooks...)
	for _, b := range in.NotFound {
		b.SystemCount = 0
		classified = append(classified, b)
	}
	ctx.Themes = cat.BuildStats(classified)

	return ctx
}

// enrich joins metadata and the holdings preview onto one system.
func enrich(s *model.SystemRank, metaByID map[string]model.SystemMeta, holdings map[string]model.Holdings) {
	meta, ok := metaByID[s.SystemID]
	if ok {
		s.City = meta.City
		s.Region = meta.Region
		s.Vendor = meta.Vendor
	}
	if s.Vendor == "" {
		s.Vendor = "unknown"
	}

	s.Books = holdings[s.SystemID].Books

	previews := make([]string, 0, topTitleCount)
	for i, b := range s.Books {
		if i == topTitleCount {
			break
		}
		title := b.Title
		if r := []rune(title); len(r) > topTitleChars {
			title = string(r[:topTitleChars])
		}
		previews = append(previews, title)
	}
	s.TopTitles = strings.Join(previews, "; ")
}

// FoundPercent returns the found rate as a percentage rounded to one
// decimal place, or 0 when nothing was scanned.
func FoundPercent(s model.SummaryStats) float64 {
	if s.BooksScanned <= 0 {
		return 0
	}
	pct := 100 * float64(s.BooksFound) / float64(s.BooksScanned)
	return math.Round(pct*10) / 10
}

func containsRegion(list []string, region string) bool {
	for _, r := range list {
		if r == region {
			return true
		}
	}
	return false
}
