package chart

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde...", truncate("abcdefgh", 5))

	// A cut landing inside a multibyte rune must not leave invalid
	// UTF-8 in a figure label.
	got := truncate("Mamá and Me at the Mercado", 4)
	assert.Equal(t, "Mamá...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "abc", clip("abc", 5))
	assert.Equal(t, "abcde", clip("abcdefgh", 5))

	got := clip("Cafés of the World", 4)
	assert.Equal(t, "Café", got)
	assert.True(t, utf8.ValidString(got))
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "Austin", shortLabel("Austin Public Library"))
	assert.Equal(t, "Harris County", shortLabel("Harris County Library System"))
	assert.Equal(t, "Plano", shortLabel("Plano"))
}

func TestHeadSystems(t *testing.T) {
	systems := []model.SystemRank{
		{SystemName: "small", BooksHeld: 2},
		{SystemName: "big", BooksHeld: 30},
		{SystemName: "mid", BooksHeld: 10},
	}

	top := headSystems(systems, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "big", top[0].SystemName)
	assert.Equal(t, "mid", top[1].SystemName)
	// The caller's slice keeps its order.
	assert.Equal(t, "small", systems[0].SystemName)
}

func TestOffsetXYs(t *testing.T) {
	xys := offsetXYs(plotter.Values{3, 7}, 0.5)
	require.Len(t, xys, 2)
	assert.Equal(t, plotter.XY{X: 3.5, Y: 0}, xys[0])
	assert.Equal(t, plotter.XY{X: 7.5, Y: 1}, xys[1])
}

func TestCountLabels(t *testing.T) {
	assert.Equal(t, []string{"3", "12"}, countLabels(plotter.Values{3, 12}))
}

func TestWedgeXYs_ClosesRing(t *testing.T) {
	pts := wedgeXYs(0, 1, 0.6, 1)
	require.NotEmpty(t, pts)

	// Starts on the outer arc at a0, ends on the inner arc at a0.
	assert.InDelta(t, 1.0, pts[0].X, 1e-9)
	assert.InDelta(t, 0.0, pts[0].Y, 1e-9)
	last := pts[len(pts)-1]
	assert.InDelta(t, 0.6, last.X, 1e-9)
	assert.InDelta(t, 0.0, last.Y, 1e-9)
}

func TestBuilderRendersAllFigures(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, DefaultPalette(), 25, zap.NewNop())

	systems := []model.SystemRank{
		{SystemID: "a", SystemName: "Austin Public Library", BooksHeld: 120, TotalCopies: 400, TotalAvailable: 300},
		{SystemID: "b", SystemName: "Harris County Public Library", BooksHeld: 90, TotalCopies: 250, TotalAvailable: 100},
		{SystemID: "c", SystemName: "No Copies System", BooksHeld: 5, TotalCopies: 0, TotalAvailable: 0},
	}
	books := []model.Book{
		{Title: "Gender Queer", Authors: model.AuthorList{"Maia Kobabe"}, SystemCount: 40},
		{Title: "All Boys Aren't Blue", Authors: model.AuthorList{"George M. Johnson"}, SystemCount: 31},
	}
	metas := []model.SystemMeta{
		{ID: "a", Vendor: "sirsi_dynix", Enabled: true},
		{ID: "b", Vendor: "polaris", Enabled: true},
		{ID: "c", Vendor: "polaris", Enabled: false},
	}
	stats := model.SummaryStats{BooksScanned: 100, BooksFound: 60, BooksNotFound: 40}

	require.NoError(t, b.TopSystemsBar(systems))
	require.NoError(t, b.TopBooksBar(books))
	require.NoError(t, b.AvailabilityBar(systems))
	require.NoError(t, b.BooksPerSystemHist(systems))
	require.NoError(t, b.SystemsPerBookHist(books))
	require.NoError(t, b.VendorDonut(metas))
	require.NoError(t, b.FoundDonut(stats))
	require.NoError(t, b.CopiesScatter(systems))

	want := []string{
		"top_systems_bar.pdf",
		"top_books_bar.pdf",
		"availability_bar.pdf",
		"books_per_system_hist.pdf",
		"systems_per_book_hist.pdf",
		"vendor_breakdown.pdf",
		"found_vs_notfound.pdf",
		"copies_scatter.pdf",
	}
	for _, name := range want {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}
