// Package loader reads the named JSON documents produced by the
// extraction step into in-memory records. Every document is parsed at
// most once per run; builders asking again get the cached copy.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// Fixed document names under the data directory.
const (
	summaryStatsFile   = "summary_stats.json"
	topSystemsFile     = "top_systems.json"
	topBooksFile       = "top_books.json"
	systemHoldingsFile = "system_holdings.json"
	notFoundBooksFile  = "not_found_books.json"
	systemMetadataFile = "system_metadata.json"
	geocodedFile       = "geocoded_libraries.json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Loader loads documents from a single data directory.
type Loader struct {
	dataDir string
	cache   *gocache.Cache
	log     *zap.Logger
}

// New creates a loader over the given data directory.
func New(dataDir string, log *zap.Logger) *Loader {
	return &Loader{
		dataDir: dataDir,
		cache:   gocache.New(gocache.NoExpiration, 0),
		log:     log,
	}
}

// loadDoc reads and decodes one named document, memoizing the parsed
// value for the remainder of the run.
func loadDoc[T any](l *Loader, name string) (T, error) {
	if v, found := l.cache.Get(name); found {
		return v.(T), nil
	}

	var out T
	raw, err := os.ReadFile(filepath.Join(l.dataDir, name))
	if err != nil {
		return out, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", name, err)
	}

	l.cache.Set(name, out, gocache.NoExpiration)
	return out, nil
}

// SummaryStats loads the scan counters. A found/not-found sum that
// disagrees with the scanned total is logged, not rejected.
func (l *Loader) SummaryStats() (model.SummaryStats, error) {
	if v, found := l.cache.Get(summaryStatsFile); found {
		return v.(model.SummaryStats), nil
	}

	stats, err := loadDoc[model.SummaryStats](l, summaryStatsFile)
	if err != nil {
		return stats, err
	}
	if stats.BooksFound+stats.BooksNotFound != stats.BooksScanned {
		l.log.Warn("summary counters do not add up",
			zap.Int("scanned", stats.BooksScanned),
			zap.Int("found", stats.BooksFound),
			zap.Int("notFound", stats.BooksNotFound))
	}
	return stats, nil
}

// TopSystems loads the ranked system list.
func (l *Loader) TopSystems() ([]model.SystemRank, error) {
	return loadDoc[[]model.SystemRank](l, topSystemsFile)
}

// TopBooks loads the ranked book list.
func (l *Loader) TopBooks() ([]model.Book, error) {
	return loadDoc[[]model.Book](l, topBooksFile)
}

// SystemHoldings loads the per-system title lists keyed by system ID.
func (l *Loader) SystemHoldings() (map[string]model.Holdings, error) {
	return loadDoc[map[string]model.Holdings](l, systemHoldingsFile)
}

// NotFoundBooks loads the titles no surveyed system holds.
func (l *Loader) NotFoundBooks() ([]model.Book, error) {
	return loadDoc[[]model.Book](l, notFoundBooksFile)
}

// SystemMetadata loads the vendor/region/city records.
func (l *Loader) SystemMetadata() ([]model.SystemMeta, error) {
	return loadDoc[[]model.SystemMeta](l, systemMetadataFile)
}

// GeocodedLibraries loads the geocoded library records.
func (l *Loader) GeocodedLibraries() ([]model.GeoLibrary, error) {
	return loadDoc[[]model.GeoLibrary](l, geocodedFile)
}
