package model

// SystemRank is one entry of the ranked system list. The first five
// fields come straight from the extraction step; the rest are joined
// on by the report context builder.
type SystemRank struct {
	SystemID       string `json:"systemId"`
	SystemName     string `json:"systemName"`
	BooksHeld      int    `json:"booksHeld"`
	TotalCopies    int    `json:"totalCopies"`
	TotalAvailable int    `json:"totalAvailable"`

	City      string `json:"city,omitempty"`
	Region    string `json:"region,omitempty"`
	Vendor    string `json:"vendor,omitempty"`
	Books     []Book `json:"books,omitempty"`
	TopTitles string `json:"topTitles,omitempty"`
}

// AvailabilityRate returns available/copies. The second return is
// false for systems reporting no copies at all; those are excluded
// from availability figures rather than shown at rate zero.
func (s SystemRank) AvailabilityRate() (float64, bool) {
	if s.TotalCopies <= 0 {
		return 0, false
	}
	return float64(s.TotalAvailable) / float64(s.TotalCopies), true
}

// SystemMeta is a system's catalog metadata record.
type SystemMeta struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Vendor  string `json:"vendor"`
	Region  string `json:"region"`
	City    string `json:"city"`
	Enabled bool   `json:"enabled"`
}

// Holdings lists the books one system's catalog reports as owned.
type Holdings struct {
	Books []Book `json:"books"`
}

// GeoLibrary is a geocoded library record used by the map figures.
// Lat and Lng are pointers because geocoding can fail; ungeocoded
// libraries are excluded from every geographic figure.
type GeoLibrary struct {
	Name           string   `json:"name"`
	Enabled        bool     `json:"enabled"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
	Region         string   `json:"region"`
	BooksHeld      int      `json:"booksHeld"`
	TotalCopies    int      `json:"totalCopies"`
	TotalAvailable int      `json:"totalAvailable"`
}

// HasCoordinates reports whether the library was geocoded.
func (g GeoLibrary) HasCoordinates() bool {
	return g.Lat != nil && g.Lng != nil
}

// AvailabilityRate returns available/copies, false when the system
// reports no copies.
func (g GeoLibrary) AvailabilityRate() (float64, bool) {
	if g.TotalCopies <= 0 {
		return 0, false
	}
	return float64(g.TotalAvailable) / float64(g.TotalCopies), true
}

// SummaryStats holds the top-level scan counters. The counters are
// expected to satisfy found + notFound == scanned; a mismatch is a
// data-quality signal, not an error.
type SummaryStats struct {
	BooksScanned  int `json:"booksScanned"`
	BooksFound    int `json:"booksFound"`
	BooksNotFound int `json:"booksNotFound"`
}
