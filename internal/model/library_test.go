package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemRankAvailabilityRate(t *testing.T) {
	rate, ok := SystemRank{TotalCopies: 200, TotalAvailable: 150}.AvailabilityRate()
	assert.True(t, ok)
	assert.InDelta(t, 0.75, rate, 1e-9)

	// Zero copies means no rate, not a rate of zero.
	_, ok = SystemRank{TotalCopies: 0, TotalAvailable: 0}.AvailabilityRate()
	assert.False(t, ok)
}

func TestGeoLibraryHasCoordinates(t *testing.T) {
	lat, lng := 30.27, -97.74
	assert.True(t, GeoLibrary{Lat: &lat, Lng: &lng}.HasCoordinates())
	assert.False(t, GeoLibrary{Lat: &lat}.HasCoordinates())
	assert.False(t, GeoLibrary{}.HasCoordinates())
}
