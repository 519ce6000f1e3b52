package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const countiesFixture = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"NAME": "Travis"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[-98.0, 30.0], [-97.5, 30.0], [-97.5, 30.5], [-98.0, 30.5], [-98.0, 30.0]]]
			}
		}
	]
}`

func TestCounties(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tx_counties.geojson")
	require.NoError(t, os.WriteFile(path, []byte(countiesFixture), 0o644))

	l := New(dir, zap.NewNop())
	fc, err := l.Counties(path)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Travis", fc.Features[0].Properties["NAME"])

	// The parsed collection is memoized.
	require.NoError(t, os.Remove(path))
	again, err := l.Counties(path)
	require.NoError(t, err)
	assert.Same(t, fc, again)
}

func TestCounties_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "nope"`), 0o644))

	l := New(dir, zap.NewNop())
	_, err := l.Counties(path)
	require.Error(t, err)
}
