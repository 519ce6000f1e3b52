package loader

import (
	"fmt"
	"os"

	gocache "github.com/patrickmn/go-cache"
	"github.com/paulmach/orb/geojson"
)

// Counties loads the county boundary feature collection. The path is
// caller-supplied because the boundary file lives outside the data
// directory.
func (l *Loader) Counties(path string) (*geojson.FeatureCollection, error) {
	key := "geojson:" + path
	if v, found := l.cache.Get(key); found {
		return v.(*geojson.FeatureCollection), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	l.cache.Set(key, fc, gocache.NoExpiration)
	return fc, nil
}
