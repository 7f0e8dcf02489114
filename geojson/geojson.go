// Loading and validation of GeoJSON documents.
//
// Only the subset needed for ground-plane rendering is supported: a
// top-level Feature or FeatureCollection whose features carry Point,
// LineString, Polygon or MultiPolygon geometries.
package geojson

import (
	"sort"

	gj "github.com/paulmach/go.geojson"
)

// Coordinate is a (longitude, latitude) pair in degrees.
type Coordinate [2]float64

func (c Coordinate) Lon() float64 {
	return c[0]
}

func (c Coordinate) Lat() float64 {
	return c[1]
}

// Bounds is an axis-aligned bounding box in geographic space.
type Bounds struct {
	Min Coordinate
	Max Coordinate
}

// Feature pairs an opaque property bag with a single geometry.
type Feature struct {
	Properties map[string]interface{}
	Geometry   *gj.Geometry
}

// SkipReason records a feature entry that was dropped during load,
// together with its position in the original features array.
type SkipReason struct {
	Index  int
	Reason string
}

// Document is a validated set of features. It is immutable after
// load: Bounds is derived once and is nil iff no feature contributed
// any coordinate.
type Document struct {
	Features []Feature
	Bounds   *Bounds
	Skipped  []SkipReason
}

func (d *Document) FeatureCount() int {
	return len(d.Features)
}

// GeometryTypes returns the sorted set of geometry type names present
// in the document.
func (d *Document) GeometryTypes() []string {
	seen := make(map[string]bool)
	for _, f := range d.Features {
		seen[string(f.Geometry.Type)] = true
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
