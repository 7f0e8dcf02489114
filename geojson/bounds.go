package geojson

import (
	"math"

	gj "github.com/paulmach/go.geojson"
)

// ComputeBounds folds a running min/max over every coordinate
// reachable from the given features. Polygon bounds include interior
// rings even though those are never rendered. Returns nil when no
// feature contributes a coordinate.
func ComputeBounds(features []Feature) *Bounds {
	b := &Bounds{
		Min: Coordinate{math.Inf(1), math.Inf(1)},
		Max: Coordinate{math.Inf(-1), math.Inf(-1)},
	}

	seen := false
	fold := func(p []float64) {
		if len(p) < 2 {
			return
		}
		seen = true
		b.Min[0] = math.Min(b.Min[0], p[0])
		b.Min[1] = math.Min(b.Min[1], p[1])
		b.Max[0] = math.Max(b.Max[0], p[0])
		b.Max[1] = math.Max(b.Max[1], p[1])
	}

	for _, f := range features {
		switch f.Geometry.Type {
		case gj.GeometryPoint:
			fold(f.Geometry.Point)
		case gj.GeometryLineString:
			for _, p := range f.Geometry.LineString {
				fold(p)
			}
		case gj.GeometryPolygon:
			for _, ring := range f.Geometry.Polygon {
				for _, p := range ring {
					fold(p)
				}
			}
		case gj.GeometryMultiPolygon:
			for _, poly := range f.Geometry.MultiPolygon {
				for _, ring := range poly {
					for _, p := range ring {
						fold(p)
					}
				}
			}
		}
	}

	if !seen {
		return nil
	}
	return b
}
