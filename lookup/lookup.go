// Point-in-feature queries over the polygonal features of a loaded
// document.
//
// Or in easier terms: index the document's shapes, then ask: "in
// which features does this coordinate fall?".
package lookup

import (
	"sort"

	geojson "github.com/paulmach/go.geojson"
)

type Data struct {
	polygons map[int64][]*loopPolygon
	ids      []int64
}

func New() *Data {
	return &Data{
		polygons: make(map[int64][]*loopPolygon),
	}
}

// IndexGeometry indexes a geometry under the given id. Only Polygon
// and MultiPolygon geometries are indexed, everything else has no
// interior to query.
func (l *Data) IndexGeometry(id int64, geom *geojson.Geometry) {
	switch geom.Type {
	case geojson.GeometryPolygon:
		l.IndexPolygon(id, geom.Polygon)
	case geojson.GeometryMultiPolygon:
		for _, poly := range geom.MultiPolygon {
			l.IndexPolygon(id, poly)
		}
	}
}

func (l *Data) IndexPolygon(id int64, poly [][][]float64) {
	if len(poly) == 0 {
		return
	}

	outer := makeLoop(poly[0])
	if outer == nil {
		return
	}

	p := &loopPolygon{outer: outer}
	for _, ring := range poly[1:] {
		inner := makeLoop(ring)
		if inner != nil {
			p.inner = append(p.inner, inner)
		}
	}

	if _, ok := l.polygons[id]; !ok {
		l.ids = append(l.ids, id)
	}
	l.polygons[id] = append(l.polygons[id], p)
}

// Query returns the sorted ids of all indexed features that contain
// the given coordinate. A point inside a hole does not match.
func (l *Data) Query(lon, lat float64) []int64 {
	matches := []int64{}
	for _, id := range l.ids {
		for _, p := range l.polygons[id] {
			if p.IsInside(lat, lon) {
				matches = append(matches, id)
				break
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
	return matches
}
