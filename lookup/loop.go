package lookup

import "github.com/golang/geo/s2"

type loopPolygon struct {
	outer *s2.Loop
	inner []*s2.Loop
}

func (l *loopPolygon) IsInside(lat, lng float64) bool {
	latlon := s2.LatLngFromDegrees(lat, lng)
	point := s2.PointFromLatLng(latlon)

	if !l.outer.ContainsPoint(point) {
		return false
	}

	for _, ring := range l.inner {
		if ring.ContainsPoint(point) {
			return false
		}
	}

	return true
}

func makeLoop(coords [][]float64) *s2.Loop {
	if len(coords) < 2 {
		return nil
	}

	// s2.Loop is always CCW
	if isClockwise(coords) {
		coords = reverse(coords)
	}

	// Skip last point, not stored in loop
	points := make([]s2.Point, 0, len(coords)-1)
	for i := 0; i < len(coords)-1; i++ {
		if i > 0 && coordEquals(coords[i-1], coords[i]) {
			continue
		}
		latlon := s2.LatLngFromDegrees(coords[i][1], coords[i][0])
		points = append(points, s2.PointFromLatLng(latlon))
	}

	if len(points) < 3 {
		return nil
	}
	return s2.LoopFromPoints(points)
}

func isClockwise(coords [][]float64) bool {
	sum := 0.0
	for i, coord := range coords[:len(coords)-1] {
		next := coords[i+1]
		sum += (next[0] - coord[0]) * (next[1] + coord[1])
	}
	return sum >= 0
}

func reverse(coords [][]float64) [][]float64 {
	c := make([][]float64, len(coords))
	for i := 0; i < len(coords); i++ {
		c[i] = coords[len(coords)-i-1]
	}
	return c
}

func coordEquals(a, b []float64) bool {
	return a[0] == b[0] && a[1] == b[1]
}
