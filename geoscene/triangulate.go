package geoscene

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Triangulate converts a projected polygon ring into a flat list of
// triangle index triples using ear clipping.
//
// The ring must follow the GeoJSON right-hand rule: exterior rings
// wind counter-clockwise as seen from +Y. A coordinate-equal closing
// vertex is dropped before clipping, but emitted indices always refer
// to the original, un-deduplicated point slice. When no valid ear can
// be found the triangles clipped so far are returned as a partial
// result.
func Triangulate(points []vec3.T) []int {
	verts := points
	if len(verts) >= 2 && verts[0] == verts[len(verts)-1] {
		verts = verts[:len(verts)-1]
	}
	if len(verts) < 3 {
		return nil
	}

	remaining := make([]int, len(verts))
	for i := range remaining {
		remaining[i] = i
	}

	indices := make([]int, 0, 3*(len(verts)-2))
	for len(remaining) > 3 {
		found := false
		for pos := range remaining {
			prev := remaining[(pos-1+len(remaining))%len(remaining)]
			cur := remaining[pos]
			next := remaining[(pos+1)%len(remaining)]

			if !isEar(verts, remaining, prev, cur, next) {
				continue
			}

			indices = append(indices, prev, cur, next)
			remaining = append(remaining[:pos], remaining[pos+1:]...)
			found = true
			break
		}

		// No ear on a full scan, give up with what we have.
		if !found {
			return indices
		}
	}

	return append(indices, remaining...)
}

func isEar(verts []vec3.T, remaining []int, prev, cur, next int) bool {
	p1 := verts[prev]
	p2 := verts[cur]
	p3 := verts[next]

	// The candidate must turn left: its triangle faces up under the
	// counter-clockwise winding assumption.
	v1 := vec3.Sub(&p2, &p1)
	v2 := vec3.Sub(&p3, &p2)
	cross := vec3.Cross(&v1, &v2)
	if cross[1] <= 0 {
		return false
	}

	for _, j := range remaining {
		if j == prev || j == cur || j == next {
			continue
		}
		if pointInTriangle(&verts[j], &p1, &p2, &p3) {
			return false
		}
	}

	return true
}

// pointInTriangle tests sign consistency of p against the three edge
// half-planes, restricted to X/Z. Points exactly on an edge count as
// inside.
func pointInTriangle(p, a, b, c *vec3.T) bool {
	d1 := edgeSign(p, a, b)
	d2 := edgeSign(p, b, c)
	d3 := edgeSign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

func edgeSign(p1, p2, p3 *vec3.T) float64 {
	return (p1[0]-p3[0])*(p2[2]-p3[2]) - (p2[0]-p3[0])*(p1[2]-p3[2])
}

// ringIsClockwise computes the shoelace sum over a lon/lat ring.
func ringIsClockwise(coords [][]float64) bool {
	sum := 0.0
	for i, coord := range coords[:len(coords)-1] {
		next := coords[i+1]
		sum += (next[0] - coord[0]) * (next[1] + coord[1])
	}
	return sum >= 0
}

func reverseRing(coords [][]float64) [][]float64 {
	c := make([][]float64, len(coords))
	for i := 0; i < len(coords); i++ {
		c[i] = coords[len(coords)-i-1]
	}
	return c
}
