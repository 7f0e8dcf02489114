package geojson

import (
	"testing"

	"github.com/cheekybits/is"

	gj "github.com/paulmach/go.geojson"
)

func TestBoundsEmpty(t *testing.T) {
	is := is.New(t)

	is.Nil(ComputeBounds(nil))
	is.Nil(ComputeBounds([]Feature{}))
}

func TestBoundsFold(t *testing.T) {
	is := is.New(t)

	features := []Feature{
		{Geometry: gj.NewPointGeometry([]float64{4.35, 50.85})},
		{Geometry: gj.NewLineStringGeometry([][]float64{{-1, 2}, {3, -4}})},
		{Geometry: gj.NewPolygonGeometry([][][]float64{
			{{0, 0}, {1, 0}, {1, 7}, {0, 7}, {0, 0}},
		})},
	}

	b := ComputeBounds(features)
	is.NotNil(b)
	is.Equal(b.Min, Coordinate{-1, -4})
	is.Equal(b.Max, Coordinate{4.35, 50.85})
	is.True(b.Min.Lon() <= b.Max.Lon())
	is.True(b.Min.Lat() <= b.Max.Lat())
}

func TestBoundsReorderInvariant(t *testing.T) {
	is := is.New(t)

	features := []Feature{
		{Geometry: gj.NewPointGeometry([]float64{10, -3})},
		{Geometry: gj.NewPointGeometry([]float64{-5, 8})},
		{Geometry: gj.NewPointGeometry([]float64{2, 2})},
	}
	reordered := []Feature{features[2], features[0], features[1]}

	a := ComputeBounds(features)
	b := ComputeBounds(reordered)
	is.Equal(a, b)
}

func TestBoundsIncludesInteriorRings(t *testing.T) {
	is := is.New(t)

	// The hole sticks out beyond the shell; bounds still cover it.
	features := []Feature{
		{Geometry: gj.NewPolygonGeometry([][][]float64{
			{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
			{{1, 1}, {9, 1}, {9, 2}, {1, 2}, {1, 1}},
		})},
	}

	b := ComputeBounds(features)
	is.NotNil(b)
	is.Equal(b.Max, Coordinate{9, 4})
}

func TestBoundsMultiPolygon(t *testing.T) {
	is := is.New(t)

	features := []Feature{
		{Geometry: gj.NewMultiPolygonGeometry(
			[][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
			[][][]float64{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
		)},
	}

	b := ComputeBounds(features)
	is.NotNil(b)
	is.Equal(b.Min, Coordinate{0, 0})
	is.Equal(b.Max, Coordinate{6, 6})
}

func TestBoundsNoCoordinates(t *testing.T) {
	is := is.New(t)

	// Features whose geometries contribute no coordinates leave the
	// fold unseeded.
	features := []Feature{
		{Geometry: gj.NewMultiPointGeometry()},
	}
	is.Nil(ComputeBounds(features))
}
