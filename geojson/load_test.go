package geojson

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

func TestLoadFeatureCollection(t *testing.T) {
	is := is.New(t)

	in := `{
		"type": "FeatureCollection",
		"features": [
			{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]},"properties":{"name":"unit"}},
			{"type":"Feature","geometry":{"type":"Point","coordinates":[4.35,50.85]},"properties":null}
		]
	}`

	doc, err := Load([]byte(in))
	is.NoErr(err)
	is.NotNil(doc)
	is.Equal(doc.FeatureCount(), 2)
	is.Equal(len(doc.Skipped), 0)
	is.Equal(doc.Features[0].Properties["name"], "unit")
	is.Equal(doc.GeometryTypes(), []string{"Point", "Polygon"})
}

func TestLoadSingleFeature(t *testing.T) {
	is := is.New(t)

	in := `{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]},"properties":null}`

	doc, err := Load([]byte(in))
	is.NoErr(err)
	is.Equal(doc.FeatureCount(), 1)
	is.NotNil(doc.Bounds)
	is.Equal(doc.Bounds.Min, Coordinate{0, 0})
	is.Equal(doc.Bounds.Max, Coordinate{1, 1})
}

func TestLoadUnsupportedType(t *testing.T) {
	is := is.New(t)

	doc, err := Load([]byte(`{"type":"Circle","coordinates":[0,0]}`))
	is.Nil(doc)
	is.NotNil(err)

	var lerr *LoadError
	is.True(errors.As(err, &lerr))
	is.Equal(lerr.Kind, UnsupportedType)
	is.Equal(lerr.TypeValue, "Circle")
}

func TestLoadMissingType(t *testing.T) {
	is := is.New(t)

	doc, err := Load([]byte(`{"features":[]}`))
	is.Nil(doc)

	var lerr *LoadError
	is.True(errors.As(err, &lerr))
	is.Equal(lerr.Kind, UnsupportedType)
	is.Equal(lerr.TypeValue, "")
}

func TestLoadMalformedJSON(t *testing.T) {
	is := is.New(t)

	doc, err := Load([]byte(`{"type": "FeatureCollection",`))
	is.Nil(doc)

	var lerr *LoadError
	is.True(errors.As(err, &lerr))
	is.Equal(lerr.Kind, MalformedJSON)
}

func TestLoadFile(t *testing.T) {
	is := is.New(t)

	doc, err := LoadFile("testdata/squares.geojson")
	is.NoErr(err)
	is.Equal(doc.FeatureCount(), 3)
	is.Equal(doc.GeometryTypes(), []string{"Point", "Polygon"})
	is.NotNil(doc.Bounds)
	is.Equal(doc.Bounds.Min, Coordinate{4.30, 50.80})
	is.Equal(doc.Bounds.Max, Coordinate{4.45, 50.85})
}

func TestLoadMissingFile(t *testing.T) {
	is := is.New(t)

	doc, err := LoadFile("testdata/does-not-exist.geojson")
	is.Nil(doc)

	var lerr *LoadError
	is.True(errors.As(err, &lerr))
	is.Equal(lerr.Kind, MissingFile)
}

func TestLoadEmptyCollection(t *testing.T) {
	is := is.New(t)

	doc, err := Load([]byte(`{"type":"FeatureCollection","features":[]}`))
	is.NoErr(err)
	is.Equal(doc.FeatureCount(), 0)
	is.Nil(doc.Bounds)
	is.Equal(doc.GeometryTypes(), []string{})
}

func TestLoadAbsentFeatures(t *testing.T) {
	is := is.New(t)

	// A FeatureCollection without a features array is an empty one.
	doc, err := Load([]byte(`{"type":"FeatureCollection"}`))
	is.NoErr(err)
	is.Equal(doc.FeatureCount(), 0)
	is.Nil(doc.Bounds)
}

func TestLoadSkipsBadFeatures(t *testing.T) {
	is := is.New(t)

	in := `{
		"type": "FeatureCollection",
		"features": [
			{"type":"Feature","properties":{}},
			{"type":"Feature","geometry":null,"properties":{}},
			{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{}},
			{"type":"Feature","geometry":{"type":"Point"},"properties":{}}
		]
	}`

	doc, err := Load([]byte(in))
	is.NoErr(err)
	is.Equal(doc.FeatureCount(), 1)
	is.Equal(len(doc.Skipped), 3)
	is.Equal(doc.Skipped[0].Index, 0)
	is.Equal(doc.Skipped[0].Reason, "missing geometry")
	is.Equal(doc.Skipped[1].Index, 1)
	is.Equal(doc.Skipped[2].Index, 3)
}
