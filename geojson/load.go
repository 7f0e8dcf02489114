package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"

	gj "github.com/paulmach/go.geojson"
)

type envelope struct {
	Type       string                 `json:"type"`
	Features   []json.RawMessage      `json:"features"`
	Geometry   json.RawMessage        `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// LoadFile reads a GeoJSON file and loads it as a Document.
func LoadFile(path string) (*Document, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: MissingFile, Err: err}
	}
	return Load(data)
}

// Load parses raw GeoJSON bytes into a Document.
//
// The top-level object must be a Feature or a FeatureCollection, any
// other type aborts the load. Individual feature entries that are not
// objects, lack a geometry, or carry a geometry that fails to decode
// are skipped deterministically and recorded in Document.Skipped, the
// remainder of the load proceeds.
func Load(data []byte) (*Document, error) {
	env := &envelope{}
	err := json.Unmarshal(data, env)
	if err != nil {
		return nil, &LoadError{Kind: MalformedJSON, Err: err}
	}

	doc := &Document{}
	switch env.Type {
	case "Feature":
		// A bare Feature acts as a one-element collection.
		f, reason := parseFeature(env.Geometry, env.Properties)
		if reason != "" {
			doc.Skipped = append(doc.Skipped, SkipReason{Index: 0, Reason: reason})
		} else {
			doc.Features = append(doc.Features, f)
		}
	case "FeatureCollection":
		for i, raw := range env.Features {
			fe := &envelope{}
			err := json.Unmarshal(raw, fe)
			if err != nil {
				doc.Skipped = append(doc.Skipped, SkipReason{
					Index:  i,
					Reason: "not a JSON object",
				})
				continue
			}

			f, reason := parseFeature(fe.Geometry, fe.Properties)
			if reason != "" {
				doc.Skipped = append(doc.Skipped, SkipReason{Index: i, Reason: reason})
				continue
			}
			doc.Features = append(doc.Features, f)
		}
	default:
		return nil, &LoadError{Kind: UnsupportedType, TypeValue: env.Type}
	}

	doc.Bounds = ComputeBounds(doc.Features)
	return doc, nil
}

func parseFeature(geometry json.RawMessage, properties map[string]interface{}) (Feature, string) {
	if len(geometry) == 0 || bytes.Equal(geometry, []byte("null")) {
		return Feature{}, "missing geometry"
	}

	geom, err := gj.UnmarshalGeometry(geometry)
	if err != nil {
		return Feature{}, fmt.Sprintf("invalid geometry: %s", err)
	}

	return Feature{
		Properties: properties,
		Geometry:   geom,
	}, ""
}
