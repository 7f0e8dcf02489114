package geojson

import "fmt"

type ErrorKind int

const (
	// MalformedJSON means the input could not be parsed as JSON.
	MalformedJSON ErrorKind = iota

	// UnsupportedType means the top-level type field was neither
	// "Feature" nor "FeatureCollection".
	UnsupportedType

	// MissingFile means the input path could not be read.
	MissingFile

	// BadFeature means a feature entry lacked a usable geometry.
	BadFeature
)

// LoadError is returned for document-level load failures. No partial
// Document is produced alongside one.
type LoadError struct {
	Kind ErrorKind

	// TypeValue holds the offending top-level type for UnsupportedType.
	TypeValue string

	Err error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case MalformedJSON:
		return fmt.Sprintf("malformed JSON: %s", e.Err)
	case UnsupportedType:
		if e.TypeValue == "" {
			return "unsupported GeoJSON type: type field missing"
		}
		return fmt.Sprintf("unsupported GeoJSON type: %s", e.TypeValue)
	case MissingFile:
		return fmt.Sprintf("cannot read file: %s", e.Err)
	case BadFeature:
		return fmt.Sprintf("bad feature: %s", e.Err)
	}
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
