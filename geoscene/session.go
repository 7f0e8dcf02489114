package geoscene

import (
	"errors"

	"github.com/blkot/geoscene/geojson"
)

// Session holds at most one loaded document and its derived emission
// result. Loading a new document invalidates the previous result;
// re-emitting fully replaces it. A Session is owned by its caller and
// is not safe for concurrent use.
type Session struct {
	config *Config
	doc    *geojson.Document
	result *Result
}

func NewSession(config *Config) *Session {
	if config == nil {
		config = NewConfig()
	}
	return &Session{config: config}
}

// Load reads a GeoJSON file, replacing any previously loaded
// document. On failure the previous document is kept.
func (s *Session) Load(path string) error {
	doc, err := geojson.LoadFile(path)
	if err != nil {
		return err
	}
	s.doc = doc
	s.result = nil
	return nil
}

func (s *Session) LoadBytes(data []byte) error {
	doc, err := geojson.Load(data)
	if err != nil {
		return err
	}
	s.doc = doc
	s.result = nil
	return nil
}

// Emit runs the mesh pipeline over the loaded document. The result
// replaces any prior emission for the session.
func (s *Session) Emit() (*Result, error) {
	if s.doc == nil {
		return nil, errors.New("no document loaded")
	}

	result, err := NewPipeline(s.doc).Configure(s.config).Run()
	if err != nil {
		return nil, err
	}
	s.result = result
	return result, nil
}

func (s *Session) Document() *geojson.Document {
	return s.doc
}

func (s *Session) Bounds() *geojson.Bounds {
	if s.doc == nil {
		return nil
	}
	return s.doc.Bounds
}

func (s *Session) FeatureCount() int {
	if s.doc == nil {
		return 0
	}
	return s.doc.FeatureCount()
}

func (s *Session) GeometryTypes() []string {
	if s.doc == nil {
		return nil
	}
	return s.doc.GeometryTypes()
}

// LastResult returns the most recent emission, nil if the document
// changed since or nothing was emitted yet.
func (s *Session) LastResult() *Result {
	return s.result
}
