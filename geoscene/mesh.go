package geoscene

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// MeshDescriptor holds one triangulated polygon, ready to hand to a
// scene graph. Points are in raw projected space, the dataset-wide
// Transform is meant to be applied at the scene root.
type MeshDescriptor struct {
	Points      []vec3.T   `json:"points"`
	Indices     []int      `json:"indices"`
	Normals     []vec3.T   `json:"normals"`
	Color       [3]float64 `json:"color"`
	DoubleSided bool       `json:"doubleSided"`
}

// FaceVertexCounts returns the per-face vertex counts expected by
// mesh hosts, one 3 per triangle.
func (m *MeshDescriptor) FaceVertexCounts() []int {
	counts := make([]int, len(m.Indices)/3)
	for i := range counts {
		counts[i] = 3
	}
	return counts
}

// Transform centers a projected dataset at the origin and scales its
// longer ground-plane extent to the configured target size.
type Transform struct {
	Translate vec3.T  `json:"translate"`
	Scale     float64 `json:"scale"`
}

// SkipReason records a polygon that produced no mesh, along with the
// index of the feature it came from.
type SkipReason struct {
	Feature int
	Reason  string
}

// Result is one complete emission of a document.
type Result struct {
	Transform Transform        `json:"transform"`
	Meshes    []MeshDescriptor `json:"meshes"`
	Skipped   []SkipReason     `json:"-"`
}
