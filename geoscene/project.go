// Conversion of GeoJSON documents into render-ready ground-plane
// meshes for a right-handed, Y-up scene.
package geoscene

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// WGS84 ellipsoid parameters.
const (
	equatorialRadius = 6378137.0
	eccentricity     = 0.081819190842622
)

// Project maps a geodetic coordinate onto the scene ground plane
// using the ellipsoidal Web Mercator projection.
//
// The output frame is right-handed with Y up: east is +X, south is
// +Z, Y is always 0. Latitudes at the poles project to infinity and
// are passed through untrapped.
func Project(lon, lat float64) vec3.T {
	lonRad := lon * math.Pi / 180
	latRad := lat * math.Pi / 180

	esin := eccentricity * math.Sin(latRad)
	x := equatorialRadius * lonRad
	z := -equatorialRadius * math.Log(
		math.Tan(math.Pi/4+latRad/2)*math.Pow((1-esin)/(1+esin), eccentricity/2))

	return vec3.T{x, 0, z}
}
