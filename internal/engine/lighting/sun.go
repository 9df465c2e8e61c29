// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/boxpick/pkg/math"
)

// Sun is a directional light.
type Sun struct {
	Longitude float32 // Degrees around Y
	Latitude  float32 // Degrees above the horizon
	Ambient   [3]float32
	Diffuse   [3]float32
}

// DefaultSun lights the scene from above and slightly behind the start camera.
func DefaultSun() Sun {
	return Sun{
		Longitude: 30,
		Latitude:  60,
		Ambient:   [3]float32{0.35, 0.35, 0.35},
		Diffuse:   [3]float32{0.65, 0.65, 0.65},
	}
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	return SunDirection(s.Longitude, s.Latitude)
}

// SunDirection converts longitude/latitude angles in degrees to a unit
// vector pointing towards the sun.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonSin, lonCos := math32.Sincos(math.Radians(longitude))
	latSin, latCos := math32.Sincos(math.Radians(latitude))

	return math.Vec3{
		X: latCos * lonSin,
		Y: latSin,
		Z: latCos * lonCos,
	}
}
