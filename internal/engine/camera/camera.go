// Package camera provides the free-flying camera driven by the interaction core.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/boxpick/pkg/math"
)

// FreeCamera flies freely: its orientation is set from absolute yaw/pitch/roll
// angles and its position is pushed by a decaying translation impulse.
type FreeCamera struct {
	Position math.Vec3

	// Orientation in degrees
	Yaw, Pitch, Roll float32

	// Projection
	FOV       float32 // Vertical field of view, degrees
	Aspect    float32
	Near, Far float32

	// Translation impulse, added to Position on every Integrate
	Translation math.Vec3

	look, up, right math.Vec3
	view            math.Mat4
	proj            math.Mat4
}

// New creates a camera at position with the given vertical field of view and
// aspect ratio, looking down -Z until rotated.
func New(position math.Vec3, fov, aspect, near, far float32) *FreeCamera {
	c := &FreeCamera{
		Position: position,
		Near:     near,
		Far:      far,
	}
	c.SetupProjection(fov, aspect)
	c.Rotate(180, 0, 0)
	return c
}

// YawPitchToward returns the yaw and pitch, in degrees, that point the camera
// from eye toward target.
func YawPitchToward(eye, target math.Vec3) (yaw, pitch float32) {
	look := eye.Sub(target).Normalize()
	yaw = math.Degrees(math32.Atan2(look.Z, look.X) + math32.Pi)
	pitch = math.Degrees(math32.Asin(look.Y))
	return yaw, pitch
}

// SetupProjection sets the field of view (degrees) and aspect ratio and
// rebuilds the projection matrix.
func (c *FreeCamera) SetupProjection(fov, aspect float32) {
	c.FOV = fov
	c.Aspect = aspect
	c.proj = math.Perspective(math.Radians(fov), aspect, c.Near, c.Far)
}

// Rotate sets absolute yaw, pitch and roll in degrees and rebuilds the basis.
func (c *FreeCamera) Rotate(yaw, pitch, roll float32) {
	c.Yaw, c.Pitch, c.Roll = yaw, pitch, roll
	c.updateView()
}

// Walk pushes the camera along its look direction.
func (c *FreeCamera) Walk(amount float32) {
	c.Translation = c.Translation.Add(c.look.Scale(amount))
}

// Strafe pushes the camera along its right direction.
func (c *FreeCamera) Strafe(amount float32) {
	c.Translation = c.Translation.Add(c.right.Scale(amount))
}

// Lift pushes the camera along its up direction.
func (c *FreeCamera) Lift(amount float32) {
	c.Translation = c.Translation.Add(c.up.Scale(amount))
}

// Integrate moves the camera by the current translation impulse.
func (c *FreeCamera) Integrate() {
	if c.Translation.IsZero() {
		return
	}
	c.Position = c.Position.Add(c.Translation)
	c.updateView()
}

// Decay scales the translation impulse by damping when its squared length
// exceeds epsilonSq. Below the threshold the impulse is left as is.
func (c *FreeCamera) Decay(damping, epsilonSq float32) {
	if c.Translation.LengthSq() > epsilonSq {
		c.Translation = c.Translation.Scale(damping)
	}
}

// Look returns the unit forward direction.
func (c *FreeCamera) Look() math.Vec3 { return c.look }

// Up returns the unit up direction.
func (c *FreeCamera) Up() math.Vec3 { return c.up }

// Right returns the unit right direction.
func (c *FreeCamera) Right() math.Vec3 { return c.right }

// ViewMatrix returns the view matrix.
func (c *FreeCamera) ViewMatrix() math.Mat4 { return c.view }

// ProjectionMatrix returns the projection matrix.
func (c *FreeCamera) ProjectionMatrix() math.Mat4 { return c.proj }

func (c *FreeCamera) updateView() {
	q := math.QuatFromYawPitchRoll(math.Radians(c.Yaw), math.Radians(c.Pitch), math.Radians(c.Roll))
	c.look = q.Rotate(math.Vec3{Z: 1})
	c.up = q.Rotate(math.Vec3{Y: 1})
	c.right = c.look.Cross(c.up)
	c.view = math.LookAt(c.Position, c.Position.Add(c.look), c.up)
}
