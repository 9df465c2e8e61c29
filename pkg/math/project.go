package math

// Viewport is a window-space rectangle in pixels, origin at the bottom-left.
type Viewport struct {
	X, Y          float32
	Width, Height float32
}

// Center returns the window coordinates of the viewport center.
func (vp Viewport) Center() (x, y float32) {
	return vp.X + vp.Width/2, vp.Y + vp.Height/2
}

// Aspect returns width/height, or 1 for an empty viewport.
func (vp Viewport) Aspect() float32 {
	if vp.Height == 0 {
		return 1
	}
	return vp.Width / vp.Height
}

// Project maps a world-space point to window coordinates. The returned Z is
// the depth in [0, 1] for points inside the frustum.
func Project(obj Vec3, view, proj Mat4, vp Viewport) Vec3 {
	clip := proj.Mul(view).MulVec4(Vec4{obj.X, obj.Y, obj.Z, 1})
	if clip[3] != 0 {
		clip[0] /= clip[3]
		clip[1] /= clip[3]
		clip[2] /= clip[3]
	}

	return Vec3{
		(clip[0]*0.5+0.5)*vp.Width + vp.X,
		(clip[1]*0.5+0.5)*vp.Height + vp.Y,
		clip[2]*0.5 + 0.5,
	}
}

// Unproject maps window coordinates plus depth back to a world-space point.
// win.Z is the depth in [0, 1] (0 = near plane, 1 = far plane).
// A singular view-projection yields the zero vector.
func Unproject(win Vec3, view, proj Mat4, vp Viewport) Vec3 {
	inv, ok := proj.Mul(view).Inverse()
	if !ok {
		return Vec3{}
	}

	// Window to normalized device coords (-1 to 1) on every axis
	ndc := Vec4{
		2*(win.X-vp.X)/vp.Width - 1,
		2*(win.Y-vp.Y)/vp.Height - 1,
		2*win.Z - 1,
		1,
	}

	world := inv.MulVec4(ndc)

	// Perspective divide
	if world[3] != 0 {
		world[0] /= world[3]
		world[1] /= world[3]
		world[2] /= world[3]
	}

	return Vec3{world[0], world[1], world[2]}
}
