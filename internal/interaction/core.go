// Package interaction owns the picking and camera state of a viewing session
// and turns pointer, keyboard and frame events into changes of that state.
package interaction

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/boxpick/internal/engine/camera"
	"github.com/Faultbox/boxpick/internal/engine/mousefilter"
	"github.com/Faultbox/boxpick/internal/engine/picking"
	"github.com/Faultbox/boxpick/internal/logger"
	"github.com/Faultbox/boxpick/pkg/math"
)

// Field of view limits for zooming, degrees.
const (
	MinFOV = 1
	MaxFOV = 179
)

// Mode is the camera manipulation mode chosen on pointer-down.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRotate
	ModeZoom
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRotate:
		return "rotate"
	case ModeZoom:
		return "zoom"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Button identifies a pointer button independently of the windowing layer.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// View is the read-only surface the renderer uses once per frame.
type View interface {
	SelectedIndex() (int, bool)
	ViewMatrix() math.Mat4
	ProjectionMatrix() math.Mat4
}

// Options configures a Core.
type Options struct {
	StartPosition math.Vec3
	Target        math.Vec3 // Initial look-at point
	FOV           float32   // Degrees
	Near, Far     float32

	Sensitivity float32 // Pixels per degree of rotation or zoom
	Damping     float32 // Impulse multiplier per tick
	Epsilon     float32 // Impulses shorter than this are left alone
	MoveSpeed   float32 // Impulse added per second of held movement key

	FilterEnabled bool
	FilterDepth   int
	FilterWeight  float32
}

// DefaultOptions returns the reference settings.
func DefaultOptions() Options {
	return Options{
		StartPosition: math.Vec3{X: 10, Y: 10, Z: 10},
		FOV:           45,
		Near:          0.1,
		Far:           1000,
		Sensitivity:   5,
		Damping:       0.95,
		Epsilon:       0.001,
		MoveSpeed:     1,
		FilterEnabled: true,
		FilterDepth:   mousefilter.DefaultDepth,
		FilterWeight:  mousefilter.DefaultWeight,
	}
}

// Core is the interaction state of one session: camera, mouse history and
// selection. All methods must be called from the thread that delivers input
// and frame ticks; Core does no locking.
type Core struct {
	opts    Options
	cam     *camera.FreeCamera
	filter  *mousefilter.Filter
	objects []picking.SceneObject

	viewport  math.Viewport
	selection picking.Selection
	mode      Mode

	lastX, lastY int
	yawAccum     float32
	pitchAccum   float32
	moveDir      math.Vec3 // Held walk/strafe/lift axes

	log *zap.Logger
}

// New creates a Core over a fixed set of scene objects.
func New(opts Options, objects []picking.SceneObject, viewport math.Viewport) (*Core, error) {
	if opts.Sensitivity <= 0 {
		return nil, fmt.Errorf("interaction: sensitivity must be positive, got %v", opts.Sensitivity)
	}

	filter, err := mousefilter.New(opts.FilterDepth, opts.FilterWeight)
	if err != nil {
		return nil, err
	}
	filter.SetEnabled(opts.FilterEnabled)

	c := &Core{
		opts:      opts,
		cam:       camera.New(opts.StartPosition, opts.FOV, viewport.Aspect(), opts.Near, opts.Far),
		filter:    filter,
		objects:   objects,
		viewport:  viewport,
		selection: picking.NoSelection,
		log:       logger.Named("interaction"),
	}

	c.yawAccum, c.pitchAccum = camera.YawPitchToward(opts.StartPosition, opts.Target)
	c.filter.Reset(math.Vec2{X: c.yawAccum, Y: c.pitchAccum})
	c.cam.Rotate(c.yawAccum, c.pitchAccum, 0)

	c.log.Debug("interaction ready",
		zap.Int("objects", len(objects)),
		zap.Float32("yaw", c.yawAccum),
		zap.Float32("pitch", c.pitchAccum),
	)
	return c, nil
}

// OnPointerDown picks the nearest object under (x, y) and chooses the drag
// mode for button. x and y are window pixels with y growing downward.
func (c *Core) OnPointerDown(button Button, x, y int) picking.Selection {
	c.lastX, c.lastY = x, y

	wx := float32(x)
	wy := c.viewport.Y + c.viewport.Height - float32(y)
	ray := picking.ScreenToRay(wx, wy, c.cam.ViewMatrix(), c.cam.ProjectionMatrix(), c.viewport)
	c.selection = picking.SelectNearest(ray, c.objects)

	if idx, ok := c.selection.Index(); ok {
		c.log.Debug("box selected", zap.Int("index", idx), zap.Float32("distance", c.selection.Distance()))
	} else {
		c.log.Debug("no box picked")
	}

	if button == ButtonMiddle {
		c.setMode(ModeZoom)
	} else {
		c.setMode(ModeRotate)
	}
	return c.selection
}

// OnPointerUp ends the current drag.
func (c *Core) OnPointerUp(Button) {
	c.setMode(ModeIdle)
}

// OnPointerDrag applies pointer motion to (x, y) in the current mode.
// Motion is ignored while an object is selected.
func (c *Core) OnPointerDrag(x, y int) {
	if c.mode == ModeIdle || !c.selection.IsEmpty() {
		return
	}

	switch c.mode {
	case ModeZoom:
		c.Zoom(float32(y-c.lastY) / c.opts.Sensitivity)
	case ModeRotate:
		c.Rotate(float32(c.lastX-x)/c.opts.Sensitivity, float32(y-c.lastY)/c.opts.Sensitivity)
	}
	c.lastX, c.lastY = x, y
}

// Rotate adds angular deltas (degrees) to the accumulated yaw and pitch and
// points the camera at the filtered accumulated angles.
func (c *Core) Rotate(deltaYaw, deltaPitch float32) {
	c.yawAccum += deltaYaw
	c.pitchAccum += deltaPitch

	f := c.filter.Filter(math.Vec2{X: c.yawAccum, Y: c.pitchAccum})
	c.cam.Rotate(f.X, f.Y, 0)
}

// Zoom changes the field of view by delta degrees, unfiltered.
func (c *Core) Zoom(delta float32) {
	fov := min(max(c.cam.FOV+delta, MinFOV), MaxFOV)
	c.cam.SetupProjection(fov, c.cam.Aspect)
}

// Move sets the held movement axes, each in [-1, 1]: walk along the look
// direction, strafe right, lift up. They apply on every tick until changed.
func (c *Core) Move(walk, strafe, lift float32) {
	c.moveDir = math.Vec3{X: strafe, Y: lift, Z: walk}
}

// OnTick advances the camera by one frame of dt seconds: held movement adds
// to the translation impulse, the impulse moves the camera, then decays.
func (c *Core) OnTick(dt float32) {
	if !c.moveDir.IsZero() {
		step := dt * c.opts.MoveSpeed
		c.cam.Walk(c.moveDir.Z * step)
		c.cam.Strafe(c.moveDir.X * step)
		c.cam.Lift(c.moveDir.Y * step)
	}

	c.cam.Integrate()
	c.cam.Decay(c.opts.Damping, c.opts.Epsilon*c.opts.Epsilon)
}

// Resize updates the viewport and the projection aspect ratio.
func (c *Core) Resize(width, height int) {
	c.viewport.Width = float32(width)
	c.viewport.Height = float32(height)
	c.cam.SetupProjection(c.cam.FOV, c.viewport.Aspect())
}

// ConfigureFilter updates mouse smoothing. Changing depth or weight starts a
// fresh history seeded with the current accumulated angles.
func (c *Core) ConfigureFilter(enabled bool, depth int, weight float32) error {
	if depth != c.opts.FilterDepth || weight != c.opts.FilterWeight {
		f, err := mousefilter.New(depth, weight)
		if err != nil {
			return err
		}
		f.Reset(math.Vec2{X: c.yawAccum, Y: c.pitchAccum})
		c.filter = f
		c.opts.FilterDepth, c.opts.FilterWeight = depth, weight
	}
	c.filter.SetEnabled(enabled)
	c.opts.FilterEnabled = enabled
	return nil
}

// SelectedIndex returns the selected object index, if any.
func (c *Core) SelectedIndex() (int, bool) {
	return c.selection.Index()
}

// Selection returns the current selection.
func (c *Core) Selection() picking.Selection {
	return c.selection
}

// ViewMatrix returns the camera view matrix.
func (c *Core) ViewMatrix() math.Mat4 {
	return c.cam.ViewMatrix()
}

// ProjectionMatrix returns the camera projection matrix.
func (c *Core) ProjectionMatrix() math.Mat4 {
	return c.cam.ProjectionMatrix()
}

// CameraPosition returns the camera position in world space.
func (c *Core) CameraPosition() math.Vec3 {
	return c.cam.Position
}

// Orientation returns the camera yaw and pitch in degrees.
func (c *Core) Orientation() (yaw, pitch float32) {
	return c.cam.Yaw, c.cam.Pitch
}

// FOV returns the vertical field of view in degrees.
func (c *Core) FOV() float32 {
	return c.cam.FOV
}

// TranslationImpulse returns the camera's pending translation.
func (c *Core) TranslationImpulse() math.Vec3 {
	return c.cam.Translation
}

// Mode returns the current drag mode.
func (c *Core) Mode() Mode {
	return c.mode
}

// Viewport returns the viewport rectangle.
func (c *Core) Viewport() math.Viewport {
	return c.viewport
}

// Objects returns the scene objects. Callers must not modify them.
func (c *Core) Objects() []picking.SceneObject {
	return c.objects
}

func (c *Core) setMode(m Mode) {
	if m == c.mode {
		return
	}
	c.log.Debug("mode changed", zap.Stringer("from", c.mode), zap.Stringer("to", m))
	c.mode = m
}
