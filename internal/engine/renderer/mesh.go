package renderer

import (
	"github.com/Faultbox/boxpick/internal/engine/debug"
	"github.com/Faultbox/boxpick/internal/engine/picking"
	"github.com/Faultbox/boxpick/pkg/math"
)

// CubeVertexCount is the number of vertices per cube (6 faces × 2 triangles).
const CubeVertexCount = 36

// Box colors.
var (
	SelectedColor  = [3]float32{0, 1, 1}
	HighlightColor = [3]float32{1, 1, 0}
	palette        = [][3]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
)

// BoxColor returns the fill color of box index.
func BoxColor(index int, selected bool) [3]float32 {
	if selected {
		return SelectedColor
	}
	return palette[index%len(palette)]
}

// cubeFaces lists each face's outward normal and its corners, counter-clockwise
// seen from outside. Corners index into the unit cube's (x, y, z) bits.
var cubeFaces = [6]struct {
	normal  math.Vec3
	corners [4]int
}{
	{math.Vec3{X: 1}, [4]int{0b100, 0b110, 0b111, 0b101}},
	{math.Vec3{X: -1}, [4]int{0b000, 0b001, 0b011, 0b010}},
	{math.Vec3{Y: 1}, [4]int{0b010, 0b011, 0b111, 0b110}},
	{math.Vec3{Y: -1}, [4]int{0b000, 0b100, 0b101, 0b001}},
	{math.Vec3{Z: 1}, [4]int{0b001, 0b101, 0b111, 0b011}},
	{math.Vec3{Z: -1}, [4]int{0b000, 0b010, 0b110, 0b100}},
}

// CubeVertices returns the triangles of box in world space as interleaved
// [x, y, z, nx, ny, nz] floats.
func CubeVertices(box picking.AABB) []float32 {
	corner := func(bits int) math.Vec3 {
		c := box.Min
		if bits&0b100 != 0 {
			c.X = box.Max.X
		}
		if bits&0b010 != 0 {
			c.Y = box.Max.Y
		}
		if bits&0b001 != 0 {
			c.Z = box.Max.Z
		}
		return c
	}

	out := make([]float32, 0, CubeVertexCount*6)
	for _, f := range cubeFaces {
		n := f.normal
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			p := corner(f.corners[i])
			out = append(out, p.X, p.Y, p.Z, n.X, n.Y, n.Z)
		}
	}
	return out
}

// sceneGeometry holds the vertex data for one scene, ready for upload.
type sceneGeometry struct {
	cubes      []float32 // CubeVertexCount vertices per object
	wireframes []float32 // debug.BBoxWireframeVertexCount colored vertices per object
	grid       []float32
}

func buildSceneGeometry(objects []picking.SceneObject, gridSize int) sceneGeometry {
	var g sceneGeometry
	for _, o := range objects {
		g.cubes = append(g.cubes, CubeVertices(o.Box)...)

		wire := debug.PaddedWireframeVertices(o.Box, debug.DefaultBBoxPadding)
		for i := 0; i < len(wire); i += 3 {
			c := HighlightColor
			g.wireframes = append(g.wireframes, wire[i], wire[i+1], wire[i+2], c[0], c[1], c[2])
		}
	}
	g.grid = debug.Flatten(debug.GridLines(gridSize, 0))
	return g
}
