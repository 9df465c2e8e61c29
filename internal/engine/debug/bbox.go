// Package debug provides debug visualization geometry.
package debug

import (
	"github.com/Faultbox/boxpick/internal/engine/picking"
	"github.com/Faultbox/boxpick/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding keeps the selection outline off the cube faces.
const DefaultBBoxPadding = 0.02

// WireframeVertices creates line vertices for a wireframe box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func WireframeVertices(box picking.AABB) []float32 {
	lo, hi := box.Min, box.Max
	return []float32{
		// Bottom face
		lo.X, lo.Y, lo.Z, hi.X, lo.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, lo.Y, hi.Z,
		hi.X, lo.Y, hi.Z, lo.X, lo.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, lo.Y, lo.Z,
		// Top face
		lo.X, hi.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, hi.Y, lo.Z, hi.X, hi.Y, hi.Z,
		hi.X, hi.Y, hi.Z, lo.X, hi.Y, hi.Z,
		lo.X, hi.Y, hi.Z, lo.X, hi.Y, lo.Z,
		// Vertical edges
		lo.X, lo.Y, lo.Z, lo.X, hi.Y, lo.Z,
		hi.X, lo.Y, lo.Z, hi.X, hi.Y, lo.Z,
		hi.X, lo.Y, hi.Z, hi.X, hi.Y, hi.Z,
		lo.X, lo.Y, hi.Z, lo.X, hi.Y, hi.Z,
	}
}

// PaddedWireframeVertices grows box by padding on every side before
// generating its wireframe.
func PaddedWireframeVertices(box picking.AABB, padding float32) []float32 {
	pad := math.Splat3(padding)
	return WireframeVertices(picking.AABB{Min: box.Min.Sub(pad), Max: box.Max.Add(pad)})
}
