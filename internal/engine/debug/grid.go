package debug

// LineVertex is a colored line endpoint.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// GridColor is the color of the ground grid lines.
var GridColor = [3]float32{0.5, 0.5, 0.5}

// GridLines generates a square grid of size×size unit cells on the plane
// y = height, centered on the origin. Returns two vertices per line.
func GridLines(size int, height float32) []LineVertex {
	if size <= 0 {
		return nil
	}

	half := float32(size) / 2
	vertices := make([]LineVertex, 0, 4*(size+1))
	c := GridColor

	// Lines along Z
	for i := 0; i <= size; i++ {
		x := float32(i) - half
		vertices = append(vertices,
			LineVertex{x, height, -half, c[0], c[1], c[2]},
			LineVertex{x, height, half, c[0], c[1], c[2]},
		)
	}

	// Lines along X
	for i := 0; i <= size; i++ {
		z := float32(i) - half
		vertices = append(vertices,
			LineVertex{-half, height, z, c[0], c[1], c[2]},
			LineVertex{half, height, z, c[0], c[1], c[2]},
		)
	}

	return vertices
}

// Flatten converts line vertices to interleaved [x, y, z, r, g, b] floats.
func Flatten(vertices []LineVertex) []float32 {
	out := make([]float32, 0, len(vertices)*6)
	for _, v := range vertices {
		out = append(out, v.X, v.Y, v.Z, v.R, v.G, v.B)
	}
	return out
}
