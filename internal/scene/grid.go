package scene

// Vertex is one composite plane vertex in destination and source pixels.
type Vertex struct {
	DstX, DstY float32
	SrcX, SrcY float32
}

// GridMesh builds a segments×segments plane covering a width×height target.
// Source coordinates equal destination coordinates because every shader input
// image is sized to the viewport.
func GridMesh(segments, width, height int) ([]Vertex, []uint16) {
	if segments < 1 {
		segments = 1
	}
	stride := segments + 1
	verts := make([]Vertex, 0, stride*stride)
	for row := 0; row <= segments; row++ {
		y := float32(height) * float32(row) / float32(segments)
		for col := 0; col <= segments; col++ {
			x := float32(width) * float32(col) / float32(segments)
			verts = append(verts, Vertex{DstX: x, DstY: y, SrcX: x, SrcY: y})
		}
	}
	indices := make([]uint16, 0, segments*segments*6)
	for row := 0; row < segments; row++ {
		for col := 0; col < segments; col++ {
			i0 := uint16(row*stride + col)
			i1 := i0 + 1
			i2 := i0 + uint16(stride)
			i3 := i2 + 1
			indices = append(indices, i0, i1, i2, i1, i3, i2)
		}
	}
	return verts, indices
}
