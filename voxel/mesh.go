package voxel

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout consumed by the renderer: three float32 triples in this order.
type Vertex struct {
	Position mgl32.Vec3 // world space
	Color    mgl32.Vec3 // linear, 0-1
	Normal   mgl32.Vec3
}

const (
	// VertexStride is the byte size of one Vertex in the vertex stream.
	VertexStride = 9 * 4

	PositionOffset = 0
	ColorOffset    = 3 * 4
	NormalOffset   = 6 * 4
)

// Mesh is the renderable output for one chunk. It keeps no reference to the chunk.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// FaceCount returns the number of emitted quads.
func (m *Mesh) FaceCount() int {
	return len(m.Vertices) / 4
}

// Bounds returns the axis-aligned box enclosing every vertex.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi
}

// VertexBytes encodes the vertex stream little-endian, VertexStride bytes per vertex.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		for _, vec := range [3]mgl32.Vec3{v.Position, v.Color, v.Normal} {
			for _, f := range vec {
				buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
			}
		}
	}
	return buf
}

// IndexBytes encodes the index stream as little-endian uint32s.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, 0, len(m.Indices)*4)
	for _, i := range m.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, i)
	}
	return buf
}
