package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"tovaview/voxel"
	"tovaview/world"
)

// terrain owns the GPU copies of every chunk mesh and the program drawing them.
type terrain struct {
	program uint32
	chunks  []chunkData
}

func newTerrain(w *world.World) (*terrain, error) {
	program, err := newProgram("chunk")
	if err != nil {
		return nil, err
	}
	t := &terrain{program: program}
	t.upload(w)

	gl.UseProgram(program)
	gl.Uniform3fv(uniform(program, "fogColor"), 1, &skyHorizon[0])
	fogEnd := max(worldExtent(w), voxel.ChunkSize) / 2
	gl.Uniform1f(uniform(program, "fogStart"), fogEnd*0.6)
	gl.Uniform1f(uniform(program, "fogEnd"), fogEnd)
	return t, nil
}

// worldExtent is the wider horizontal side of the box enclosing every mesh.
func worldExtent(w *world.World) float32 {
	var lo, hi mgl32.Vec3
	first := true
	for _, col := range w.Columns() {
		if col.Mesh == nil {
			continue
		}
		mlo, mhi := col.Mesh.Bounds()
		if first {
			lo, hi, first = mlo, mhi, false
			continue
		}
		for i := range lo {
			lo[i] = min(lo[i], mlo[i])
			hi[i] = max(hi[i], mhi[i])
		}
	}
	return max(hi.X()-lo.X(), hi.Z()-lo.Z())
}

// upload replaces every buffer with the world's current meshes.
func (t *terrain) upload(w *world.World) {
	t.release()
	for _, col := range w.Columns() {
		if col.Mesh == nil {
			continue
		}
		t.chunks = append(t.chunks, createChunkVAO(col.Position(), col.Mesh))
	}
}

func (t *terrain) release() {
	for _, c := range t.chunks {
		gl.DeleteVertexArrays(1, &c.vao)
		gl.DeleteBuffers(1, &c.vbo)
		gl.DeleteBuffers(1, &c.ebo)
	}
	t.chunks = t.chunks[:0]
}

// createChunkVAO uploads one mesh. Vertices are already in world space, so
// chunks need no model matrix.
func createChunkVAO(pos world.Position, mesh *voxel.Mesh) chunkData {
	c := chunkData{pos: pos, indexCount: int32(len(mesh.Indices))}

	vertices := mesh.VertexBytes()
	indices := mesh.IndexBytes()

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &c.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices), gl.Ptr(indices), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, voxel.VertexStride, voxel.PositionOffset)
	gl.EnableVertexAttribArray(0)
	// Colour
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, voxel.VertexStride, voxel.ColorOffset)
	gl.EnableVertexAttribArray(1)
	// Normal
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, voxel.VertexStride, voxel.NormalOffset)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return c
}

func (t *terrain) render(projection, view mgl32.Mat4) {
	gl.UseProgram(t.program)
	gl.UniformMatrix4fv(uniform(t.program, "projection"), 1, false, &projection[0])
	gl.UniformMatrix4fv(uniform(t.program, "view"), 1, false, &view[0])

	for _, c := range t.chunks {
		gl.BindVertexArray(c.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, c.indexCount, gl.UNSIGNED_INT, 0)
	}
	gl.BindVertexArray(0)
}
