package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// sky is a gradient cube centred on the camera.
type sky struct {
	vao     uint32
	vbo     uint32
	ebo     uint32
	program uint32
}

// Corners of the unit cube, indexed by bit: 1 sets x, 2 sets y, 4 sets z.
var skyCorners = func() []float32 {
	v := make([]float32, 0, 8*3)
	for i := range 8 {
		for bit := 1; bit <= 4; bit <<= 1 {
			c := float32(-1)
			if i&bit != 0 {
				c = 1
			}
			v = append(v, c)
		}
	}
	return v
}()

// Two triangles per cube side; culling is off while the sky draws.
var skyIndices = []uint32{
	1, 3, 7, 1, 7, 5, // +X
	0, 4, 6, 0, 6, 2, // -X
	2, 6, 7, 2, 7, 3, // +Y
	0, 1, 5, 0, 5, 4, // -Y
	4, 5, 7, 4, 7, 6, // +Z
	0, 2, 3, 0, 3, 1, // -Z
}

// newSky uploads the cube and compiles the sky shaders.
func newSky() (*sky, error) {
	program, err := newProgram("sky")
	if err != nil {
		return nil, err
	}
	s := &sky{program: program}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyCorners)*4, gl.Ptr(skyCorners), gl.STATIC_DRAW)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(skyIndices)*4, gl.Ptr(skyIndices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)

	gl.BindVertexArray(0)

	gl.UseProgram(program)
	gl.Uniform3fv(uniform(program, "horizonColor"), 1, &skyHorizon[0])
	gl.Uniform3fv(uniform(program, "zenithColor"), 1, &skyZenith[0])
	return s, nil
}

// render draws the gradient cube around the camera. Call it after clearing
// and before the terrain, with the world's projection and view matrices.
func (s *sky) render(projection, view mgl32.Mat4) {
	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE) // ensure the inside of the cube is visible

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(uniform(s.program, "projection"), 1, false, &projection[0])
	gl.UniformMatrix4fv(uniform(s.program, "view"), 1, false, &view[0])

	gl.BindVertexArray(s.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(skyIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	// Restore state expected by the rest of the pipeline
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
}
