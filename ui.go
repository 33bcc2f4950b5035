package main

import (
	"fmt"
	"image"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// hud is the debug overlay: text rasterised into one texture drawn at the
// top-left corner.
type hud struct {
	prog    uint32
	vao     uint32
	vbo     uint32
	texture uint32
	ctx     *freetype.Context
	dst     *image.RGBA
}

// hudQuad is the overlay rectangle as two triangles over the unit square.
// The ortho projection puts y=0 at the top of the window, which is also the
// first row of the canvas, so each corner doubles as its texture coordinate.
var hudQuad = []float32{
	0, 0, 1, 0, 1, 1,
	0, 0, 1, 1, 0, 1,
}

// newHUD sets up the freetype context and canvas with the embedded Go font.
func newHUD() (*hud, error) {
	prog, err := newProgram("text")
	if err != nil {
		return nil, err
	}
	ttf, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	h := &hud{prog: prog, dst: image.NewRGBA(image.Rect(0, 0, hudWidth, hudHeight))}
	h.ctx = freetype.NewContext()
	h.ctx.SetDPI(72)
	h.ctx.SetFont(ttf)
	h.ctx.SetFontSize(hudFontSize)
	h.ctx.SetDst(h.dst)
	h.ctx.SetClip(h.dst.Bounds())
	h.ctx.SetSrc(image.White)
	h.ctx.SetHinting(font.HintingFull)

	h.initQuad()
	h.initTexture()

	gl.UseProgram(prog)
	gl.Uniform1i(uniform(prog, "glyphs"), 0)
	return h, nil
}

func (h *hud) initQuad() {
	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(hudQuad)*4, gl.Ptr(hudQuad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)
	gl.BindVertexArray(0)
}

// initTexture allocates the overlay texture with the (blank) canvas.
func (h *hud) initTexture() {
	size := h.dst.Rect.Size()
	gl.GenTextures(1, &h.texture)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.dst.Pix))
	for _, p := range [][2]int32{
		{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
		{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
		{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
		{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
	} {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
}

// update redraws the overlay text and re-uploads the texture.
func (h *hud) update(lines []string) error {
	clear(h.dst.Pix)
	for i, line := range lines {
		pt := freetype.Pt(8, 4+(i+1)*hudLineSpace)
		if _, err := h.ctx.DrawString(line, pt); err != nil {
			return err
		}
	}

	size := h.dst.Rect.Size()
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(size.X), int32(size.Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.dst.Pix))
	return nil
}

func (h *hud) draw(width, height int) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(h.prog)
	projection := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	gl.UniformMatrix4fv(uniform(h.prog, "projection"), 1, false, &projection[0])
	model := mgl32.Scale3D(hudWidth, hudHeight, 1)
	gl.UniformMatrix4fv(uniform(h.prog, "model"), 1, false, &model[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(hudQuad)/2))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func roundString(v float32, places int) string {
	return strconv.FormatFloat(mgl64.Round(float64(v), places), 'f', -1, 64)
}

func hudLines(s *frameStats) []string {
	ao := "off"
	if s.ao {
		ao = "on"
	}
	return []string{
		"FPS: " + strconv.FormatFloat(mgl64.Round(s.fps, 1), 'f', -1, 64),
		"XYZ: " + roundString(s.position[0], 2) + ", " + roundString(s.position[1], 2) + ", " + roundString(s.position[2], 2),
		fmt.Sprintf("Chunk: %d, %d", s.chunk.X, s.chunk.Z),
		fmt.Sprintf("Chunks: %d (%d meshed)  Faces: %d", s.world.Chunks, s.world.Meshed, s.world.Faces),
		"Ambient occlusion: " + ao + " (F6)",
	}
}
