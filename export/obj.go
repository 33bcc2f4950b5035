// Package export writes built worlds to Wavefront OBJ.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"tovaview/voxel"
	"tovaview/world"
)

// Summary counts what WriteOBJ emitted.
type Summary struct {
	Objects   int
	Vertices  int
	Triangles int
}

// WriteOBJ writes one object per meshed chunk, in world.Columns order.
// Vertices carry their colour as the r g b extension after x y z, and
// every triangle references one of six shared normals.
func WriteOBJ(w io.Writer, wld *world.World) (Summary, error) {
	out := newObjWriter(w)
	out.printf("# tovaview radius %d\n", wld.Radius())
	out.normals()

	for _, col := range wld.Columns() {
		if col.Mesh == nil {
			continue
		}
		out.object(col.Chunk.CX, col.Chunk.CZ, col.Mesh)
	}
	if err := out.flush(); err != nil {
		return Summary{}, fmt.Errorf("export: %w", err)
	}
	return out.sum, nil
}

type objWriter struct {
	bw  *bufio.Writer
	buf []byte
	err error

	base int // vertices written so far; OBJ indices are 1-based
	sum  Summary
}

func newObjWriter(w io.Writer) *objWriter {
	return &objWriter{bw: bufio.NewWriterSize(w, 256*1024), buf: make([]byte, 0, 128)}
}

func (o *objWriter) printf(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.bw, format, args...)
}

func (o *objWriter) line() {
	if o.err == nil {
		o.buf = append(o.buf, '\n')
		_, o.err = o.bw.Write(o.buf)
	}
	o.buf = o.buf[:0]
}

func (o *objWriter) floats(prefix string, vs ...float32) {
	o.buf = append(o.buf, prefix...)
	for _, v := range vs {
		o.buf = append(o.buf, ' ')
		o.buf = strconv.AppendFloat(o.buf, float64(v), 'f', -1, 32)
	}
	o.line()
}

func (o *objWriter) normals() {
	for f := voxel.FacePosX; f <= voxel.FaceNegZ; f++ {
		n := f.Normal()
		o.floats("vn", n[0], n[1], n[2])
	}
}

// normalIndex returns the 1-based vn index of n.
func normalIndex(n mgl32.Vec3) int {
	for f := voxel.FacePosX; f <= voxel.FaceNegZ; f++ {
		if f.Normal() == n {
			return int(f) + 1
		}
	}
	return 1
}

func (o *objWriter) object(cx, cz int, m *voxel.Mesh) {
	o.printf("o chunk_%d_%d\n", cx, cz)
	for _, v := range m.Vertices {
		p, c := v.Position, v.Color
		o.floats("v", p[0], p[1], p[2], c[0], c[1], c[2])
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		o.buf = append(o.buf, 'f')
		for _, idx := range m.Indices[i : i+3] {
			o.buf = append(o.buf, ' ')
			o.buf = strconv.AppendInt(o.buf, int64(o.base+int(idx)+1), 10)
			o.buf = append(o.buf, "//"...)
			o.buf = strconv.AppendInt(o.buf, int64(normalIndex(m.Vertices[idx].Normal)), 10)
		}
		o.line()
	}
	o.base += len(m.Vertices)
	o.sum.Objects++
	o.sum.Vertices += len(m.Vertices)
	o.sum.Triangles += len(m.Indices) / 3
}

func (o *objWriter) flush() error {
	if o.err != nil {
		return o.err
	}
	return o.bw.Flush()
}
