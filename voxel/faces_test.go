package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func cornerVec(c [3]int) mgl32.Vec3 {
	return mgl32.Vec3{float32(c[0]), float32(c[1]), float32(c[2])}
}

// normalAxis returns the axis a face points along and the coordinate its
// corners share on that axis (1 for positive faces, 0 for negative ones).
func normalAxis(t *testing.T, face *faceDef) (axis, plane int) {
	t.Helper()
	axis = -1
	for i, o := range face.offset {
		if o == 0 {
			continue
		}
		if axis >= 0 || (o != 1 && o != -1) {
			t.Fatalf("offset %v is not a unit step", face.offset)
		}
		axis = i
	}
	if axis < 0 {
		t.Fatalf("offset %v is zero", face.offset)
	}
	return axis, max(face.offset[axis], 0)
}

func TestFaceTables(t *testing.T) {
	for f := range faces {
		face := &faces[f]
		axis, plane := normalAxis(t, face)
		if want := cornerVec(face.offset); face.normal != want {
			t.Errorf("face %d: normal %v, want %v", f, face.normal, want)
		}
		if Face(f).Normal() != face.normal {
			t.Errorf("face %d: Normal() = %v, want %v", f, Face(f).Normal(), face.normal)
		}
		seen := map[[3]int]bool{}
		for i, c := range face.corners {
			if c[axis] != plane {
				t.Errorf("face %d corner %d = %v, off the face plane", f, i, c)
			}
			seen[c] = true
		}
		if len(seen) != 4 {
			t.Errorf("face %d: corners %v are not distinct", f, face.corners)
		}
	}
}

func TestFaceWinding(t *testing.T) {
	splits := []struct {
		name   string
		levels [4]int
	}{
		{"diagonal 0-2", [4]int{3, 3, 3, 3}},
		{"diagonal 1-3", [4]int{0, 3, 0, 3}},
	}
	for f := range faces {
		face := &faces[f]
		for _, s := range splits {
			idx := appendQuad(nil, 0, s.levels)
			for k := 0; k < len(idx); k += 3 {
				v0 := cornerVec(face.corners[idx[k]])
				v1 := cornerVec(face.corners[idx[k+1]])
				v2 := cornerVec(face.corners[idx[k+2]])
				n := v1.Sub(v0).Cross(v2.Sub(v0))
				if n.Dot(face.normal) <= 0 {
					t.Errorf("face %d %s: triangle %v has normal %v, want along %v",
						f, s.name, idx[k:k+3], n, face.normal)
				}
			}
		}
	}
}

// cornerProbes derives, from the corner position alone, the two edge cells
// and the diagonal cell that share the corner in the layer in front of the face.
func cornerProbes(face *faceDef, axis int, corner [3]int) (edges [2][3]int, diag [3]int) {
	diag = face.offset
	e := 0
	for i := range 3 {
		if i == axis {
			continue
		}
		step := 2*corner[i] - 1
		edges[e] = face.offset
		edges[e][i] = step
		diag[i] = step
		e++
	}
	return edges, diag
}

func TestFaceOcclusionProbes(t *testing.T) {
	for f := range faces {
		face := &faces[f]
		axis, _ := normalAxis(t, face)
		for i, corner := range face.corners {
			edges, diag := cornerProbes(face, axis, corner)
			got := face.ao[i]
			if got[2] != diag {
				t.Errorf("face %d corner %d: diagonal probe %v, want %v", f, i, got[2], diag)
			}
			if !(got[0] == edges[0] && got[1] == edges[1]) && !(got[0] == edges[1] && got[1] == edges[0]) {
				t.Errorf("face %d corner %d: edge probes %v %v, want %v %v",
					f, i, got[0], got[1], edges[0], edges[1])
			}
		}
	}
}

func TestAmbientOcclusionEnclosedCornerEveryFace(t *testing.T) {
	const x, y, z = 8, 64, 8
	for f := range faces {
		face := &faces[f]
		axis, _ := normalAxis(t, face)
		for i, corner := range face.corners {
			c := NewChunk(0, 0)
			mustSet(t, c, x, y, z, Stone)
			edges, diag := cornerProbes(face, axis, corner)
			for _, p := range [][3]int{edges[0], edges[1], diag} {
				mustSet(t, c, x+p[0], y+p[1], z+p[2], Stone)
			}

			levels := cornerOcclusion(c, face, x, y, z)
			want := [4]int{3, 3, 3, 3}
			want[i] = 0
			want[(i+1)%4] = 2
			want[(i+3)%4] = 2
			if levels != want {
				t.Errorf("face %d corner %d: levels %v, want %v", f, i, levels, want)
			}

			pos := mgl32.Vec3{x, y, z}.Add(cornerVec(corner))
			wantColor := shadeColor(Stone.Color(), face.shade*altitudeTint(y)*AOBrightness(0))
			m := aoMesher().Build(c)
			found := false
			for _, v := range m.Vertices {
				if v.Position == pos && v.Normal == face.normal {
					found = true
					if !v.Color.ApproxEqual(wantColor) {
						t.Errorf("face %d corner %d: colour %v, want %v", f, i, v.Color, wantColor)
					}
				}
			}
			if !found {
				t.Errorf("face %d corner %d: no vertex at %v", f, i, pos)
			}
		}
	}
}
