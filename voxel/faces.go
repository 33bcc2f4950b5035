package voxel

import "github.com/go-gl/mathgl/mgl32"

// Face enumerates the six cube face directions.
type Face uint8

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

type faceDef struct {
	normal  mgl32.Vec3
	offset  [3]int
	corners [4][3]int // counter-clockwise seen from outside
	shade   float32
	// ao holds, per corner, the two edge probes and the diagonal probe,
	// relative to the block that owns the face.
	ao [4][3][3]int
}

var faces = [6]faceDef{
	FacePosX: {
		normal:  mgl32.Vec3{1, 0, 0},
		offset:  [3]int{1, 0, 0},
		corners: [4][3]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
		shade:   0.84,
		ao: [4][3][3]int{
			{{1, -1, 0}, {1, 0, -1}, {1, -1, -1}},
			{{1, 1, 0}, {1, 0, -1}, {1, 1, -1}},
			{{1, 1, 0}, {1, 0, 1}, {1, 1, 1}},
			{{1, -1, 0}, {1, 0, 1}, {1, -1, 1}},
		},
	},
	FaceNegX: {
		normal:  mgl32.Vec3{-1, 0, 0},
		offset:  [3]int{-1, 0, 0},
		corners: [4][3]int{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}},
		shade:   0.72,
		ao: [4][3][3]int{
			{{-1, -1, 0}, {-1, 0, 1}, {-1, -1, 1}},
			{{-1, 1, 0}, {-1, 0, 1}, {-1, 1, 1}},
			{{-1, 1, 0}, {-1, 0, -1}, {-1, 1, -1}},
			{{-1, -1, 0}, {-1, 0, -1}, {-1, -1, -1}},
		},
	},
	FacePosY: {
		normal:  mgl32.Vec3{0, 1, 0},
		offset:  [3]int{0, 1, 0},
		corners: [4][3]int{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
		shade:   1.0,
		ao: [4][3][3]int{
			{{-1, 1, 0}, {0, 1, 1}, {-1, 1, 1}},
			{{1, 1, 0}, {0, 1, 1}, {1, 1, 1}},
			{{1, 1, 0}, {0, 1, -1}, {1, 1, -1}},
			{{-1, 1, 0}, {0, 1, -1}, {-1, 1, -1}},
		},
	},
	FaceNegY: {
		normal:  mgl32.Vec3{0, -1, 0},
		offset:  [3]int{0, -1, 0},
		corners: [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		shade:   0.55,
		ao: [4][3][3]int{
			{{-1, -1, 0}, {0, -1, -1}, {-1, -1, -1}},
			{{1, -1, 0}, {0, -1, -1}, {1, -1, -1}},
			{{1, -1, 0}, {0, -1, 1}, {1, -1, 1}},
			{{-1, -1, 0}, {0, -1, 1}, {-1, -1, 1}},
		},
	},
	FacePosZ: {
		normal:  mgl32.Vec3{0, 0, 1},
		offset:  [3]int{0, 0, 1},
		corners: [4][3]int{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {0, 0, 1}},
		shade:   0.8,
		ao: [4][3][3]int{
			{{1, 0, 1}, {0, -1, 1}, {1, -1, 1}},
			{{1, 0, 1}, {0, 1, 1}, {1, 1, 1}},
			{{-1, 0, 1}, {0, 1, 1}, {-1, 1, 1}},
			{{-1, 0, 1}, {0, -1, 1}, {-1, -1, 1}},
		},
	},
	FaceNegZ: {
		normal:  mgl32.Vec3{0, 0, -1},
		offset:  [3]int{0, 0, -1},
		corners: [4][3]int{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
		shade:   0.75,
		ao: [4][3][3]int{
			{{-1, 0, -1}, {0, -1, -1}, {-1, -1, -1}},
			{{-1, 0, -1}, {0, 1, -1}, {-1, 1, -1}},
			{{1, 0, -1}, {0, 1, -1}, {1, 1, -1}},
			{{1, 0, -1}, {0, -1, -1}, {1, -1, -1}},
		},
	},
}

// Normal returns the unit normal of the face.
func (f Face) Normal() mgl32.Vec3 {
	return faces[f].normal
}
