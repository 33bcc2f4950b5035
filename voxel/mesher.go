package voxel

import "github.com/go-gl/mathgl/mgl32"

// aoBrightness maps an occlusion level (0 = enclosed, 3 = open) to a light multiplier.
var aoBrightness = [4]float32{0.50, 0.65, 0.80, 1.00}

// AOBrightness returns the brightness multiplier for an occlusion level in [0,3].
func AOBrightness(level int) float32 {
	return aoBrightness[min(max(level, 0), 3)]
}

// MesherOptions selects the meshing path.
type MesherOptions struct {
	// AmbientOcclusion darkens corners by their solid neighbours and picks the
	// quad diagonal from the occlusion levels. When false every corner is fully
	// lit and quads split along 0-2.
	AmbientOcclusion bool
}

// Mesher turns chunk voxels into a culled, shaded triangle mesh. It holds no
// state besides its options and is safe for concurrent use.
type Mesher struct {
	opts MesherOptions
}

func NewMesher(opts MesherOptions) *Mesher {
	return &Mesher{opts: opts}
}

// Options returns the options the mesher was built with.
func (m *Mesher) Options() MesherOptions {
	return m.opts
}

// Build meshes the chunk. It returns nil when no face is visible.
func (m *Mesher) Build(c *Chunk) *Mesh {
	mesh := &Mesh{}
	origin := c.Origin()

	for y := 0; y < WorldHeight; y++ {
		altitude := altitudeTint(y)
		for lz := 0; lz < ChunkSize; lz++ {
			for lx := 0; lx < ChunkSize; lx++ {
				block := c.at(lx, y, lz)
				if block == Air {
					continue
				}
				base := block.Color()

				for f := range faces {
					face := &faces[f]
					neighbor := c.neighbor(lx+face.offset[0], y+face.offset[1], lz+face.offset[2])
					if !faceVisible(block, neighbor) {
						continue
					}

					levels := [4]int{3, 3, 3, 3}
					if m.opts.AmbientOcclusion {
						levels = cornerOcclusion(c, face, lx, y, lz)
					}

					first := uint32(len(mesh.Vertices))
					for i, corner := range face.corners {
						shade := face.shade * altitude * aoBrightness[levels[i]]
						mesh.Vertices = append(mesh.Vertices, Vertex{
							Position: origin.Add(mgl32.Vec3{
								float32(lx + corner[0]),
								float32(y + corner[1]),
								float32(lz + corner[2]),
							}),
							Color:  shadeColor(base, shade),
							Normal: face.normal,
						})
					}
					mesh.Indices = appendQuad(mesh.Indices, first, levels)
				}
			}
		}
	}

	if len(mesh.Indices) == 0 {
		return nil
	}
	return mesh
}

// faceVisible decides whether block shows the face it shares with neighbor.
func faceVisible(block, neighbor Block) bool {
	switch block {
	case Air:
		return false
	case Water:
		return neighbor == Air
	}
	return neighbor == Air || neighbor == Water
}

// altitudeTint brightens cells above sea level and darkens those below.
func altitudeTint(y int) float32 {
	return mgl32.Clamp(0.88+float32(y-SeaLevel)*0.004, 0.70, 1.15)
}

func shadeColor(base mgl32.Vec3, shade float32) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(base[0]*shade, 0, 1),
		mgl32.Clamp(base[1]*shade, 0, 1),
		mgl32.Clamp(base[2]*shade, 0, 1),
	}
}

// cornerOcclusion probes three cells per corner in the layer in front of the face.
func cornerOcclusion(c *Chunk, face *faceDef, x, y, z int) [4]int {
	var levels [4]int
	for i, probes := range face.ao {
		var solid [3]bool
		for j, p := range probes {
			solid[j] = c.neighbor(x+p[0], y+p[1], z+p[2]).IsSolid()
		}
		levels[i] = occlusionLevel(solid[0], solid[1], solid[2])
	}
	return levels
}

// occlusionLevel is 0 when both edges are solid, otherwise 3 minus the solid probes.
func occlusionLevel(side1, side2, corner bool) int {
	if side1 && side2 {
		return 0
	}
	n := 0
	for _, s := range [3]bool{side1, side2, corner} {
		if s {
			n++
		}
	}
	return 3 - n
}

// appendQuad emits two counter-clockwise triangles for the four vertices at
// first. The split runs along the diagonal whose corners are brighter
// together; ties keep 0-2.
func appendQuad(indices []uint32, first uint32, levels [4]int) []uint32 {
	if levels[1]+levels[3] > levels[0]+levels[2] {
		return append(indices,
			first, first+1, first+3,
			first+1, first+2, first+3,
		)
	}
	return append(indices,
		first, first+1, first+2,
		first, first+2, first+3,
	)
}
