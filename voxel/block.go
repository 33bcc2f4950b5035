package voxel

import "github.com/go-gl/mathgl/mgl32"

// Block is a block type identifier. The zero value is Air.
type Block uint8

const (
	Air Block = iota
	Grass
	Dirt
	Stone
	Sand
	Water
	Cobble

	blockCount
)

var blockNames = [blockCount]string{
	Air:    "air",
	Grass:  "grass",
	Dirt:   "dirt",
	Stone:  "stone",
	Sand:   "sand",
	Water:  "water",
	Cobble: "cobble",
}

var blockColors = [blockCount]mgl32.Vec3{
	Air:    {0, 0, 0}, // never meshed
	Grass:  {0.31, 0.54, 0.25},
	Dirt:   {0.43, 0.31, 0.20},
	Stone:  {0.52, 0.55, 0.58},
	Sand:   {0.71, 0.65, 0.44},
	Water:  {0.16, 0.34, 0.58},
	Cobble: {0.60, 0.60, 0.62},
}

// FromRaw maps a stored byte to a block type. Unknown values become Air.
func FromRaw(v uint8) Block {
	if v >= uint8(blockCount) {
		return Air
	}
	return Block(v)
}

// IsSolid reports whether the block occludes neighbours. Air and Water do not.
func (b Block) IsSolid() bool {
	switch b {
	case Air, Water:
		return false
	}
	return b < blockCount
}

// IsTransparent is true only for Air.
func (b Block) IsTransparent() bool {
	return FromRaw(uint8(b)) == Air
}

// Color returns the base display colour in linear 0-1 RGB.
func (b Block) Color() mgl32.Vec3 {
	return blockColors[FromRaw(uint8(b))]
}

func (b Block) String() string {
	return blockNames[FromRaw(uint8(b))]
}
