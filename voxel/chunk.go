package voxel

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ChunkSize   = 16
	WorldHeight = 128
	SeaLevel    = 48

	// ChunkVolume is the number of cells in one chunk.
	ChunkVolume = ChunkSize * ChunkSize * WorldHeight
)

// ErrOutOfRange is returned for local coordinates outside the chunk.
var ErrOutOfRange = errors.New("voxel: local coordinate out of range")

// Chunk is a 16×128×16 column of blocks at grid position (CX, CZ).
// Cells are stored flat, y outermost: index = x + 16*(z + 16*y).
type Chunk struct {
	CX, CZ int
	blocks []uint8
}

// NewChunk allocates an all-Air chunk.
func NewChunk(cx, cz int) *Chunk {
	return &Chunk{
		CX:     cx,
		CZ:     cz,
		blocks: make([]uint8, ChunkVolume),
	}
}

// Index returns the linear cell index of local coordinates. It does not bounds-check.
func Index(x, y, z int) int {
	return x + ChunkSize*(z+ChunkSize*y)
}

// InBounds reports whether local coordinates address a cell of the chunk.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize &&
		z >= 0 && z < ChunkSize &&
		y >= 0 && y < WorldHeight
}

// Get returns the block at local coordinates.
func (c *Chunk) Get(x, y, z int) (Block, error) {
	if !InBounds(x, y, z) {
		return Air, fmt.Errorf("%w: get (%d,%d,%d)", ErrOutOfRange, x, y, z)
	}
	return c.at(x, y, z), nil
}

// Set stores a block at local coordinates.
func (c *Chunk) Set(x, y, z int, b Block) error {
	if !InBounds(x, y, z) {
		return fmt.Errorf("%w: set (%d,%d,%d)", ErrOutOfRange, x, y, z)
	}
	c.put(x, y, z, b)
	return nil
}

// at and put skip the bounds check; callers iterate known ranges.
func (c *Chunk) at(x, y, z int) Block {
	return FromRaw(c.blocks[Index(x, y, z)])
}

func (c *Chunk) put(x, y, z int, b Block) {
	c.blocks[Index(x, y, z)] = uint8(b)
}

// Origin is the world-space position of local cell (0,0,0).
func (c *Chunk) Origin() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.CX * ChunkSize), 0, float32(c.CZ * ChunkSize)}
}

// Count returns how many cells hold b.
func (c *Chunk) Count(b Block) int {
	n := 0
	for _, raw := range c.blocks {
		if FromRaw(raw) == b {
			n++
		}
	}
	return n
}

// neighbor looks up a block relative to local coordinates. Anything outside
// this chunk, horizontally or vertically, reads as Air; adjacent chunks are
// never consulted.
func (c *Chunk) neighbor(x, y, z int) Block {
	if !InBounds(x, y, z) {
		return Air
	}
	return c.at(x, y, z)
}
