package voxel

import "math"

// HeightAt returns the terrain height of the world column (wx, wz): layered
// sine waves around sea level, truncated and clamped to [1, WorldHeight-1].
func HeightAt(wx, wz int) int {
	fx := float64(wx) * 0.02
	fz := float64(wz) * 0.02

	h1 := math.Sin(fx*0.7+0.3) * 8
	h2 := math.Sin(fz*0.9+1.1) * 6
	h3 := math.Sin(fx*1.8+fz*1.3) * 3
	h4 := math.Sin(fx*0.3-fz*0.5+2.0) * 12

	height := float64(SeaLevel) + h1 + h2 + h3 + h4
	if math.IsNaN(height) {
		return 1
	}
	return min(max(int(height), 1), WorldHeight-1)
}

// Generate fills the chunk with terrain. Every cell is written, so calling it
// again on the same chunk yields the same layout.
func (c *Chunk) Generate() {
	baseX := c.CX * ChunkSize
	baseZ := c.CZ * ChunkSize

	for lz := 0; lz < ChunkSize; lz++ {
		for lx := 0; lx < ChunkSize; lx++ {
			h := HeightAt(baseX+lx, baseZ+lz)
			for y := 0; y < WorldHeight; y++ {
				c.put(lx, y, lz, columnBlock(y, h))
			}
		}
	}
}

// columnBlock picks the block at height y of a column whose surface is h.
// Order matters: sand versus dirt/grass compares h against SeaLevel+2.
func columnBlock(y, h int) Block {
	beach := h <= SeaLevel+2
	switch {
	case y == 0:
		return Stone
	case y < h-4:
		return Stone
	case y < h-1:
		if beach {
			return Sand
		}
		return Dirt
	case y < h:
		if beach {
			return Sand
		}
		return Grass
	case y < SeaLevel:
		return Water
	default:
		return Air
	}
}
