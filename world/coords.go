package world

import "tovaview/voxel"

// Position identifies a chunk column on the chunk grid.
type Position struct {
	X, Z int
}

// ChunkCoord returns the chunk coordinate containing world coordinate w.
// It rounds toward negative infinity, so -1 lands in chunk -1.
func ChunkCoord(w int) int {
	c := w / voxel.ChunkSize
	if w%voxel.ChunkSize < 0 {
		c--
	}
	return c
}

// LocalCoord returns w's offset inside its chunk, always in [0, ChunkSize).
func LocalCoord(w int) int {
	return w - ChunkCoord(w)*voxel.ChunkSize
}

// PositionAt returns the column holding world column (wx, wz).
func PositionAt(wx, wz int) Position {
	return Position{ChunkCoord(wx), ChunkCoord(wz)}
}
