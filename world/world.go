// Package world assembles a square grid of generated and meshed chunks.
package world

import (
	"log/slog"

	"tovaview/voxel"
)

// Column is one chunk and its mesh. Mesh is nil when nothing was visible.
type Column struct {
	Chunk *voxel.Chunk
	Mesh  *voxel.Mesh
}

func (c *Column) Position() Position {
	return Position{c.Chunk.CX, c.Chunk.CZ}
}

// World holds the columns produced by a Builder. Chunks are read-only once
// built; only Remesh replaces meshes.
type World struct {
	radius  int
	workers int
	log     *slog.Logger
	opts    voxel.MesherOptions

	columns map[Position]*Column
	order   []*Column
}

// Stats summarises the meshes of a world.
type Stats struct {
	Chunks   int
	Meshed   int
	Faces    int
	Vertices int
	Indices  int
}

func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("chunks", s.Chunks),
		slog.Int("meshed", s.Meshed),
		slog.Int("faces", s.Faces),
		slog.Int("vertices", s.Vertices),
		slog.Int("indices", s.Indices),
	)
}

func newWorld(radius, workers int, log *slog.Logger) *World {
	side := 2 * radius
	return &World{
		radius:  radius,
		workers: workers,
		log:     log,
		columns: make(map[Position]*Column, side*side),
		order:   make([]*Column, 0, side*side),
	}
}

func (w *World) add(col *Column) {
	w.columns[col.Position()] = col
	w.order = append(w.order, col)
}

// Radius is the grid bound the world was built with: cx, cz in [-Radius, Radius).
func (w *World) Radius() int {
	return w.radius
}

// MesherOptions reports the options the current meshes were built with.
func (w *World) MesherOptions() voxel.MesherOptions {
	return w.opts
}

// Columns returns every column ordered by cz, then cx.
func (w *World) Columns() []*Column {
	return w.order
}

// Chunk returns the chunk at (cx, cz), or nil when it is not loaded.
func (w *World) Chunk(cx, cz int) *voxel.Chunk {
	if col, ok := w.columns[Position{cx, cz}]; ok {
		return col.Chunk
	}
	return nil
}

// Mesh returns the mesh of chunk (cx, cz), or nil.
func (w *World) Mesh(cx, cz int) *voxel.Mesh {
	if col, ok := w.columns[Position{cx, cz}]; ok {
		return col.Mesh
	}
	return nil
}

// BlockAt looks up a block by world coordinates. Cells outside the height
// range or in unloaded chunks read as Air.
func (w *World) BlockAt(wx, y, wz int) voxel.Block {
	if y < 0 || y >= voxel.WorldHeight {
		return voxel.Air
	}
	c := w.Chunk(ChunkCoord(wx), ChunkCoord(wz))
	if c == nil {
		return voxel.Air
	}
	b, err := c.Get(LocalCoord(wx), y, LocalCoord(wz))
	if err != nil {
		return voxel.Air
	}
	return b
}

// SpawnHeight returns the y of the lowest free cell above the surface of
// column (wx, wz), counting water as surface. Unloaded columns fall back to
// the terrain height function.
func (w *World) SpawnHeight(wx, wz int) int {
	if w.Chunk(ChunkCoord(wx), ChunkCoord(wz)) == nil {
		return max(voxel.HeightAt(wx, wz), voxel.SeaLevel)
	}
	for y := voxel.WorldHeight - 1; y >= 0; y-- {
		if w.BlockAt(wx, y, wz) != voxel.Air {
			return y + 1
		}
	}
	return 0
}

// Stats totals the current meshes.
func (w *World) Stats() Stats {
	s := Stats{Chunks: len(w.order)}
	for _, col := range w.order {
		if col.Mesh == nil {
			continue
		}
		s.Meshed++
		s.Faces += col.Mesh.FaceCount()
		s.Vertices += len(col.Mesh.Vertices)
		s.Indices += len(col.Mesh.Indices)
	}
	return s
}
