package world

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/alitto/pond/v2"

	"tovaview/voxel"
)

// Builder generates and meshes the chunk grid on a bounded worker pool.
type Builder struct {
	workers int
	mesher  *voxel.Mesher
	log     *slog.Logger
}

// NewBuilder returns a Builder running at most workers tasks at once.
// workers < 1 uses one worker per CPU; a nil logger discards output.
func NewBuilder(workers int, opts voxel.MesherOptions, log *slog.Logger) *Builder {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{workers: workers, mesher: voxel.NewMesher(opts), log: log}
}

// Build creates the chunks for cx, cz in [-radius, radius), generates their
// terrain and meshes them. Each task owns exactly one chunk.
func (b *Builder) Build(ctx context.Context, radius int) (*World, error) {
	if radius < 0 {
		return nil, fmt.Errorf("world: negative radius %d", radius)
	}
	start := time.Now()

	w := newWorld(radius, b.workers, b.log)
	w.opts = b.mesher.Options()
	for cz := -radius; cz < radius; cz++ {
		for cx := -radius; cx < radius; cx++ {
			w.add(&Column{Chunk: voxel.NewChunk(cx, cz)})
		}
	}

	err := w.each(ctx, func(_ int, col *Column) {
		col.Chunk.Generate()
		col.Mesh = b.mesher.Build(col.Chunk)
		b.log.Debug("chunk built", "cx", col.Chunk.CX, "cz", col.Chunk.CZ, "faces", faceCount(col.Mesh))
	})
	if err != nil {
		return nil, fmt.Errorf("world: build: %w", err)
	}

	b.log.Info("world built",
		"radius", radius,
		"ao", w.opts.AmbientOcclusion,
		"stats", w.Stats(),
		"elapsed", time.Since(start),
	)
	return w, nil
}

// Remesh rebuilds every mesh with opts, leaving the terrain untouched.
// Meshes are swapped in only when every column succeeded.
func (w *World) Remesh(ctx context.Context, opts voxel.MesherOptions) error {
	start := time.Now()
	mesher := voxel.NewMesher(opts)

	results := make([]*voxel.Mesh, len(w.order))
	err := w.each(ctx, func(i int, col *Column) {
		results[i] = mesher.Build(col.Chunk)
	})
	if err != nil {
		return fmt.Errorf("world: remesh: %w", err)
	}
	for i, col := range w.order {
		col.Mesh = results[i]
	}
	w.opts = mesher.Options()

	w.log.Info("world remeshed", "ao", w.opts.AmbientOcclusion, "stats", w.Stats(), "elapsed", time.Since(start))
	return nil
}

// each runs fn once per column, passing its index in Columns order, on a
// pool sized to the world's worker count. Tasks still queued when ctx ends
// skip fn and the context error is returned.
func (w *World) each(ctx context.Context, fn func(int, *Column)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pool := pond.NewPool(w.workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i, col := range w.order {
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i, col)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func faceCount(m *voxel.Mesh) int {
	if m == nil {
		return 0
	}
	return m.FaceCount()
}
