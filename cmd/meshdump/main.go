// Command meshdump builds the world headlessly and writes it as Wavefront OBJ.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tovaview/config"
	"tovaview/export"
	"tovaview/voxel"
	"tovaview/world"
)

func main() {
	cfg := config.DefaultConfig()
	config.RegisterFlags(flag.CommandLine, cfg, false)
	configPath := flag.String("config", "", "YAML config file")
	outPath := flag.String("o", "world.obj", "output file (.zst compresses)")
	flag.Parse()

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			slog.Error("load config", "error", err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, config.ExplicitFlags(flag.CommandLine))
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	builder := world.NewBuilder(cfg.Workers, voxel.MesherOptions{AmbientOcclusion: cfg.AmbientOcclusion}, log)
	w, err := builder.Build(ctx, cfg.ChunkRadius)
	if err != nil {
		log.Error("build world", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	f, err := export.Create(*outPath)
	if err != nil {
		log.Error("create output", "path", *outPath, "error", err)
		os.Exit(1)
	}
	sum, err := export.WriteOBJ(f, w)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Error("write obj", "path", *outPath, "error", err)
		os.Exit(1)
	}
	log.Info("obj written",
		"path", *outPath,
		"objects", sum.Objects,
		"vertices", sum.Vertices,
		"triangles", sum.Triangles,
		"elapsed", time.Since(start),
	)
}
