package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"tovaview/world"
)

// chunkData is one uploaded chunk mesh.
type chunkData struct {
	pos        world.Position
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// frameStats is what the debug overlay reports.
type frameStats struct {
	fps      float64
	position mgl32.Vec3
	chunk    world.Position
	world    world.Stats
	ao       bool
}
