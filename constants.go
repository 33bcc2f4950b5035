package main

import "github.com/go-gl/mathgl/mgl32"

const (
	flyingSpeed      float32 = 14
	sprintMultiplier float32 = 3
	velocityDamp     float32 = 0.35

	// Fixed physics step; rendering interpolates between steps.
	tickUpdateRate float32 = 1.0 / 60

	mouseSensitivity = 0.3

	nearClipPlane float32 = 0.1
	farClipPlane  float32 = 600

	fpsInterval = 250 // ms between HUD refreshes

	hudFontSize  = 16
	hudWidth     = 512
	hudHeight    = 128
	hudLineSpace = 20
)

var (
	skyHorizon = mgl32.Vec3{0.72, 0.83, 0.95}
	skyZenith  = mgl32.Vec3{0.29, 0.52, 0.86}
)
