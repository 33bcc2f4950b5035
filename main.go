// Command tovaview builds a voxel world and flies a camera over it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"tovaview/config"
	"tovaview/voxel"
	"tovaview/world"
)

func init() {
	// GLFW and GL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := config.DefaultConfig()
	config.RegisterFlags(flag.CommandLine, cfg, true)
	configPath := flag.String("config", "", "YAML config file")
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

	if err := run(cfg, log); err != nil {
		log.Error("viewer", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()

	ambientOcclusion = cfg.AmbientOcclusion
	showDebug = cfg.ShowDebug
	w, err := world.NewBuilder(cfg.Workers, voxel.MesherOptions{AmbientOcclusion: ambientOcclusion}, log).
		Build(ctx, cfg.ChunkRadius)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, "tovaview", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	windowedWidth, windowedHeight = cfg.WindowWidth, cfg.WindowHeight
	windowWidth, windowHeight = window.GetFramebufferSize()

	if cfg.IconPath != "" {
		if err := setWindowIcon(window, cfg.IconPath); err != nil {
			log.Warn("window icon", "error", err)
		}
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(windowWidth), int32(windowHeight))

	skybox, err := newSky()
	if err != nil {
		return err
	}
	land, err := newTerrain(w)
	if err != nil {
		return err
	}
	overlay, err := newHUD()
	if err != nil {
		return err
	}

	placeCamera(spawnPoint(w))
	window.SetFramebufferSizeCallback(onWindowResize)
	window.SetKeyCallback(input)
	window.SetCursorPosCallback(mouseMoveCallback)
	window.SetMouseButtonCallback(mouseInputCallback)
	setMouseLock(window, true)

	stats := frameStats{world: w.Stats(), ao: w.MesherOptions().AmbientOcclusion}
	previousFrame := time.Now()
	fpsStart := previousFrame
	frameCount := 0

	for !window.ShouldClose() {
		now := time.Now()
		deltaTime = float32(now.Sub(previousFrame).Seconds())
		previousFrame = now
		glfw.PollEvents()

		if remeshRequested {
			remeshRequested = false
			opts := voxel.MesherOptions{AmbientOcclusion: ambientOcclusion}
			if err := w.Remesh(ctx, opts); err != nil {
				return err
			}
			land.upload(w)
			stats.world = w.Stats()
			stats.ao = w.MesherOptions().AmbientOcclusion
		}

		movement(window)
		stepCamera()

		gl.ClearColor(skyHorizon[0], skyHorizon[1], skyHorizon[2], 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		projection := projectionMatrix(cfg.FOV, windowWidth, windowHeight)
		view := viewMatrix()
		skybox.render(projection, view)
		land.render(projection, view)

		frameCount++
		if elapsed := now.Sub(fpsStart); elapsed >= fpsInterval*time.Millisecond {
			stats.fps = float64(frameCount) / elapsed.Seconds()
			stats.position = cameraPositionLerped
			stats.chunk = world.PositionAt(floor(cameraPositionLerped.X()), floor(cameraPositionLerped.Z()))
			frameCount = 0
			fpsStart = now
			if showDebug {
				if err := overlay.update(hudLines(&stats)); err != nil {
					log.Warn("hud", "error", err)
				}
			}
		}
		if showDebug {
			overlay.draw(windowWidth, windowHeight)
		}

		window.SwapBuffers()
	}
	return nil
}

// spawnPoint hovers above the surface at the world origin.
func spawnPoint(w *world.World) mgl32.Vec3 {
	return mgl32.Vec3{0.5, float32(w.SpawnHeight(0, 0) + 12), 0.5}
}

func floor(v float32) int {
	return int(math.Floor(float64(v)))
}
