package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	showDebug        bool
	ambientOcclusion bool
	remeshRequested  bool
	mouseLocked      = true
	monitor          *glfw.Monitor
	windowWidth      int
	windowHeight     int
	windowedWidth    int
	windowedHeight   int
)

func input(window *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyF3:
		showDebug = !showDebug
	case glfw.KeyF6:
		ambientOcclusion = !ambientOcclusion
		remeshRequested = true
	case glfw.KeyEscape:
		setMouseLock(window, false)
	case glfw.KeyF11:
		toggleFullscreen(window)
	}
}

func toggleFullscreen(window *glfw.Window) {
	if monitor == nil {
		//set to fullscreen
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return
	}
	//set to windowed
	mode := monitor.GetVideoMode()
	monitor = nil
	window.SetMonitor(nil, (mode.Width-windowedWidth)/2, (mode.Height-windowedHeight)/2, windowedWidth, windowedHeight, 0)
}

func setMouseLock(window *glfw.Window, locked bool) {
	mouseLocked = locked
	if locked {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		firstMouse = true
		return
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

func mouseMoveCallback(window *glfw.Window, xPos, yPos float64) {
	if !mouseLocked {
		return
	}
	if firstMouse {
		lastX = xPos
		lastY = yPos
		firstMouse = false
	}

	xoffset := xPos - lastX
	yoffset := lastY - yPos // Reversed since y-coordinates go from bottom to top
	lastX = xPos
	lastY = yPos

	yaw += xoffset * mouseSensitivity
	pitch += yoffset * mouseSensitivity

	// Constrain the pitch angle
	pitch = min(max(pitch, -89.0), 89.0)

	updateCameraVectors()
}

func mouseInputCallback(window *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && !mouseLocked {
		setMouseLock(window, true)
	}
}

func onWindowResize(w *glfw.Window, width int, height int) {
	windowWidth, windowHeight = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}
