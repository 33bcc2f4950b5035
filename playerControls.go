package main

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	yaw                    float64 = -90.0
	pitch                  float64 = -20.0
	lastX                  float64
	lastY                  float64
	firstMouse             = true
	cameraPosition         mgl32.Vec3
	previousCameraPosition mgl32.Vec3
	cameraPositionLerped   mgl32.Vec3
	cameraFront            = mgl32.Vec3{0.0, 0.0, -1.0}
	orientationFront       = mgl32.Vec3{0.0, 0.0, -1.0}
	cameraUp               = mgl32.Vec3{0.0, 1.0, 0.0}
	cameraRight            = cameraFront.Cross(cameraUp)
	velocity               mgl32.Vec3
	deltaTime              float32
	tickAccumulator        float32
)

// placeCamera puts the camera at pos with no motion to interpolate.
func placeCamera(pos mgl32.Vec3) {
	cameraPosition = pos
	previousCameraPosition = pos
	cameraPositionLerped = pos
	velocity = mgl32.Vec3{}
	updateCameraVectors()
}

func updateCameraVectors() {
	yawRad := float64(mgl32.DegToRad(float32(yaw)))
	pitchRad := float64(mgl32.DegToRad(float32(pitch)))

	front := mgl32.Vec3{
		float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	cameraFront = front.Normalize()
	orientationFront = mgl32.Vec3{
		float32(math.Cos(yawRad)),
		0.0, // No vertical component
		float32(math.Sin(yawRad)),
	}.Normalize()
	cameraRight = cameraFront.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	cameraUp = cameraRight.Cross(cameraFront).Normalize()
}

// Movement inputs, gets checked each frame for fast responses.
func movement(window *glfw.Window) {
	if !mouseLocked {
		return
	}

	movementSpeed := flyingSpeed
	if window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		movementSpeed *= sprintMultiplier
	}

	var direction mgl32.Vec3
	if window.GetKey(glfw.KeyW) == glfw.Press {
		direction = direction.Add(orientationFront)
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		direction = direction.Sub(orientationFront)
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		direction = direction.Sub(cameraRight)
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		direction = direction.Add(cameraRight)
	}
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		direction[1] += 1
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		direction[1] -= 1
	}

	velocity = velocity.Add(direction.Mul(movementSpeed * deltaTime))
}

func velocityDamping(damping float32) {
	velocity = velocity.Mul(1.0 - damping)
}

// stepCamera advances the fixed-rate simulation and interpolates the
// rendered position between the last two steps.
func stepCamera() {
	tickAccumulator += deltaTime
	for tickAccumulator >= tickUpdateRate {
		previousCameraPosition = cameraPosition
		velocityDamping(velocityDamp)
		cameraPosition = cameraPosition.Add(velocity)
		tickAccumulator -= tickUpdateRate
	}
	lerpVal := mgl32.Clamp(tickAccumulator/tickUpdateRate, 0, 1)
	cameraPositionLerped = lerp(previousCameraPosition, cameraPosition, lerpVal)
}

func lerp(a, b mgl32.Vec3, alpha float32) mgl32.Vec3 {
	return b.Sub(a).Mul(alpha).Add(a)
}

func viewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cameraPositionLerped, cameraPositionLerped.Add(cameraFront), cameraUp)
}

func projectionMatrix(fov float32, width, height int) mgl32.Mat4 {
	aspectRatio := float32(width) / float32(max(height, 1))
	return mgl32.Perspective(mgl32.DegToRad(fov), aspectRatio, nearClipPlane, farClipPlane)
}
