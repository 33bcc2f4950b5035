package main

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"neilpa.me/go-stbi"
)

// setWindowIcon decodes any image format stb_image reads and installs it.
func setWindowIcon(window *glfw.Window, path string) error {
	img, err := stbi.Load(path)
	if err != nil {
		return fmt.Errorf("icon %s: %w", path, err)
	}
	window.SetIcon([]image.Image{img})
	return nil
}
