package main

import (
	"embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed shaders
var shaderFiles embed.FS

// loadShader compiles shaders/<name> as the given stage.
func loadShader(name string, shaderType uint32) (uint32, error) {
	src, err := shaderFiles.ReadFile("shaders/" + name)
	if err != nil {
		return 0, err
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(string(src) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s: %s", name, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// newProgram links shaders/<name>.vert and shaders/<name>.frag.
func newProgram(name string) (uint32, error) {
	vertexShader, err := loadShader(name+".vert", gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := loadShader(name+".frag", gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertexShader)
	gl.AttachShader(prog, fragmentShader)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vertexShader)
	gl.DetachShader(prog, fragmentShader)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link %s: %s", name, strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}
