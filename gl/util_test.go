// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gl

import (
	"testing"

	"gioui.org/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder implements the subset of Context the program helpers use.
type recorder struct {
	Context
	version  Version
	next     uint32
	sources  map[Shader]string
	failOn   string
	linkOK   bool
	attribs  map[uint32]string
	uniforms map[string]int32
	deleted  []string
	current  Program
}

func newRecorder(v Version) *recorder {
	return &recorder{
		version:  v,
		sources:  make(map[Shader]string),
		linkOK:   true,
		attribs:  make(map[uint32]string),
		uniforms: make(map[string]int32),
	}
}

func (r *recorder) Version() Version { return r.version }

func (r *recorder) CreateShader(typ uint32) (Shader, error) {
	r.next++
	return Shader{V: r.next}, nil
}

func (r *recorder) ShaderSource(s Shader, src string) { r.sources[s] = src }

func (r *recorder) CompileShader(s Shader) {}

func (r *recorder) GetShaderCompileStatus(s Shader) bool {
	return r.failOn == "" || r.sources[s] != r.failOn
}

func (r *recorder) GetShaderInfoLog(s Shader) string { return "  0:1: syntax error\n" }

func (r *recorder) DeleteShader(s Shader) { r.deleted = append(r.deleted, "shader") }

func (r *recorder) CreateProgram() (Program, error) {
	r.next++
	return Program{V: r.next}, nil
}

func (r *recorder) AttachShader(p Program, s Shader) {}

func (r *recorder) BindAttribLocation(p Program, index uint32, name string) {
	r.attribs[index] = name
}

func (r *recorder) LinkProgram(p Program) {}

func (r *recorder) GetProgramLinkStatus(p Program) bool { return r.linkOK }

func (r *recorder) GetProgramInfoLog(p Program) string { return "link error" }

func (r *recorder) DeleteProgram(p Program) { r.deleted = append(r.deleted, "program") }

func (r *recorder) UseProgram(p Program) { r.current = p }

// GetUniformLocation encodes the uniform name length as its location.
func (r *recorder) GetUniformLocation(p Program, name string) (UniformLocation, bool) {
	if name == "missing" {
		return UniformLocation{V: -1}, false
	}
	return UniformLocation{V: int32(len(name))}, true
}

func (r *recorder) Uniform1I32(l UniformLocation, x int32) {
	for _, n := range []string{"tex", "noise"} {
		if int32(len(n)) == l.V {
			r.uniforms[n] = x
		}
	}
}

func TestCreateProgram(t *testing.T) {
	r := newRecorder(NewEmbeddedVersion(3, 0, ""))
	p, err := CreateProgram(r, "vs", "fs", []string{"pos", "", "uv"})
	require.NoError(t, err)
	assert.True(t, p.Valid())
	assert.Equal(t, map[uint32]string{0: "pos", 2: "uv"}, r.attribs)
	assert.Equal(t, []string{"shader", "shader"}, r.deleted, "shaders are released after linking")
}

func TestCreateProgramCompileError(t *testing.T) {
	r := newRecorder(NewEmbeddedVersion(3, 0, ""))
	r.failOn = "fs"
	_, err := CreateProgram(r, "vs", "fs", nil)
	require.Error(t, err)
	assert.Equal(t, "gl: shader compilation failed: 0:1: syntax error", err.Error())
}

func TestCreateProgramLinkError(t *testing.T) {
	r := newRecorder(NewEmbeddedVersion(3, 0, ""))
	r.linkOK = false
	p, err := CreateComputeProgram(r, "cs")
	assert.EqualError(t, err, "gl: program link failed: link error")
	assert.False(t, p.Valid())
	assert.Contains(t, r.deleted, "program")
}

func TestCreateShaderProgram(t *testing.T) {
	vert := shader.Sources{
		Name:      "blit.vert",
		GLSL100ES: "vs100",
		GLSL150:   "vs150",
		Inputs:    []shader.InputLocation{{Name: "uv", Location: 1}, {Name: "pos", Location: 0}},
	}
	frag := shader.Sources{
		Name:      "blit.frag",
		GLSL100ES: "fs100",
		GLSL150:   "fs150",
		Textures:  []shader.TextureBinding{{Name: "tex", Binding: 0}, {Name: "noise", Binding: 2}, {Name: "missing", Binding: 3}},
	}

	r := newRecorder(NewVersion(4, 6, nil, ""))
	p, err := CreateShaderProgram(r, vert, frag)
	require.NoError(t, err)
	assert.Equal(t, p, r.current)
	assert.ElementsMatch(t, []string{"vs150", "fs150"}, sourcesOf(r))
	assert.Equal(t, map[uint32]string{0: "pos", 1: "uv"}, r.attribs)
	assert.Equal(t, map[string]int32{"tex": 0, "noise": 2}, r.uniforms)

	r = newRecorder(NewEmbeddedVersion(3, 2, ""))
	_, err = CreateShaderProgram(r, vert, frag)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"vs100", "fs100"}, sourcesOf(r))

	r = newRecorder(NewEmbeddedVersion(3, 2, ""))
	r.failOn = "fs100"
	_, err = CreateShaderProgram(r, vert, frag)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blit.vert/blit.frag")
}

func sourcesOf(r *recorder) []string {
	var srcs []string
	for _, s := range r.sources {
		srcs = append(srcs, s)
	}
	return srcs
}
