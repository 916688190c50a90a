// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"

	"gioui.org/shader"
)

// CreateShader compiles src into a shader of type typ.
func CreateShader(ctx Context, typ uint32, src string) (Shader, error) {
	sh, err := ctx.CreateShader(typ)
	if err != nil {
		return Shader{}, err
	}
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if !ctx.GetShaderCompileStatus(sh) {
		log := ctx.GetShaderInfoLog(sh)
		ctx.DeleteShader(sh)
		return Shader{}, fmt.Errorf("gl: shader compilation failed: %s", strings.TrimSpace(log))
	}
	return sh, nil
}

// CreateProgram links a program from vertex and fragment shader sources.
// Attribute i of attribs is bound to location i.
func CreateProgram(ctx Context, vsSrc, fsSrc string, attribs []string) (Program, error) {
	vs, err := CreateShader(ctx, VERTEX_SHADER, vsSrc)
	if err != nil {
		return Program{}, err
	}
	defer ctx.DeleteShader(vs)
	fs, err := CreateShader(ctx, FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return Program{}, err
	}
	defer ctx.DeleteShader(fs)
	prog, err := ctx.CreateProgram()
	if err != nil {
		return Program{}, err
	}
	ctx.AttachShader(prog, vs)
	ctx.AttachShader(prog, fs)
	for i, a := range attribs {
		if a != "" {
			ctx.BindAttribLocation(prog, uint32(i), a)
		}
	}
	if err := link(ctx, prog); err != nil {
		return Program{}, err
	}
	return prog, nil
}

// CreateComputeProgram links a program from a single compute shader.
func CreateComputeProgram(ctx Context, src string) (Program, error) {
	cs, err := CreateShader(ctx, COMPUTE_SHADER, src)
	if err != nil {
		return Program{}, err
	}
	defer ctx.DeleteShader(cs)
	prog, err := ctx.CreateProgram()
	if err != nil {
		return Program{}, err
	}
	ctx.AttachShader(prog, cs)
	if err := link(ctx, prog); err != nil {
		return Program{}, err
	}
	return prog, nil
}

// CreateShaderProgram links a program from reflected shader sources. The
// GLSL dialect is chosen from the context version, vertex inputs are bound
// to their reflected locations and sampler uniforms are set to their
// texture bindings.
func CreateShaderProgram(ctx Context, vert, frag shader.Sources) (Program, error) {
	attr := make([]string, len(vert.Inputs))
	for _, inp := range vert.Inputs {
		if inp.Location >= len(attr) {
			attr = append(attr, make([]string, inp.Location-len(attr)+1)...)
		}
		attr[inp.Location] = inp.Name
	}
	vsrc, fsrc := vert.GLSL100ES, frag.GLSL100ES
	if ctx.Version().AtLeastGL(3, 2) {
		// Core profiles only accept GLSL 1.50 or newer.
		vsrc, fsrc = vert.GLSL150, frag.GLSL150
	}
	prog, err := CreateProgram(ctx, vsrc, fsrc, attr)
	if err != nil {
		return Program{}, fmt.Errorf("gl: %s/%s: %w", vert.Name, frag.Name, err)
	}
	ctx.UseProgram(prog)
	for _, texs := range [][]shader.TextureBinding{vert.Textures, frag.Textures} {
		for _, tex := range texs {
			if u, ok := ctx.GetUniformLocation(prog, tex.Name); ok {
				ctx.Uniform1I32(u, int32(tex.Binding))
			}
		}
	}
	return prog, nil
}

func link(ctx Context, prog Program) error {
	ctx.LinkProgram(prog)
	if !ctx.GetProgramLinkStatus(prog) {
		log := ctx.GetProgramInfoLog(prog)
		ctx.DeleteProgram(prog)
		return fmt.Errorf("gl: program link failed: %s", strings.TrimSpace(log))
	}
	return nil
}
