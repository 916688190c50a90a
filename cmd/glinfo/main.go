// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo && !openbsd && !freebsd && !windows && !android && !ios && !js

// Command glinfo opens a hidden GLFW window and prints what the native
// adapter reports about its context.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"unsafe"

	"gioui.org/glow/gl"
	"gioui.org/glow/native"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	useES     = flag.Bool("es", false, "request an OpenGL ES context")
	listExts  = flag.Bool("ext", false, "list the supported extensions")
	smokeTest = flag.Bool("smoke", false, "compile and link a trivial program")
	verbose   = flag.Bool("v", false, "log adapter activity to stderr")
)

const (
	vertSrc = `
attribute vec2 pos;

void main() {
	gl_Position = vec4(pos, 0.0, 1.0);
}
`
	fragSrc = `
void main() {
	gl_FragColor = vec4(1.0, 0.0, 1.0, 1.0);
}
`
)

func main() {
	flag.Parse()
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	if *verbose {
		gl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	if *useES {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 0)
	}
	window, err := glfw.CreateWindow(64, 64, "glinfo", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	ctx, err := native.NewContext(func(name string) unsafe.Pointer {
		return glfw.GetProcAddress(name)
	})
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Release()
	printInfo(ctx)
	if *smokeTest {
		if err := smoke(ctx); err != nil {
			log.Fatal(err)
		}
		fmt.Println("smoke test: ok")
	}
}

func printInfo(ctx *native.Context) {
	v := ctx.Version()
	fmt.Printf("version:      %s\n", v)
	fmt.Printf("vendor:       %s\n", ctx.GetParameterString(gl.VENDOR))
	fmt.Printf("renderer:     %s\n", ctx.GetParameterString(gl.RENDERER))
	fmt.Printf("glsl:         %s\n", ctx.GetParameterString(gl.SHADING_LANGUAGE_VERSION))
	fmt.Printf("max texture:  %d\n", ctx.GetParameterI32(gl.MAX_TEXTURE_SIZE))
	fmt.Printf("debug output: %v\n", ctx.SupportsDebug())
	if ctx.SupportsDebug() {
		fmt.Printf("max label:    %d\n", ctx.MaxLabelLength())
	}
	fmt.Printf("extensions:   %d\n", len(ctx.Extensions()))
	if *listExts {
		for _, e := range ctx.Extensions().Sorted() {
			fmt.Printf("  %s\n", e)
		}
	}
	if missing := ctx.Unresolved(); len(missing) > 0 {
		fmt.Printf("unresolved:   %d entry points\n", len(missing))
	}
}

// smoke builds a program, routing debug output to the log when the
// context has it.
func smoke(ctx *native.Context) error {
	if ctx.SupportsDebug() {
		ctx.Enable(gl.DEBUG_OUTPUT)
		ctx.DebugMessageCallback(func(source, typ, id, severity uint32, msg string) {
			log.Printf("gl debug 0x%x: %s", id, msg)
		})
		defer ctx.DebugMessageCallback(nil)
		ctx.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 1, gl.DEBUG_SEVERITY_NOTIFICATION, "glinfo smoke test")
	}
	header := "#version 110\n"
	if ctx.Version().Embedded {
		header = "#version 100\nprecision mediump float;\n"
	}
	prog, err := gl.CreateProgram(ctx, header+vertSrc, header+fragSrc, []string{"pos"})
	if err != nil {
		return err
	}
	defer ctx.DeleteProgram(prog)
	ctx.UseProgram(prog)
	if e := ctx.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("glinfo: GL error 0x%x", e)
	}
	return nil
}
