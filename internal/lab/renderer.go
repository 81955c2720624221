package lab

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer owns the GL resources that put the CPU frame on screen: one
// fullscreen-quad program and one RGB texture re-uploaded every tick.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32
	uTex int32

	texW int
	texH int
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(frameVertSrc, frameFragSrc)
	if err != nil {
		return nil, fmt.Errorf("frame program: %w", err)
	}
	r := &Renderer{prog: prog}

	// Fullscreen quad (6 vertices, 2 triangles).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	r.tex = tex

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
}

// Upload pushes the painted frame into the GL texture. The full image
// is re-allocated only when the frame size changes; otherwise it goes
// through TexSubImage2D.
func (r *Renderer) Upload(f *Frame) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	if r.texW != f.W || r.texH != f.H {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(f.W), int32(f.H), 0,
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(f.Pix))
		r.texW = f.W
		r.texH = f.H
		return
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(f.W), int32(f.H),
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(f.Pix))
}

// Draw renders the frame texture across the whole viewport.
func (r *Renderer) Draw(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
