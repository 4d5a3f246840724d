//go:build js

package particles

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopherjs/gopherjs/js"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
)

const vertexShader = `
attribute vec3 aPosition;
uniform mat4 uProjection;
uniform mat4 uModelView;
uniform float uSize;
uniform float uScale;
void main() {
	vec4 mv = uModelView * vec4(aPosition, 1.0);
	gl_PointSize = uSize * (uScale / -mv.z);
	gl_Position = uProjection * mv;
}
`

const fragmentShader = `
precision mediump float;
uniform vec3 uColor;
uniform float uOpacity;
void main() {
	gl_FragColor = vec4(uColor, uOpacity);
}
`

// WebGLSurface draws the particle field as additively blended GL points.
type WebGLSurface struct {
	canvas *js.Object
	gl     *js.Object

	program  *js.Object
	vertex   *js.Object
	fragment *js.Object
	buffer   *js.Object

	aPosition   int
	uProjection *js.Object
	uModelView  *js.Object
	uSize       *js.Object
	uScale      *js.Object
	uColor      *js.Object
	uOpacity    *js.Object

	positions  *js.Object // Float32Array mirroring the field buffer
	projection *js.Object // Float32Array(16)
	modelView  *js.Object // Float32Array(16)
	color      colorful.Color
	count      int

	released bool
}

var _ Surface = (*WebGLSurface)(nil)

// NewWebGLSurface acquires a WebGL context on canvas for count particles.
func NewWebGLSurface(canvas *js.Object, count int, color string) (*WebGLSurface, error) {
	if canvas == nil || canvas == js.Undefined {
		return nil, ErrNoSurface
	}
	attrs := map[string]interface{}{"alpha": true, "antialias": true}
	gl := canvas.Call("getContext", "webgl", attrs)
	if gl == nil || gl == js.Undefined {
		gl = canvas.Call("getContext", "experimental-webgl", attrs)
	}
	if gl == nil || gl == js.Undefined {
		return nil, errors.Wrap(ErrNoSurface, "webgl context")
	}

	c, err := colorful.Hex(color)
	if err != nil {
		c = colorful.Color{R: 0, G: 174.0 / 255, B: 239.0 / 255}
	}

	s := &WebGLSurface{
		canvas: canvas,
		gl:     gl,
		color:  c,
		count:  count,
	}
	if err := s.build(); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

func (s *WebGLSurface) compile(kind int, source string) (*js.Object, error) {
	sh := s.gl.Call("createShader", kind)
	s.gl.Call("shaderSource", sh, source)
	s.gl.Call("compileShader", sh)
	if !s.gl.Call("getShaderParameter", sh, s.gl.Get("COMPILE_STATUS")).Bool() {
		log := s.gl.Call("getShaderInfoLog", sh).String()
		s.gl.Call("deleteShader", sh)
		return nil, errors.Errorf("particles: shader compile: %s", log)
	}
	return sh, nil
}

func (s *WebGLSurface) build() error {
	gl := s.gl
	var err error
	if s.vertex, err = s.compile(gl.Get("VERTEX_SHADER").Int(), vertexShader); err != nil {
		return err
	}
	if s.fragment, err = s.compile(gl.Get("FRAGMENT_SHADER").Int(), fragmentShader); err != nil {
		return err
	}

	s.program = gl.Call("createProgram")
	gl.Call("attachShader", s.program, s.vertex)
	gl.Call("attachShader", s.program, s.fragment)
	gl.Call("linkProgram", s.program)
	if !gl.Call("getProgramParameter", s.program, gl.Get("LINK_STATUS")).Bool() {
		return errors.Errorf("particles: program link: %s", gl.Call("getProgramInfoLog", s.program).String())
	}
	gl.Call("useProgram", s.program)

	s.aPosition = gl.Call("getAttribLocation", s.program, "aPosition").Int()
	s.uProjection = gl.Call("getUniformLocation", s.program, "uProjection")
	s.uModelView = gl.Call("getUniformLocation", s.program, "uModelView")
	s.uSize = gl.Call("getUniformLocation", s.program, "uSize")
	s.uScale = gl.Call("getUniformLocation", s.program, "uScale")
	s.uColor = gl.Call("getUniformLocation", s.program, "uColor")
	s.uOpacity = gl.Call("getUniformLocation", s.program, "uOpacity")

	float32Array := js.Global.Get("Float32Array")
	s.positions = float32Array.New(s.count * 3)
	s.projection = float32Array.New(16)
	s.modelView = float32Array.New(16)

	s.buffer = gl.Call("createBuffer")
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), s.buffer)
	gl.Call("bufferData", gl.Get("ARRAY_BUFFER"), s.positions, gl.Get("DYNAMIC_DRAW"))
	gl.Call("enableVertexAttribArray", s.aPosition)
	gl.Call("vertexAttribPointer", s.aPosition, 3, gl.Get("FLOAT"), false, 0, 0)

	// Additive: overlapping points brighten instead of occluding.
	gl.Call("disable", gl.Get("DEPTH_TEST"))
	gl.Call("enable", gl.Get("BLEND"))
	gl.Call("blendFunc", gl.Get("SRC_ALPHA"), gl.Get("ONE"))
	gl.Call("clearColor", 0, 0, 0, 0)
	return nil
}

// Size implements Surface using the window dimensions.
func (s *WebGLSurface) Size() (width, height int, pixelRatio float64) {
	win := js.Global
	ratio := win.Get("devicePixelRatio")
	pixelRatio = 1
	if ratio != nil && ratio != js.Undefined {
		pixelRatio = ratio.Float()
	}
	return win.Get("innerWidth").Int(), win.Get("innerHeight").Int(), pixelRatio
}

// Resize implements Surface.
func (s *WebGLSurface) Resize(width, height int, pixelRatio float64) {
	if s.released {
		return
	}
	bw, bh := int(float64(width)*pixelRatio), int(float64(height)*pixelRatio)
	s.canvas.Set("width", bw)
	s.canvas.Set("height", bh)
	style := s.canvas.Get("style")
	style.Set("width", strconv.Itoa(width)+"px")
	style.Set("height", strconv.Itoa(height)+"px")
	s.gl.Call("viewport", 0, 0, bw, bh)
}

// Draw implements Surface.
func (s *WebGLSurface) Draw(frame Frame) {
	if s.released {
		return
	}
	gl := s.gl
	for i, v := range frame.Positions {
		s.positions.SetIndex(i, v)
	}
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), s.buffer)
	gl.Call("bufferSubData", gl.Get("ARRAY_BUFFER"), 0, s.positions)

	setMatrix(s.projection, frame.Projection)
	setMatrix(s.modelView, frame.ModelView)
	gl.Call("uniformMatrix4fv", s.uProjection, false, s.projection)
	gl.Call("uniformMatrix4fv", s.uModelView, false, s.modelView)
	gl.Call("uniform1f", s.uSize, frame.PointSize)
	gl.Call("uniform1f", s.uScale, frame.PointScale)
	gl.Call("uniform3f", s.uColor, s.color.R, s.color.G, s.color.B)
	gl.Call("uniform1f", s.uOpacity, frame.Opacity)

	gl.Call("clear", gl.Get("COLOR_BUFFER_BIT"))
	gl.Call("drawArrays", gl.Get("POINTS"), 0, len(frame.Positions)/3)
}

// Release implements Surface.
func (s *WebGLSurface) Release() {
	if s.released {
		return
	}
	s.released = true
	gl := s.gl
	if s.buffer != nil {
		gl.Call("deleteBuffer", s.buffer)
	}
	if s.program != nil {
		gl.Call("deleteProgram", s.program)
	}
	if s.vertex != nil {
		gl.Call("deleteShader", s.vertex)
	}
	if s.fragment != nil {
		gl.Call("deleteShader", s.fragment)
	}
	s.buffer, s.program, s.vertex, s.fragment = nil, nil, nil, nil
	common.Debug("particles: gl resources released")
}

func setMatrix(dst *js.Object, m mgl32.Mat4) {
	for i, v := range m {
		dst.SetIndex(i, v)
	}
}
