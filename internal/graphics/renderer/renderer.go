package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// SkyColor is the background the frame is cleared to
var SkyColor = mgl32.Vec4{0.53, 0.81, 0.92, 1.0}

// Renderer clears and sizes the default framebuffer of the current context.
// gl.Init must have been called on a current context before NewRenderer.
type Renderer struct {
	width  int
	height int
}

// NewRenderer configures the fixed GL state shared by every frame. The size
// is the framebuffer size in pixels.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{}
	r.SetViewport(width, height)
	return r
}

// SetViewport resizes the viewport to a framebuffer of width x height
// pixels. The fullscreen toggle makes a new context current, so the fixed
// state is reapplied here as well.
func (r *Renderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	gl.Enable(gl.MULTISAMPLE)
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw clears the frame. Scene drawing lives outside this package.
func (r *Renderer) Draw(dt float64) {
	c := SkyColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
