package particles

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking down -Z from CameraZ.
type Camera struct {
	FOV, Near, Far float32
	Z              float32

	Width, Height int
	PixelRatio    float64

	maxPixelRatio float64
}

// NewCamera builds the camera for a surface of the given size.
func NewCamera(cfg Config, width, height int, pixelRatio float64) *Camera {
	c := &Camera{
		FOV:  cfg.FOV,
		Near: cfg.Near,
		Far:  cfg.Far,
		Z:    cfg.CameraZ,

		maxPixelRatio: cfg.MaxPixelRatio,
	}
	c.SetPixelRatio(pixelRatio)
	c.Resize(width, height)
	return c
}

// SetPixelRatio sets the device pixel ratio, capped by the configured maximum.
func (c *Camera) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	if c.maxPixelRatio > 0 && ratio > c.maxPixelRatio {
		ratio = c.maxPixelRatio
	}
	c.PixelRatio = ratio
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.Width, c.Height = width, height
}

// Aspect returns width / height.
func (c *Camera) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}

// Projection returns the perspective matrix for the current aspect.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect(), c.Near, c.Far)
}

// View returns the camera's view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.Z)
}

// DrawingBuffer returns the backing-store size in device pixels.
func (c *Camera) DrawingBuffer() (width, height int) {
	return int(float64(c.Width) * c.PixelRatio), int(float64(c.Height) * c.PixelRatio)
}

// PointScale converts world point size to pixels at unit depth.
func (c *Camera) PointScale() float32 {
	_, h := c.DrawingBuffer()
	return float32(h) / 2
}
