package rain

import (
	"github.com/pkg/errors"
	"github.com/simukka/voidpage/common"
)

// ErrNoSurface is returned when a 2D drawing surface cannot be acquired.
var ErrNoSurface = errors.New("rain: drawing surface unavailable")

// Glyphs is the fixed character set drawn by the rain.
const Glyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@#$%^&*()_+-=[]{}|;:,.<>?"

const (
	// FadeAlpha is the opacity of the black wash painted before each advance.
	FadeAlpha = 0.05
	// ResetChance is the per-advance probability that a column below the
	// surface height restarts at the top.
	ResetChance = 0.025
)

// Config is the host-supplied rain configuration.
type Config struct {
	Color     string // Glyph color
	GlyphSize int    // Glyph cell size in pixels
	Speed     int    // Minimum milliseconds between advances
}

// DefaultConfig returns the matrix card defaults.
func DefaultConfig() Config {
	return Config{
		Color:     "#00FF41",
		GlyphSize: 14,
		Speed:     50,
	}
}

// Surface is a 2D raster the rain paints on.
type Surface interface {
	Size() (width, height int)
	// Fade paints a black rectangle of the given alpha over the whole surface.
	Fade(alpha float64)
	// DrawGlyph draws r with its baseline at (x, y).
	DrawGlyph(r rune, x, y int, color string, size int)
}

// Renderer draws falling glyph columns with a fading trail.
type Renderer struct {
	cfg    Config
	rng    common.RNG
	glyphs []rune

	surface Surface
	width   int
	height  int
	cursors []int

	task     *common.Task
	lastTime float64
	advances int
}

// NewRenderer creates an idle renderer.
func NewRenderer(cfg Config, rng common.RNG) *Renderer {
	if cfg.GlyphSize < 1 {
		cfg.GlyphSize = DefaultConfig().GlyphSize
	}
	if cfg.Speed < 0 {
		cfg.Speed = 0
	}
	return &Renderer{
		cfg:    cfg,
		rng:    rng,
		glyphs: []rune(Glyphs),
	}
}

// Start begins rendering onto surface. A nil surface leaves the renderer
// inert; starting a running renderer is a no-op.
func (r *Renderer) Start(sched common.Scheduler, surface Surface) {
	if surface == nil {
		common.DebugWarn("rain:", ErrNoSurface.Error())
		return
	}
	if r.task.Running() {
		return
	}
	r.surface = surface
	r.lastTime = 0
	r.Resize(surface.Size())
	r.task = common.NewTask(sched, r.Tick)
	r.task.Start()
}

// Stop cancels rendering. Safe before Start and when repeated.
func (r *Renderer) Stop() {
	r.task.Stop()
}

// Running reports whether the renderer is scheduled.
func (r *Renderer) Running() bool {
	return r.task.Running()
}

// Resize recomputes the column count for a new surface size. Surviving
// columns keep their cursors; new columns start at 1.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	n := width / r.cfg.GlyphSize
	if n < 0 {
		n = 0
	}
	if n <= len(r.cursors) {
		r.cursors = r.cursors[:n]
		return
	}
	for len(r.cursors) < n {
		r.cursors = append(r.cursors, 1)
	}
}

// Tick is the per-frame handler. It advances only when at least Speed ms
// have passed since the last advance.
func (r *Renderer) Tick(now float64) {
	if now-r.lastTime < float64(r.cfg.Speed) {
		return
	}
	r.lastTime = now
	r.Advance()
}

// Advance paints one step of the rain regardless of the throttle.
func (r *Renderer) Advance() {
	if r.surface == nil {
		return
	}
	r.surface.Fade(FadeAlpha)
	size := r.cfg.GlyphSize
	for i := range r.cursors {
		glyph := r.glyphs[int(r.rng.Random()*float64(len(r.glyphs)))]
		x := i * size
		y := r.cursors[i] * size
		r.surface.DrawGlyph(glyph, x, y, r.cfg.Color, size)

		if y > r.height && r.rng.Random() > 1-ResetChance {
			r.cursors[i] = 0
		}
		r.cursors[i]++
	}
	r.advances++
}

// Columns returns the current column count.
func (r *Renderer) Columns() int {
	return len(r.cursors)
}

// Cursor returns the row cursor of column i.
func (r *Renderer) Cursor(i int) int {
	return r.cursors[i]
}

// Advances returns how many advances have been painted.
func (r *Renderer) Advances() int {
	return r.advances
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}
