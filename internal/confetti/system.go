package confetti

import (
	"math"
	"math/rand"

	"github.com/flood-arcade/floodit/internal/core"
)

// EmitMode selects where a trigger seeds its particles.
type EmitMode int

const (
	EmitCorners EmitMode = iota // paired bottom corners, spread inward
	EmitBottom                  // bottom-center fountain
	EmitPoints                  // caller-supplied coordinates
)

// Point is an emission origin in screen cells.
type Point struct {
	X, Y int
}

// Options controls a single trigger. Zero values fall back to defaults,
// so callers override only what they need.
type Options struct {
	Count     int      // confetti particles per trigger (default 90)
	Sparks    int      // spark particles per trigger (default 24, -1 disables)
	Speed     float64  // velocity scale factor (default 1.0)
	SizeScale float64  // particle size scale factor (default 1.0)
	Duration  float64  // lifetime scale factor (default 1.0)
	Palette   []core.Color
	Mode      EmitMode
	Points    []Point // used with EmitPoints
	Sound     bool    // advisory for the caller's audio dispatch
}

// defaultPalette is used when no palette override is supplied.
var defaultPalette = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorBrightWhite,
}

// cullMargin extends the live area past the screen edges so particles
// may arc out of view and back in before being destroyed.
const cullMargin = 8.0

// System owns the live particle list and its bounds. It is single
// threaded: the platform steps and draws it from the tick handler only.
type System struct {
	w, h  int
	rng   *rand.Rand
	parts []Particle
}

// NewSystem creates a particle system for a w x h screen.
func NewSystem(w, h int, seed int64) *System {
	return &System{
		w:   w,
		h:   h,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Resize updates the bounds used for emission and culling.
func (s *System) Resize(w, h int) {
	s.w = w
	s.h = h
}

// Clear discards all live particles.
func (s *System) Clear() {
	s.parts = s.parts[:0]
}

// Active reports whether any particles are alive.
func (s *System) Active() bool {
	return len(s.parts) > 0
}

// Count returns the number of live particles.
func (s *System) Count() int {
	return len(s.parts)
}

// Trigger starts a fresh effect. Any particles from a previous trigger
// are discarded first, so at most one batch is ever animating.
func (s *System) Trigger(opts Options) {
	s.parts = s.parts[:0]

	count := opts.Count
	if count <= 0 {
		count = 90
	}
	sparks := opts.Sparks
	if sparks < 0 {
		sparks = 0
	} else if opts.Sparks == 0 {
		sparks = 24
	}
	speed := opts.Speed
	if speed <= 0 {
		speed = 1.0
	}
	sizeScale := opts.SizeScale
	if sizeScale <= 0 {
		sizeScale = 1.0
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = 1.0
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = defaultPalette
	}

	origins := s.origins(opts)
	if len(origins) == 0 {
		return
	}

	perOrigin := core.Max(count/len(origins), 1)
	sparksPer := 0
	if sparks > 0 {
		sparksPer = core.Max(sparks/len(origins), 1)
	}
	for _, o := range origins {
		s.emitConfetti(o, perOrigin, speed, sizeScale, duration, palette)
		if sparksPer > 0 {
			s.emitSparks(o, sparksPer, speed, duration, palette)
		}
	}
}

// origins resolves the emission points for the requested mode.
func (s *System) origins(opts Options) []Point {
	switch opts.Mode {
	case EmitBottom:
		return []Point{{X: s.w / 2, Y: s.h - 1}}
	case EmitPoints:
		return opts.Points
	default:
		return []Point{
			{X: 2, Y: s.h - 1},
			{X: s.w - 3, Y: s.h - 1},
		}
	}
}

// emitConfetti seeds tumbling confetti at the origin. The horizontal
// third the origin falls in biases the spread direction: a left-third
// origin throws rightward, a right-third origin leftward, and a center
// origin spreads symmetrically.
func (s *System) emitConfetti(o Point, n int, speed, sizeScale, duration float64, palette []core.Color) {
	third := s.w / 3

	for i := 0; i < n; i++ {
		var vx float64
		switch {
		case o.X < third:
			vx = s.rangeF(0.05, 0.40)
		case o.X >= 2*third:
			vx = -s.rangeF(0.05, 0.40)
		default:
			vx = s.rangeF(-0.25, 0.25)
		}

		s.parts = append(s.parts, Particle{
			X:       float64(o.X),
			Y:       float64(o.Y),
			VX:      vx * speed,
			VY:      -s.rangeF(0.25, 0.55) * speed,
			Rot:     s.rangeF(0, 4),
			Spin:    s.rangeF(0.05, 0.25),
			Size:    s.rangeF(0.8, 1.6) * sizeScale,
			Opacity: 1.0,
			Fade:    s.rangeF(0.008, 0.020) / duration,
			Gravity: s.rangeF(0.012, 0.020),
			Color:   palette[s.rng.Intn(len(palette))],
			Kind:    KindConfetti,
		})
	}
}

// emitSparks seeds sparks with uniform radial velocity.
func (s *System) emitSparks(o Point, n int, speed, duration float64, palette []core.Color) {
	for i := 0; i < n; i++ {
		ang := s.rangeF(0, 2*math.Pi)
		spd := s.rangeF(0.15, 0.50) * speed

		s.parts = append(s.parts, Particle{
			X:       float64(o.X),
			Y:       float64(o.Y),
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			Size:    1.0,
			Opacity: 1.0,
			Fade:    s.rangeF(0.020, 0.050) / duration,
			Gravity: 0.005,
			Color:   palette[s.rng.Intn(len(palette))],
			Kind:    KindSpark,
		})
	}
}

// Step advances every particle by one tick and culls the dead ones.
// Opacity starts decaying once a particle passes its velocity apex.
func (s *System) Step() {
	if len(s.parts) == 0 {
		return
	}

	alive := s.parts[:0]
	for _, p := range s.parts {
		p.VY += p.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Rot += p.Spin

		if p.pastApex() {
			p.Opacity -= p.Fade
		}

		if p.Opacity <= 0 || s.outOfBounds(p) {
			continue
		}
		alive = append(alive, p)
	}
	s.parts = alive
}

// outOfBounds checks the expanded viewport bound.
func (s *System) outOfBounds(p Particle) bool {
	return p.X < -cullMargin || p.X > float64(s.w)+cullMargin ||
		p.Y < -cullMargin || p.Y > float64(s.h)+cullMargin
}

// confettiGlyphs are the tumbling frames, indexed by rotation phase.
var confettiGlyphs = []rune{'▀', '▐', '▄', '▌'}

// Draw composites the live particles over the screen buffer.
// A nil destination is silently skipped.
func (s *System) Draw(dst *core.Screen) {
	if dst == nil {
		return
	}

	for _, p := range s.parts {
		x := int(math.Round(p.X))
		y := int(math.Round(p.Y))
		dst.SetCell(x, y, glyphFor(p), p.Color)

		// Oversized confetti spills into the neighbor cell
		if p.Kind == KindConfetti && p.Size >= 1.4 && p.Opacity >= 0.4 {
			dst.SetCell(x+1, y, glyphFor(p), p.Color)
		}
	}
}

// glyphFor picks a rune for the particle's kind, rotation and fade level.
func glyphFor(p Particle) rune {
	switch p.Kind {
	case KindSpark:
		switch {
		case p.Opacity >= 0.6:
			return '✦'
		case p.Opacity >= 0.3:
			return '*'
		default:
			return '·'
		}
	default:
		switch {
		case p.Opacity >= 0.4:
			idx := int(p.Rot) % len(confettiGlyphs)
			if idx < 0 {
				idx += len(confettiGlyphs)
			}
			return confettiGlyphs[idx]
		case p.Opacity >= 0.15:
			return '░'
		default:
			return '·'
		}
	}
}

// rangeF returns a uniform float64 in [lo, hi).
func (s *System) rangeF(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
