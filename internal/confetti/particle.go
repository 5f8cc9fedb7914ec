// Package confetti implements the decorative particle overlay: short-lived
// confetti and spark particles animated under simple kinematics until they
// fade out or leave the visible area. The simulation is stepped by the
// platform tick loop and self-terminates once no particles remain.
package confetti

import "github.com/flood-arcade/floodit/internal/core"

// Kind distinguishes the two particle families.
type Kind uint8

const (
	KindConfetti Kind = iota // tumbling, gravity-driven, launched upward
	KindSpark                // radial burst, quick fade
)

// Particle is an ephemeral animated record. Position and velocity are in
// screen cells; a particle dies when its opacity is depleted or its
// position exits the expanded screen bounds.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Rot     float64 // rotation phase, selects the glyph
	Spin    float64 // rotation speed per tick
	Size    float64
	Opacity float64
	Fade    float64 // opacity decay per tick once past the velocity apex
	Gravity float64
	Color   core.Color
	Kind    Kind
}

// past apex: vertical velocity stopped being upward.
func (p *Particle) pastApex() bool {
	return p.VY >= 0
}
