package confetti

import (
	"testing"

	"github.com/flood-arcade/floodit/internal/core"
)

func TestTriggerDefaults(t *testing.T) {
	s := NewSystem(80, 24, 1)
	s.Trigger(Options{})

	// Two corner origins, 45 confetti + 12 sparks each
	if got := s.Count(); got != 114 {
		t.Errorf("Count() = %d after default trigger, want 114", got)
	}
	if !s.Active() {
		t.Error("system should be active after a trigger")
	}
}

func TestTriggerReplacesPreviousBatch(t *testing.T) {
	s := NewSystem(80, 24, 1)
	s.Trigger(Options{Count: 500})
	first := s.Count()

	s.Trigger(Options{Count: 10, Sparks: -1})
	if got := s.Count(); got >= first {
		t.Errorf("Count() = %d, want a fresh small batch replacing %d particles", got, first)
	}
	if got := s.Count(); got != 10 {
		t.Errorf("Count() = %d, want 10", got)
	}
}

func TestSparksDisabled(t *testing.T) {
	s := NewSystem(80, 24, 1)
	s.Trigger(Options{Count: 20, Sparks: -1, Mode: EmitBottom})

	for _, p := range s.parts {
		if p.Kind == KindSpark {
			t.Fatal("Sparks: -1 should suppress spark particles")
		}
	}
	if got := s.Count(); got != 20 {
		t.Errorf("Count() = %d, want 20 confetti only", got)
	}
}

func TestEmitPointsWithoutPointsIsEmpty(t *testing.T) {
	s := NewSystem(80, 24, 1)
	s.Trigger(Options{Mode: EmitPoints})

	if s.Active() {
		t.Error("EmitPoints with no points should emit nothing")
	}
}

func TestCornerOriginsThrowInward(t *testing.T) {
	s := NewSystem(90, 24, 3)
	s.Trigger(Options{Sparks: -1})

	for _, p := range s.parts {
		if p.X < 45 && p.VX <= 0 {
			t.Fatalf("left-corner particle has vx %f, want rightward", p.VX)
		}
		if p.X >= 45 && p.VX >= 0 {
			t.Fatalf("right-corner particle has vx %f, want leftward", p.VX)
		}
	}
}

func TestParticlesLaunchUpward(t *testing.T) {
	s := NewSystem(80, 24, 5)
	s.Trigger(Options{Sparks: -1})

	for _, p := range s.parts {
		if p.VY >= 0 {
			t.Fatalf("confetti launched with vy %f, want upward (negative)", p.VY)
		}
		if p.Opacity != 1.0 {
			t.Fatalf("fresh particle opacity = %f, want 1.0", p.Opacity)
		}
	}
}

func TestStepEventuallyDrains(t *testing.T) {
	s := NewSystem(40, 12, 2)
	s.Trigger(Options{})

	// Gravity plus fade must retire every particle without outside help
	for i := 0; i < 5000 && s.Active(); i++ {
		s.Step()
	}
	if s.Active() {
		t.Errorf("system still has %d particles after 5000 steps", s.Count())
	}
}

func TestStepCullsBelowScreen(t *testing.T) {
	s := NewSystem(40, 12, 2)
	s.parts = append(s.parts, Particle{
		X: 20, Y: 11, VY: 2.0, Opacity: 1.0, Kind: KindConfetti,
	})

	// Falls past the bottom plus the cull margin within a few steps
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Active() {
		t.Error("particle past the cull margin should be destroyed")
	}
}

func TestFadeStartsAfterApex(t *testing.T) {
	s := NewSystem(40, 12, 2)
	s.parts = append(s.parts, Particle{
		X: 20, Y: 10, VY: -0.5, Gravity: 0.1, Fade: 0.01, Opacity: 1.0,
	})

	// Rising: no fade yet
	s.Step() // VY -0.4
	if s.parts[0].Opacity != 1.0 {
		t.Errorf("opacity = %f while rising, want 1.0", s.parts[0].Opacity)
	}

	// Step until past the apex, then opacity must decrease
	for i := 0; i < 6; i++ {
		s.Step()
	}
	if s.parts[0].Opacity >= 1.0 {
		t.Error("opacity should decay once the particle is falling")
	}
}

func TestClear(t *testing.T) {
	s := NewSystem(80, 24, 1)
	s.Trigger(Options{})
	s.Clear()

	if s.Active() {
		t.Error("Clear should drop all particles")
	}
}

func TestDrawNilScreenIsNoOp(t *testing.T) {
	s := NewSystem(80, 24, 1)
	s.Trigger(Options{})
	s.Draw(nil) // must not panic
}

func TestDrawPlacesGlyphs(t *testing.T) {
	s := NewSystem(20, 10, 4)
	s.parts = append(s.parts, Particle{
		X: 5, Y: 5, Opacity: 1.0, Color: core.ColorBrightRed, Kind: KindSpark,
	})

	screen := core.NewScreen(20, 10)
	s.Draw(screen)

	cell := screen.GetCell(5, 5)
	if cell.Rune != '✦' {
		t.Errorf("drawn rune = %q, want '✦'", cell.Rune)
	}
	if cell.Color != core.ColorBrightRed {
		t.Errorf("drawn color = %v, want bright red", cell.Color)
	}
}

func TestGlyphFades(t *testing.T) {
	tests := []struct {
		name string
		p    Particle
		want rune
	}{
		{"fresh spark", Particle{Kind: KindSpark, Opacity: 1.0}, '✦'},
		{"dim spark", Particle{Kind: KindSpark, Opacity: 0.4}, '*'},
		{"dying spark", Particle{Kind: KindSpark, Opacity: 0.1}, '·'},
		{"fresh confetti", Particle{Kind: KindConfetti, Opacity: 1.0, Rot: 0}, '▀'},
		{"rotated confetti", Particle{Kind: KindConfetti, Opacity: 1.0, Rot: 1.2}, '▐'},
		{"dim confetti", Particle{Kind: KindConfetti, Opacity: 0.2}, '░'},
		{"dying confetti", Particle{Kind: KindConfetti, Opacity: 0.05}, '·'},
	}
	for _, tt := range tests {
		if got := glyphFor(tt.p); got != tt.want {
			t.Errorf("%s: glyphFor = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResizeAffectsCulling(t *testing.T) {
	s := NewSystem(100, 50, 1)
	p := Particle{X: 60, Y: 10, Opacity: 1.0}

	if s.outOfBounds(p) {
		t.Fatal("particle should be in bounds on the large screen")
	}
	s.Resize(40, 20)
	if !s.outOfBounds(p) {
		t.Error("particle should be out of bounds after shrinking")
	}
}
