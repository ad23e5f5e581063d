package shapes

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewWheelGeometry(t *testing.T) {
	const radius = float32(100)
	const spokes = 5

	s, err := NewWheel(radius, spokes)
	if err != nil {
		t.Fatalf("NewWheel: %v", err)
	}
	if got := len(s.Segments()); got != spokes {
		t.Fatalf("segment count = %d, want %d", got, spokes)
	}
	// One outer disc per spoke plus the center disc.
	if got := len(s.Discs()); got != spokes+1 {
		t.Fatalf("disc count = %d, want %d", got, spokes+1)
	}

	for i, seg := range s.Segments() {
		if seg.X1 != 0 || seg.Y1 != 0 {
			t.Fatalf("spoke %d does not start at the origin: (%v, %v)", i, seg.X1, seg.Y1)
		}
		if seg.Width != spokeWidthRatio*radius {
			t.Fatalf("spoke %d width = %v, want %v", i, seg.Width, spokeWidthRatio*radius)
		}
		if want := wheelColors[i%len(wheelColors)]; seg.Color != want {
			t.Fatalf("spoke %d color = %v, want %v", i, seg.Color, want)
		}
		outer := s.Discs()[i]
		if outer.X != outerDiscReach*seg.X2 || outer.Y != outerDiscReach*seg.Y2 {
			t.Fatalf("outer disc %d at (%v, %v), want spoke end scaled by %v", i, outer.X, outer.Y, float32(outerDiscReach))
		}
		if outer.Radius != outerDiscRatio*radius {
			t.Fatalf("outer disc %d radius = %v, want %v", i, outer.Radius, outerDiscRatio*radius)
		}
		if outer.Color != seg.Color {
			t.Fatalf("outer disc %d color %v differs from its spoke %v", i, outer.Color, seg.Color)
		}
	}

	center := s.Discs()[spokes]
	if center.X != 0 || center.Y != 0 {
		t.Fatalf("center disc at (%v, %v), want origin", center.X, center.Y)
	}
	if center.Radius != centerDiscRatio*radius {
		t.Fatalf("center disc radius = %v, want %v", center.Radius, centerDiscRatio*radius)
	}
	if center.Color != rl.NewColor(0, 0, 0, 255) {
		t.Fatalf("center disc color = %v, want black", center.Color)
	}
}

func TestNewBallGeometry(t *testing.T) {
	red := rl.NewColor(255, 0, 0, 255)
	s, err := NewBall(45, red)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	if len(s.Segments()) != 0 || len(s.Discs()) != 1 {
		t.Fatalf("ball geometry = %d segments, %d discs, want 0 and 1",
			len(s.Segments()), len(s.Discs()))
	}
	d := s.Discs()[0]
	if d.Radius != 45 || d.Color != red || d.X != 0 || d.Y != 0 {
		t.Fatalf("ball disc = %+v, want radius 45, red, at origin", d)
	}
}

func TestConstructorsRejectInvalidGeometry(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Shape, error)
	}{
		{"wheel zero radius", func() (*Shape, error) { return NewWheel(0, 3) }},
		{"wheel negative radius", func() (*Shape, error) { return NewWheel(-1, 3) }},
		{"wheel no spokes", func() (*Shape, error) { return NewWheel(50, 0) }},
		{"ball zero radius", func() (*Shape, error) { return NewBall(0, rl.NewColor(255, 0, 0, 255)) }},
		{"snowflake negative radius", func() (*Shape, error) { return NewSnowflake(-2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s, err := tt.make(); err == nil {
				t.Fatalf("expected error, got shape %+v", s)
			}
		})
	}
}

func TestDrawListPreservesInsertionOrder(t *testing.T) {
	list := NewDrawList()
	var handles []*Shape
	for i := 0; i < 3; i++ {
		s, err := NewSnowflake(float32(i + 1))
		if err != nil {
			t.Fatalf("NewSnowflake: %v", err)
		}
		handles = append(handles, s)
		list.Append(s)
	}
	if list.Len() != 3 {
		t.Fatalf("list length = %d, want 3", list.Len())
	}
	for i, h := range handles {
		if list.At(i) != h {
			t.Fatalf("shape at %d is not the %d-th appended handle", i, i)
		}
	}
}
