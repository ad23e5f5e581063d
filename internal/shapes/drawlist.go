package shapes

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DrawList is an ordered batch of shape handles. Insertion order is draw
// order (back-to-front). Composition happens once at startup; the list is
// never rebuilt while the loop runs.
type DrawList struct {
	shapes []*Shape
}

// NewDrawList returns an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{}
}

// Append adds a shape handle to the end of the list.
func (l *DrawList) Append(s *Shape) {
	l.shapes = append(l.shapes, s)
}

// Len returns the number of shapes in the list.
func (l *DrawList) Len() int {
	return len(l.shapes)
}

// At returns the shape at index i in draw order.
func (l *DrawList) At(i int) *Shape {
	return l.shapes[i]
}

// Draw submits every shape in insertion order. Must be called between
// BeginDrawing and EndDrawing. Geometry stays in shape-local coordinates;
// each shape's transform is applied on the matrix stack so vertices are
// never recomputed.
func (l *DrawList) Draw() {
	for _, s := range l.shapes {
		s.draw()
	}
}

func (s *Shape) draw() {
	rl.PushMatrix()
	rl.Translatef(s.CenterX, s.CenterY, 0)
	if s.Angle != 0 {
		rl.Rotatef(s.Angle, 0, 0, 1)
	}
	for _, seg := range s.segments {
		rl.DrawLineEx(
			rl.NewVector2(seg.X1, seg.Y1),
			rl.NewVector2(seg.X2, seg.Y2),
			seg.Width, seg.Color)
	}
	for _, d := range s.discs {
		rl.DrawCircleV(rl.NewVector2(d.X, d.Y), d.Radius, d.Color)
	}
	rl.PopMatrix()
}
