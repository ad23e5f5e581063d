package shapes

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Geometry proportions for the wheel, relative to its radius.
const (
	spokeWidthRatio = 0.1
	outerDiscRatio  = 0.3
	outerDiscReach  = 1.2
	centerDiscRatio = 0.15
)

// wheelColors cycle across spokes and their outer discs.
var wheelColors = []rl.Color{
	rl.NewColor(255, 0, 0, 255),
	rl.NewColor(0, 255, 0, 255),
	rl.NewColor(0, 0, 255, 255),
}

var snowColor = rl.NewColor(255, 255, 255, 255)

// Segment is a line in shape-local coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float32
	Width          float32
	Color          rl.Color
}

// Disc is a filled circle in shape-local coordinates.
type Disc struct {
	X, Y   float32
	Radius float32
	Color  rl.Color
}

// Shape is a buffered shape handle: geometry is computed once at construction,
// in local coordinates around the origin, and never rebuilt. The per-frame
// path only mutates the transform (CenterX, CenterY, Angle in degrees) that
// the draw pass applies.
type Shape struct {
	CenterX float32
	CenterY float32
	Angle   float32

	segments []Segment
	discs    []Disc
}

// NewWheel builds a wheel: radial spokes from the origin, an outer disc at the
// end of each spoke, and a black center disc. Spoke colors cycle red, green,
// blue. Invalid parameters are a programming error surfaced at startup.
func NewWheel(radius float32, spokes int) (*Shape, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("wheel radius must be positive, got %v", radius)
	}
	if spokes < 1 {
		return nil, fmt.Errorf("wheel needs at least one spoke, got %d", spokes)
	}

	s := &Shape{}
	step := 2 * math32.Pi / float32(spokes)
	for n := 0; n < spokes; n++ {
		a := float32(n) * step
		endX := radius * math32.Cos(a)
		endY := radius * math32.Sin(a)
		color := wheelColors[n%len(wheelColors)]

		s.segments = append(s.segments, Segment{
			X2: endX, Y2: endY,
			Width: spokeWidthRatio * radius,
			Color: color,
		})
		s.discs = append(s.discs, Disc{
			X:      outerDiscReach * endX,
			Y:      outerDiscReach * endY,
			Radius: outerDiscRatio * radius,
			Color:  color,
		})
	}
	s.discs = append(s.discs, Disc{
		Radius: centerDiscRatio * radius,
		Color:  rl.NewColor(0, 0, 0, 255),
	})
	return s, nil
}

// NewBall builds a single filled disc of the given color.
func NewBall(radius float32, color rl.Color) (*Shape, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("ball radius must be positive, got %v", radius)
	}
	return &Shape{discs: []Disc{{Radius: radius, Color: color}}}, nil
}

// NewSnowflake builds a small white disc.
func NewSnowflake(radius float32) (*Shape, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("snowflake radius must be positive, got %v", radius)
	}
	return &Shape{discs: []Disc{{Radius: radius, Color: snowColor}}}, nil
}

// Segments returns the shape's line geometry. The slice is owned by the shape.
func (s *Shape) Segments() []Segment { return s.segments }

// Discs returns the shape's disc geometry. The slice is owned by the shape.
func (s *Shape) Discs() []Disc { return s.discs }
