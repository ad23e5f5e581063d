package scene

import (
	"fmt"

	"shape-anim/internal/config"
	"shape-anim/internal/shapes"
	"shape-anim/internal/sim"
)

// Scene ties the simulation world to the draw list. The composer runs once in
// New: every entity gets exactly one shape handle, appended in descriptor
// order, and the per-frame path never allocates geometry again. Update mutates
// kinematic state and copies transforms onto the handles; Draw resubmits the
// list.
type Scene struct {
	World *sim.World
	List  *shapes.DrawList
}

// New composes the scene from validated entity descriptors. Descriptor order
// is draw order. Geometry errors are startup errors.
func New(cfg config.Scene) (*Scene, error) {
	bounds := sim.Bounds{
		Width:  float32(cfg.Window.Width),
		Height: float32(cfg.Window.Height),
	}
	world := sim.NewWorld(bounds, cfg.Seed)
	list := shapes.NewDrawList()

	for i, def := range cfg.Entities {
		shape, kind, err := buildShape(def)
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		shape.CenterX = def.X
		shape.CenterY = def.Y
		list.Append(shape)

		world.Add(&sim.Entity{
			Kind:   kind,
			X:      def.X,
			Y:      def.Y,
			VX:     def.VX,
			VY:     def.VY,
			Spin:   def.Spin,
			Radius: def.Radius,
		})
	}
	return &Scene{World: world, List: list}, nil
}

// buildShape constructs the immutable geometry for one descriptor.
func buildShape(def config.EntityDef) (*shapes.Shape, sim.Kind, error) {
	switch def.Kind {
	case config.KindWheel:
		s, err := shapes.NewWheel(def.Radius, def.Spokes)
		return s, sim.KindWheel, err
	case config.KindBall:
		color, err := config.ParseColor(def.Color)
		if err != nil {
			return nil, 0, err
		}
		s, err := shapes.NewBall(def.Radius, color)
		return s, sim.KindBall, err
	case config.KindSnowflake:
		s, err := shapes.NewSnowflake(def.Radius)
		return s, sim.KindSnowflake, err
	default:
		return nil, 0, fmt.Errorf("unknown kind %q", def.Kind)
	}
}

// Update runs one simulation tick and syncs each handle's transform from its
// entity. Entities and handles stay index-aligned for the program's lifetime.
func (s *Scene) Update() {
	s.World.Step(1)
	for i, e := range s.World.Entities {
		h := s.List.At(i)
		h.CenterX = e.X
		h.CenterY = e.Y
		h.Angle = e.Angle
	}
}

// Draw resubmits the draw list. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw() {
	s.List.Draw()
}
