package sim

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// driftFlipTicks is how many frames a snowflake drifts to one side before the
// lateral direction flips, giving the falling snow its oscillation.
const driftFlipTicks = 5

// World holds all simulation state: the entity list, the viewport bounds, and
// the random source used for snowflake respawn. One Step call per frame; the
// renderer reads the resulting transforms after Step returns, so no locking.
type World struct {
	Bounds   Bounds
	Entities []*Entity
	Tick     uint64

	rng *rand.Rand
}

// NewWorld returns an empty world over the given viewport. The seed drives
// snowflake respawn positions; a fixed seed gives a reproducible run.
func NewWorld(b Bounds, seed int64) *World {
	return &World{
		Bounds: b,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Add appends an entity. Order is preserved so entities stay aligned with
// their shape handles in the draw list.
func (w *World) Add(e *Entity) {
	w.Entities = append(w.Entities, e)
}

// Step advances every entity by dt ticks. Pure state transformation: no I/O,
// no allocation, O(1) per entity.
func (w *World) Step(dt float32) {
	w.Tick++
	for _, e := range w.Entities {
		switch e.Kind {
		case KindWheel:
			e.X += e.VX * dt
			e.Y += e.VY * dt
			e.Angle = wrapAngle(e.Angle + e.Spin*dt)
			// Wheels bounce on their center crossing the viewport edge;
			// the rim is allowed to overhang.
			reflect(e, 0, w.Bounds)
		case KindBall:
			e.X += e.VX * dt
			e.Y += e.VY * dt
			reflect(e, e.Radius, w.Bounds)
		case KindSnowflake:
			w.stepSnowflake(e, dt)
		}
	}
}

// stepSnowflake moves a flake down by its constant fall speed while the x
// drift flips direction every driftFlipTicks frames. A flake that falls past
// the bottom edge respawns at the top at a uniformly random x.
func (w *World) stepSnowflake(e *Entity, dt float32) {
	e.X += e.VX * dt
	e.driftTicks++
	if e.driftTicks >= driftFlipTicks {
		e.VX = -e.VX
		e.driftTicks = 0
	}
	e.Y += e.VY * dt
	if e.Y > w.Bounds.Height {
		e.Y = 0
		e.X = w.rng.Float32() * w.Bounds.Width
		e.driftTicks = 0
	}
}

// reflect flips a velocity component when the entity is moving out of bounds
// and clamps the position back inside. Checking the velocity sign guarantees
// each crossing flips the component exactly once, so speed is preserved.
func reflect(e *Entity, r float32, b Bounds) {
	if e.X-r < 0 && e.VX < 0 {
		e.VX = -e.VX
		e.X = r
	}
	if e.X+r > b.Width && e.VX > 0 {
		e.VX = -e.VX
		e.X = b.Width - r
	}
	if e.Y-r < 0 && e.VY < 0 {
		e.VY = -e.VY
		e.Y = r
	}
	if e.Y+r > b.Height && e.VY > 0 {
		e.VY = -e.VY
		e.Y = b.Height - r
	}
}

// wrapAngle normalizes an angle in degrees into [0, 360).
func wrapAngle(a float32) float32 {
	a = math32.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
