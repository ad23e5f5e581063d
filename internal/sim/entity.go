package sim

// Kind selects the update rule for an entity.
type Kind uint8

const (
	KindWheel Kind = iota
	KindBall
	KindSnowflake
)

// String returns the kind name used in scene files and logs.
func (k Kind) String() string {
	switch k {
	case KindWheel:
		return "wheel"
	case KindBall:
		return "ball"
	case KindSnowflake:
		return "snowflake"
	default:
		return "unknown"
	}
}

// Bounds is the fixed viewport used for boundary reflection and snow wrap-around.
// Y grows downward, matching raylib screen coordinates.
type Bounds struct {
	Width  float32
	Height float32
}

// Entity is one animated object. Position and velocity are in pixels (per tick);
// Angle and Spin are in degrees (per tick). Radius is used for ball reflection.
// driftTicks counts frames since the last lateral flip of a snowflake.
type Entity struct {
	Kind   Kind
	X, Y   float32
	VX, VY float32
	Angle  float32
	Spin   float32
	Radius float32

	driftTicks int
}
