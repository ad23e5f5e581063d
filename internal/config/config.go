package config

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// ScenePath is the path to the scene file, relative to the process working directory.
const ScenePath = "config/scene.yaml"

// Entity kind names accepted in scene files.
const (
	KindWheel     = "wheel"
	KindBall      = "ball"
	KindSnowflake = "snowflake"
)

// defaultSeed makes the generated default scene (and the run itself, via the
// simulation's random source) reproducible.
const defaultSeed = 1

const defaultSnowflakes = 250

// Window holds window and frame-loop settings. Background is a hex color.
type Window struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	FPS        int32  `yaml:"fps"`
	Background string `yaml:"background"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// EntityDef describes one animated entity in draw order. Positions and
// velocities are in pixels per tick, spin in degrees per tick. Fields left
// zero take the per-kind default.
type EntityDef struct {
	Kind   string  `yaml:"kind"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
	Radius float32 `yaml:"radius,omitempty"`
	Spokes int     `yaml:"spokes,omitempty"`
	VX     float32 `yaml:"vx,omitempty"`
	VY     float32 `yaml:"vy,omitempty"`
	Spin   float32 `yaml:"spin,omitempty"`
	Color  string  `yaml:"color,omitempty"`
}

// Scene is the whole configuration: window settings, the random seed for the
// simulation, and the entity list (insertion order is draw order).
type Scene struct {
	Window   Window      `yaml:"window"`
	Seed     int64       `yaml:"seed"`
	Entities []EntityDef `yaml:"entities"`
}

// Default returns the built-in scene: a backdrop of falling snow, four
// spinning wheels moving along the viewport edges, and two bouncing balls.
func Default() Scene {
	const w, h = 800, 560
	rng := rand.New(rand.NewSource(defaultSeed))

	s := Scene{
		Window: Window{
			Width:      w,
			Height:     h,
			Title:      "Shape Animation - Buffered",
			FPS:        30,
			Background: "#464646",
		},
		Seed: defaultSeed,
	}

	// Snow first so everything else draws on top of it.
	for n := 0; n < defaultSnowflakes; n++ {
		radius := float32(rng.Intn(4) + 2)
		if n%10 == 0 {
			radius *= 2
		}
		vx := float32(rng.Intn(3)+5) / 10
		if n%2 > 0 {
			vx = -vx
		}
		s.Entities = append(s.Entities, EntityDef{
			Kind:   KindSnowflake,
			X:      float32(rng.Intn(w)),
			Y:      float32(rng.Intn(h)),
			Radius: radius,
			VX:     vx,
			VY:     float32(rng.Intn(3)+5) / 10,
		})
	}

	s.Entities = append(s.Entities,
		EntityDef{Kind: KindWheel, X: 0, Y: h / 2, Radius: 150, Spokes: 3, VX: 1, Spin: 1},
		EntityDef{Kind: KindWheel, X: w, Y: h / 2, Radius: 150, Spokes: 3, VX: -1, Spin: -1},
		EntityDef{Kind: KindWheel, X: w / 2, Y: 0, Radius: 80, Spokes: 3, VY: 2, Spin: 4},
		EntityDef{Kind: KindWheel, X: w / 2, Y: h, Radius: 80, Spokes: 3, VY: -2, Spin: -4},
		EntityDef{Kind: KindBall, X: 45, Y: h - 45, Radius: 45, VX: 4, VY: -4, Color: "#ff0000"},
		EntityDef{Kind: KindBall, X: w - 45, Y: h - 45, Radius: 45, VX: -4, VY: -4, Color: "#00ff00"},
	)
	return s
}

// kindDefaults returns the per-kind defaults merged into each descriptor.
func kindDefaults(kind string) EntityDef {
	switch kind {
	case KindWheel:
		return EntityDef{Kind: kind, Radius: 80, Spokes: 3, Spin: 1}
	case KindBall:
		return EntityDef{Kind: kind, Radius: 20, VX: 4, VY: 4, Color: "#ff0000"}
	case KindSnowflake:
		return EntityDef{Kind: kind, Radius: 3, VX: 0.5, VY: 0.6}
	default:
		return EntityDef{Kind: kind}
	}
}

// applyDefaults fills zero fields of def from its kind's defaults. Only
// fields the scene file actually sets override the defaults.
func applyDefaults(def EntityDef) (EntityDef, error) {
	out := kindDefaults(def.Kind)
	if err := copier.CopyWithOption(&out, &def, copier.Option{IgnoreEmpty: true}); err != nil {
		return EntityDef{}, fmt.Errorf("merge defaults for %q: %w", def.Kind, err)
	}
	return out, nil
}

// Load reads a scene from path. A missing file is not an error: the built-in
// default scene is returned. A file that exists but does not parse or
// validate is a startup error.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Scene{}, fmt.Errorf("read scene %s: %w", path, err)
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if s.Window.Width == 0 && s.Window.Height == 0 {
		s.Window = Default().Window
	}
	for i, def := range s.Entities {
		merged, err := applyDefaults(def)
		if err != nil {
			return Scene{}, err
		}
		s.Entities[i] = merged
	}
	return s, nil
}

// Save writes the scene to path, creating parent directories as needed.
// Mainly useful for dumping the default scene as a starting point to edit.
func Save(s Scene, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects scenes the composer cannot build. All of these are
// programming or configuration errors reported at startup, never retried.
func (s Scene) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("viewport %dx%d is not positive", s.Window.Width, s.Window.Height)
	}
	if s.Window.FPS <= 0 {
		return fmt.Errorf("fps %d is not positive", s.Window.FPS)
	}
	if _, err := ParseColor(s.Window.Background); err != nil {
		return fmt.Errorf("window background: %w", err)
	}
	for i, def := range s.Entities {
		if err := validateEntity(def); err != nil {
			return fmt.Errorf("entity %d: %w", i, err)
		}
	}
	return nil
}

func validateEntity(def EntityDef) error {
	switch def.Kind {
	case KindWheel:
		if def.Spokes < 1 {
			return fmt.Errorf("wheel needs at least one spoke, got %d", def.Spokes)
		}
	case KindBall:
		if _, err := ParseColor(def.Color); err != nil {
			return err
		}
	case KindSnowflake:
	default:
		return fmt.Errorf("unknown kind %q", def.Kind)
	}
	if def.Radius <= 0 {
		return fmt.Errorf("%s radius must be positive, got %v", def.Kind, def.Radius)
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into an rl.Color.
func ParseColor(s string) (rl.Color, error) {
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return rl.Color{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < (len(s)-1)/2; i++ {
		hi, ok1 := hexVal(s[1+2*i])
		lo, ok2 := hexVal(s[2+2*i])
		if !ok1 || !ok2 {
			return rl.Color{}, fmt.Errorf("color %q: invalid hex digit", s)
		}
		rgba[i] = hi<<4 | lo
	}
	return rl.NewColor(rgba[0], rgba[1], rgba[2], rgba[3]), nil
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
