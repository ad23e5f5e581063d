package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws runtime counters in the top-right corner. Off by default.
type Overlay struct {
	ShowFPS bool

	frameCount  uint32
	lastFpsText string
	shapeText   string
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetShowFPS sets whether the FPS counter and shape count are drawn.
func (o *Overlay) SetShowFPS(show bool) {
	o.ShowFPS = show
}

// SetShapeCount records the draw-list size shown under the FPS counter.
// The list never changes size after startup, so this is set once.
func (o *Overlay) SetShapeCount(n int) {
	o.shapeText = fmt.Sprintf("Shapes: %d", n)
}

// Draw renders the overlay. Call after the scene in the draw loop.
// FPS text is only recomputed every updateInterval frames.
func (o *Overlay) Draw() {
	if !o.ShowFPS {
		return
	}
	o.frameCount++
	if o.lastFpsText == "" || o.frameCount%updateInterval == 0 {
		o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	w := rl.MeasureText(o.lastFpsText, fontSize)
	rl.DrawText(o.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
	y += lineHeight

	if o.shapeText != "" {
		w = rl.MeasureText(o.shapeText, fontSize)
		rl.DrawText(o.shapeText, screenW-w-padding, y, fontSize, rl.Green)
	}
}
