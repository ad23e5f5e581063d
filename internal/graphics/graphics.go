package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options are the window and frame-pacing settings for the loop.
type Options struct {
	Width      int32
	Height     int32
	Title      string
	FPS        int32
	Background rl.Color
}

// Run opens the window and drives the frame loop until the window is closed.
// Each frame it calls update (simulation tick), then clears the screen and
// calls draw between BeginDrawing and EndDrawing. Single-threaded: update and
// draw run sequentially on the caller's goroutine, paced by SetTargetFPS.
func Run(opts Options, update, draw func()) {
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(opts.FPS)

	for !rl.WindowShouldClose() {
		frame(opts, update, draw)
	}
}

// RunFrames is Run bounded to at most n frames. Closing the window still
// stops early.
func RunFrames(opts Options, n int, update, draw func()) {
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(opts.FPS)

	for i := 0; i < n && !rl.WindowShouldClose(); i++ {
		frame(opts, update, draw)
	}
}

func frame(opts Options, update, draw func()) {
	update()

	rl.BeginDrawing()
	rl.ClearBackground(opts.Background)
	draw()
	rl.EndDrawing()
}
