package render

import (
	"context"
	"image"
	"image/color"
	"time"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	Redraw(now time.Time) error
}

type Screen interface {
	Draw(d Drawer, now time.Time)
}

// Logger is the component-tagged logger the renderers report through.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Drawer is an abstraction the renderer provides to screens to draw primitives
// without exposing low-level framebuffer details.
type Drawer interface {
	// Size returns the logical canvas size (in pixels) that screens draw into.
	Size() (width int, height int)

	Clear(c color.Color)

	// Triangle primitives. Points are in canvas pixels and may fall outside the
	// canvas; anything off-canvas is clipped.
	FillTriangle(pts [3]image.Point, c color.Color)
	StrokeTriangle(pts [3]image.Point, c color.Color, width int)

	// DrawText draws a single line with its top-left corner at (x, y).
	DrawText(text string, x, y int, c color.Color)
}

// UntilNextMinute returns how long to wait from now until the next minute
// boundary. It is never zero, so a tick landing exactly on a boundary waits a
// full minute.
func UntilNextMinute(now time.Time) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(now)
}
