package render

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/triface/internal/layout"
)

const DefaultFramebuffer = "/dev/fb0"

// FBRenderer renders to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	Device string
	Width  int
	Height int
	Logger Logger

	fbDev   *fb.Device
	canvas  *Canvas
	running atomic.Bool
	current Screen
}

func NewFBRenderer(device string, width, height int) *FBRenderer {
	if device == "" {
		device = DefaultFramebuffer
	}
	return &FBRenderer{Device: device, Width: width, Height: height}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d canvas=%dx%d", r.Device, bounds.Dx(), bounds.Dy(), r.Width, r.Height)
	}

	r.canvas = NewCanvas(r.Width, r.Height)
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// SetScreen sets the current logical screen to be drawn.
func (r *FBRenderer) SetScreen(screen Screen) { r.current = screen }

// Redraw draws the current screen for now and pushes it to the framebuffer.
func (r *FBRenderer) Redraw(now time.Time) error {
	if !r.running.Load() || r.fbDev == nil {
		return errors.New("framebuffer renderer not started")
	}
	if r.current == nil {
		return nil
	}
	r.current.Draw(r.canvas, now)
	blitToFB(r.fbDev, r.canvas.Image())
	if r.Logger != nil {
		r.Logger.Infof("fb", "redraw done at %s", now.Format("15:04"))
	}
	return nil
}

// Helper: letterbox the canvas onto the framebuffer with nearest-neighbor
// scaling, keeping its aspect ratio.
func blitToFB(dst draw.Image, canvas *image.RGBA) {
	bounds := dst.Bounds()
	target := layout.Fit(bounds, canvas.Bounds().Size())
	draw.Draw(dst, bounds, &image.Uniform{C: Background}, image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(dst, target, canvas, canvas.Bounds(), xdraw.Src, nil)
}
