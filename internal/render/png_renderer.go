package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"
)

// PNGRenderer writes every redraw to a PNG file instead of a display.
//
// Path may contain a time layout wrapped in braces, for example
// "frames/face-{1504}.png"; without one every frame overwrites the same file.
type PNGRenderer struct {
	Path   string
	Width  int
	Height int
	// Scale enlarges the written image by a whole factor (nearest neighbor).
	Scale  int
	Logger Logger

	canvas  *Canvas
	current Screen
	written []string
}

func NewPNGRenderer(path string, width, height int) *PNGRenderer {
	return &PNGRenderer{Path: path, Width: width, Height: height, Scale: 1}
}

func (r *PNGRenderer) Start(ctx context.Context) error {
	if r.Path == "" {
		return errors.New("png renderer: no output path")
	}
	if dir := filepath.Dir(r.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("png renderer: %w", err)
		}
	}
	r.canvas = NewCanvas(r.Width, r.Height)
	return nil
}

func (r *PNGRenderer) Stop() error { return nil }

func (r *PNGRenderer) SetScreen(screen Screen) { r.current = screen }

// Canvas returns the logical canvas of the last frame.
func (r *PNGRenderer) Canvas() *Canvas { return r.canvas }

// Written lists the files produced so far, oldest first.
func (r *PNGRenderer) Written() []string { return append([]string(nil), r.written...) }

func (r *PNGRenderer) Redraw(now time.Time) error {
	if r.canvas == nil {
		return errors.New("png renderer not started")
	}
	if r.current == nil {
		return nil
	}
	r.current.Draw(r.canvas, now)

	path := framePath(r.Path, now)
	if err := writePNG(path, r.scaled()); err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("png", "write %s failed: %v", path, err)
		}
		return err
	}
	r.written = append(r.written, path)
	if r.Logger != nil {
		r.Logger.Infof("png", "frame written to %s", path)
	}
	return nil
}

func (r *PNGRenderer) scaled() image.Image {
	src := r.canvas.Image()
	if r.Scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*r.Scale, b.Dy()*r.Scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func framePath(pattern string, now time.Time) string {
	open := strings.Index(pattern, "{")
	end := strings.LastIndex(pattern, "}")
	if open < 0 || end < open {
		return pattern
	}
	return pattern[:open] + now.Format(pattern[open+1:end]) + pattern[end+1:]
}

func writePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
