package render

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(10, 12)
	w, h := c.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 12, h)

	c.Clear(green)
	assert.Equal(t, green, c.Image().RGBAAt(0, 0))
	assert.Equal(t, green, c.Image().RGBAAt(9, 11))
}

func TestCanvasFillTriangle(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(Background)
	c.FillTriangle([3]image.Point{{0, 0}, {39, 0}, {0, 39}}, red)

	assert.Equal(t, red, c.Image().RGBAAt(5, 5))
	assert.Equal(t, Background, c.Image().RGBAAt(35, 35))
}

func TestCanvasFillClipsOffCanvasPoints(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(Background)
	c.FillTriangle([3]image.Point{{10, 10}, {-50, 80}, {80, 80}}, red)

	assert.Equal(t, red, c.Image().RGBAAt(10, 18))
	assert.Equal(t, Background, c.Image().RGBAAt(1, 1))
}

func TestCanvasStrokeTriangle(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Clear(Background)
	c.StrokeTriangle([3]image.Point{{5, 5}, {35, 5}, {5, 35}}, Edge, 4)

	// on the top edge
	assert.Equal(t, Edge, c.Image().RGBAAt(20, 5))
	// well inside the outline
	assert.Equal(t, Background, c.Image().RGBAAt(12, 12))
	// outside
	assert.Equal(t, Background, c.Image().RGBAAt(35, 35))
}

func TestCanvasStrokeZeroWidthIsNoop(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(Background)
	c.StrokeTriangle([3]image.Point{{1, 1}, {8, 1}, {1, 8}}, Edge, 0)
	assert.Equal(t, Background, c.Image().RGBAAt(4, 1))
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(60, 20)
	c.Clear(Background)
	c.DrawText("88:88", 0, 0, Edge)

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if c.Image().RGBAAt(x, y) != Background {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)
	assert.Equal(t, 35, c.MeasureText("88:88"))
}

func TestUntilNextMinute(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 41, 0, 0, time.UTC)
	assert.Equal(t, time.Minute, UntilNextMinute(base))
	assert.Equal(t, 15*time.Second, UntilNextMinute(base.Add(45*time.Second)))
	assert.Equal(t, time.Millisecond, UntilNextMinute(base.Add(time.Minute-time.Millisecond)))
}

type solidScreen struct{ c color.Color }

func (s solidScreen) Draw(d Drawer, now time.Time) { d.Clear(s.c) }

func TestPNGRendererWritesFrames(t *testing.T) {
	dir := t.TempDir()
	r := NewPNGRenderer(filepath.Join(dir, "out", "face-{1504}.png"), 8, 6)
	r.Scale = 2
	require.NoError(t, r.Start(context.Background()))
	r.SetScreen(solidScreen{c: red})

	now := time.Date(2024, 5, 1, 10, 41, 0, 0, time.UTC)
	require.NoError(t, r.Redraw(now))
	require.NoError(t, r.Redraw(now.Add(time.Minute)))

	written := r.Written()
	require.Len(t, written, 2)
	assert.Equal(t, filepath.Join(dir, "out", "face-1041.png"), written[0])
	assert.Equal(t, filepath.Join(dir, "out", "face-1042.png"), written[1])

	f, err := os.Open(written[0])
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 12), img.Bounds())
	assert.Equal(t, red, rgba(img.At(15, 11)))
}

func TestPNGRendererNeedsStart(t *testing.T) {
	r := NewPNGRenderer("face.png", 8, 8)
	assert.Error(t, r.Redraw(time.Now()))
	assert.Error(t, NewPNGRenderer("", 8, 8).Start(context.Background()))
}

func TestFramePath(t *testing.T) {
	now := time.Date(2024, 5, 1, 7, 3, 0, 0, time.UTC)
	assert.Equal(t, "face.png", framePath("face.png", now))
	assert.Equal(t, "f-0703.png", framePath("f-{1504}.png", now))
}

type memImage struct{ *image.RGBA }

func TestBlitLetterboxes(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			canvas.SetRGBA(x, y, red)
		}
	}
	dst := memImage{image.NewRGBA(image.Rect(0, 0, 8, 4))}
	blitToFB(dst, canvas)

	assert.Equal(t, Background, dst.RGBAAt(0, 0))
	assert.Equal(t, red, dst.RGBAAt(2, 0))
	assert.Equal(t, red, dst.RGBAAt(5, 3))
	assert.Equal(t, Background, dst.RGBAAt(7, 3))
}
