package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is an offscreen RGBA image that implements Drawer.
// Fills go through the x/image vector rasterizer and outlines through the
// freetype stroker.
type Canvas struct {
	img      *image.RGBA
	filler   *vector.Rasterizer
	stroker  *raster.Rasterizer
	painter  *raster.RGBAPainter
	fontFace font.Face
}

func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		img:      img,
		filler:   vector.NewRasterizer(width, height),
		stroker:  raster.NewRasterizer(width, height),
		painter:  raster.NewRGBAPainter(img),
		fontFace: basicfont.Face7x13,
	}
}

// Image exposes the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) FillTriangle(pts [3]image.Point, col color.Color) {
	w, h := c.Size()
	c.filler.Reset(w, h)
	c.filler.DrawOp = draw.Over
	c.filler.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	c.filler.LineTo(float32(pts[1].X), float32(pts[1].Y))
	c.filler.LineTo(float32(pts[2].X), float32(pts[2].Y))
	c.filler.ClosePath()
	c.filler.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{})
}

func (c *Canvas) StrokeTriangle(pts [3]image.Point, col color.Color, width int) {
	if width <= 0 {
		return
	}
	var path raster.Path
	path.Start(toFixed(pts[0]))
	path.Add1(toFixed(pts[1]))
	path.Add1(toFixed(pts[2]))
	path.Add1(toFixed(pts[0]))

	c.stroker.Clear()
	c.stroker.UseNonZeroWinding = true
	raster.Stroke(c.stroker, path, fixed.I(width), raster.RoundCapper, raster.RoundJoiner)
	c.painter.SetColor(col)
	c.stroker.Rasterize(c.painter)
}

func (c *Canvas) DrawText(text string, x, y int, col color.Color) {
	ascent := c.fontFace.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: col},
		Face: c.fontFace,
		Dot:  fixed.P(x, y+ascent),
	}
	drawer.DrawString(text)
}

// MeasureText returns the advance width of text in pixels.
func (c *Canvas) MeasureText(text string) int {
	return font.MeasureString(c.fontFace, text).Ceil()
}

func toFixed(p image.Point) fixed.Point26_6 {
	return fixed.P(p.X, p.Y)
}
