package face

import (
	"fmt"
	"image"
	"time"

	"github.com/rook-computer/triface/internal/clock"
	"github.com/rook-computer/triface/internal/field"
	"github.com/rook-computer/triface/internal/layout"
	"github.com/rook-computer/triface/internal/palette"
	"github.com/rook-computer/triface/internal/render"
	"github.com/rook-computer/triface/internal/sampler"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

const captionHeight = 16

// Face is the triangle clock face. It owns its sampler and background field
// and is meant to be driven from a single goroutine.
type Face struct {
	cfg        Config
	sampler    *sampler.Sampler
	logger     Logger
	center     image.Point
	background []clock.Triangle
}

// New validates cfg and builds the background field from s.
func New(cfg Config, s *sampler.Sampler, logger Logger) (*Face, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Face{
		cfg:     cfg,
		sampler: s,
		logger:  logger,
		center:  layout.Center(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	if err := f.Regenerate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Face) Config() Config { return f.cfg }

// Regenerate replaces the whole background field, continuing from the
// sampler's current state.
func (f *Face) Regenerate() error {
	background, err := field.Generate(f.cfg.fieldConfig(), f.sampler)
	if err != nil {
		return fmt.Errorf("generate background: %w", err)
	}
	f.background = background
	if f.logger != nil {
		f.logger.Infof("face", "background regenerated: %d triangles, layout=%s seed=%d", len(background), f.cfg.Layout, f.sampler.Seed())
	}
	return nil
}

// Background returns a copy of the background field.
func (f *Face) Background() []clock.Triangle {
	return append([]clock.Triangle(nil), f.background...)
}

// Foreground builds the triangle showing now, centered on the canvas in a
// freshly picked color.
func (f *Face) Foreground(now time.Time) (clock.Triangle, error) {
	c := palette.FromHue(f.sampler.Float64())
	return clock.MakeTriangle(clock.Hour12(now), now.Minute(), 1, c, f.center, f.cfg.HourHandLength)
}

// Compose returns the triangles for one frame in draw order: the background
// followed by the foreground.
func (f *Face) Compose(now time.Time) ([]clock.Triangle, error) {
	fg, err := f.Foreground(now)
	if err != nil {
		return nil, err
	}
	frame := make([]clock.Triangle, 0, len(f.background)+1)
	frame = append(frame, f.background...)
	return append(frame, fg), nil
}

// Draw clears d and renders the frame for now.
//
// In fill mode every triangle is filled in its own color and only the
// foreground gets an outline. In outline mode every triangle is outlined,
// the foreground in the edge color and the rest in their own colors.
func (f *Face) Draw(d render.Drawer, now time.Time) {
	d.Clear(render.Background)
	frame, err := f.Compose(now)
	if err != nil {
		if f.logger != nil {
			f.logger.Errorf("face", "compose failed: %v", err)
		}
		return
	}
	last := len(frame) - 1
	for i, tri := range frame {
		f.drawTriangle(d, tri, i == last)
	}
	if f.logger != nil {
		fg := frame[last]
		f.logger.Infof("face", "drew %s with %s hands at %v/%v", now.Format("15:04"), palette.Hex(fg.Color), fg.HourHand, fg.MinuteHand)
	}
	if f.cfg.Caption {
		f.drawCaption(d, now)
	}
}

func (f *Face) drawTriangle(d render.Drawer, tri clock.Triangle, primary bool) {
	pts := tri.Points()
	if f.cfg.FillMode {
		d.FillTriangle(pts, tri.Color)
		if primary {
			d.StrokeTriangle(pts, render.Edge, f.cfg.EdgeWidth)
		}
		return
	}
	stroke := tri.Color
	if primary {
		stroke = render.Edge
	}
	d.StrokeTriangle(pts, stroke, f.cfg.EdgeWidth)
}

func (f *Face) drawCaption(d render.Drawer, now time.Time) {
	w, h := d.Size()
	strip := layout.BottomStrip(image.Rect(0, 0, w, h), captionHeight)
	d.DrawText(fmt.Sprintf("%s #%d", now.Format("15:04"), f.sampler.Seed()), strip.Min.X+2, strip.Min.Y+1, render.Edge)
}
