package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/triface/internal/face"
	"github.com/rook-computer/triface/internal/render"
	"github.com/rook-computer/triface/internal/sampler"
)

type fakeRenderer struct {
	started, stopped bool
	startErr         error
	screen           render.Screen
	redraws          []time.Time
}

func (r *fakeRenderer) Start(ctx context.Context) error { r.started = true; return r.startErr }
func (r *fakeRenderer) Stop() error                     { r.stopped = true; return nil }
func (r *fakeRenderer) SetScreen(s render.Screen)       { r.screen = s }
func (r *fakeRenderer) Redraw(now time.Time) error {
	r.redraws = append(r.redraws, now)
	return nil
}

type fakeFace struct{ regenerated int }

func (f *fakeFace) Draw(d render.Drawer, now time.Time) {}
func (f *fakeFace) Regenerate() error                   { f.regenerated++; return nil }

var start = time.Date(2024, 6, 1, 8, 59, 30, 0, time.UTC)

func immediately(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- start
	return ch
}

func never(time.Duration) <-chan time.Time { return nil }

func newTestApp(r render.Renderer, f Face) *App {
	a := New(r, f)
	a.Now = func() time.Time { return start }
	return a
}

func TestStartRedrawsEveryTick(t *testing.T) {
	r := &fakeRenderer{}
	a := newTestApp(r, &fakeFace{})
	a.after = immediately
	a.Frames = 3

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, r.started)
	assert.True(t, r.stopped)
	assert.Len(t, r.redraws, 3)
	assert.NotNil(t, r.screen)
}

func TestStartWaitsForMinuteBoundary(t *testing.T) {
	var waits []time.Duration
	a := newTestApp(&fakeRenderer{}, &fakeFace{})
	a.Frames = 2
	a.after = func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		return immediately(d)
	}
	require.NoError(t, a.Start(context.Background()))
	assert.Equal(t, []time.Duration{30 * time.Second}, waits)
}

func TestRegenerateRedrawsImmediately(t *testing.T) {
	r := &fakeRenderer{}
	f := &fakeFace{}
	a := newTestApp(r, f)
	a.after = never
	a.Frames = 2
	a.RequestRegenerate()
	a.RequestRegenerate()

	require.NoError(t, a.Start(context.Background()))
	assert.Equal(t, 1, f.regenerated)
	assert.Len(t, r.redraws, 2)
}

func TestStartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := newTestApp(&fakeRenderer{}, &fakeFace{})
	a.after = never
	assert.ErrorIs(t, a.Start(ctx), context.Canceled)
}

func TestExitStopsWithError(t *testing.T) {
	boom := errors.New("boom")
	a := newTestApp(&fakeRenderer{}, &fakeFace{})
	a.after = never
	a.Exit(boom)
	a.Exit(errors.New("ignored"))
	assert.ErrorIs(t, a.Start(context.Background()), boom)
}

func TestStartReportsRendererFailure(t *testing.T) {
	var buf bytes.Buffer
	r := &fakeRenderer{startErr: errors.New("no framebuffer")}
	a := newTestApp(r, &fakeFace{})
	a.Logger = NewFileLogger(&buf)
	assert.EqualError(t, a.Start(context.Background()), "no framebuffer")
	assert.Contains(t, buf.String(), "[ERROR] app: renderer start error: no framebuffer")
}

func TestStartNeedsRendererAndFace(t *testing.T) {
	assert.Error(t, New(nil, &fakeFace{}).Start(context.Background()))
	assert.Error(t, New(&fakeRenderer{}, nil).Start(context.Background()))
}

func TestFaceToPNG(t *testing.T) {
	cfg := face.DefaultConfig()
	f, err := face.New(cfg, sampler.New(9), nil)
	require.NoError(t, err)

	r := render.NewPNGRenderer(t.TempDir()+"/face-{1504}.png", cfg.Width, cfg.Height)
	a := newTestApp(r, f)
	a.Frames = 1
	require.NoError(t, a.Start(context.Background()))

	written := r.Written()
	require.Len(t, written, 1)
	assert.True(t, strings.HasSuffix(written[0], "face-0859.png"))
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("face", "drew %d", 19)
	line := buf.String()
	assert.True(t, strings.HasSuffix(line, " [INFO] face: drew 19\n"), line)
}
