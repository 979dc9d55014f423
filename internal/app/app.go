package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rook-computer/triface/internal/render"
	"github.com/rook-computer/triface/internal/system"
)

// Face is the screen the app keeps on display.
type Face interface {
	render.Screen
	Regenerate() error
}

type App struct {
	Render  render.Renderer
	Face    Face
	Logger  Logger
	// Now reads the wall clock; tests replace it.
	Now func() time.Time
	// Console switches the active VT into graphics mode while running.
	Console bool
	// Frames stops the app after that many redraws; zero runs until cancelled.
	Frames int

	exitOnce atomic.Bool
	exitCh   chan error
	regenCh  chan struct{}
	after    func(time.Duration) <-chan time.Time
}

func New(renderer render.Renderer, face Face) *App {
	return &App{
		Render:  renderer,
		Face:    face,
		Logger:  NoopLogger{},
		Now:     time.Now,
		exitCh:  make(chan error, 1),
		regenCh: make(chan struct{}, 1),
		after:   time.After,
	}
}

// Exit requests the app to stop running.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// RequestRegenerate asks the redraw loop to rebuild the background and draw
// it immediately. Requests made while one is pending are merged.
func (app *App) RequestRegenerate() {
	select {
	case app.regenCh <- struct{}{}:
	default:
	}
}

// Start draws the face immediately and then once per minute until ctx is
// done, Exit is called, or Frames redraws have happened. All drawing and
// regeneration happens on the calling goroutine.
func (app *App) Start(ctx context.Context) error {
	if app.Render == nil || app.Face == nil {
		return errors.New("app needs a renderer and a face")
	}
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	if app.regenCh == nil {
		app.regenCh = make(chan struct{}, 1)
	}
	if app.after == nil {
		app.after = time.After
	}
	if app.Now == nil {
		app.Now = time.Now
	}
	app.exitOnce.Store(false)

	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	if app.Console {
		// Switch console to KD_GRAPHICS to suppress hardware cursor
		if err := system.SetGraphicsModeWithLog(app.Logger); err != nil {
			app.Logger.Errorf("tty", "set graphics mode failed: %v", err)
		}
		_ = system.HideCursorWithLog(app.Logger)
		defer func() { _ = system.ShowCursorWithLog(app.Logger); _ = system.RestoreTextModeWithLog(app.Logger) }()
	}

	app.Render.SetScreen(app.Face)

	frames := 0
	redraw := func() bool {
		if err := app.Render.Redraw(app.Now()); err != nil {
			app.Logger.Errorf("app", "redraw error: %v", err)
		}
		frames++
		return app.Frames > 0 && frames >= app.Frames
	}

	if redraw() {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-app.exitCh:
			return err
		case <-app.regenCh:
			if err := app.Face.Regenerate(); err != nil {
				app.Logger.Errorf("app", "regenerate error: %v", err)
				continue
			}
			if redraw() {
				return nil
			}
		case <-app.after(render.UntilNextMinute(app.Now())):
			if redraw() {
				return nil
			}
		}
	}
}
