package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rook-computer/triface/internal/app"
	"github.com/rook-computer/triface/internal/face"
	"github.com/rook-computer/triface/internal/render"
	"github.com/rook-computer/triface/internal/sampler"
)

// The simulator draws the face into PNG files so it can be previewed on a
// desktop without a framebuffer.
func main() {
	defaults, err := face.ConfigFromEnv(face.DefaultConfig())
	if err != nil {
		fmt.Println("face config error:", err)
		os.Exit(2)
	}

	out := flag.String("out", "triface-{1504}.png", "output file; a time layout in braces is expanded per frame")
	at := flag.String("at", "", "draw at this time (HH:MM) instead of following the wall clock")
	frames := flag.Int("frames", 1, "number of frames to draw; 0 follows the wall clock until interrupted")
	scale := flag.Int("scale", 3, "integer upscale factor for the written images")
	seed := flag.Int64("seed", 0, "background seed; 0 seeds from the clock")
	verbose := flag.Bool("v", false, "log to stderr")
	cfg := face.RegisterFlags(flag.CommandLine, defaults)
	flag.Parse()

	var logger app.Logger = app.NoopLogger{}
	if *verbose {
		logger = app.NewFileLogger(os.Stderr)
	}

	s := sampler.NewFromTime()
	if *seed != 0 {
		s = sampler.New(*seed)
	}
	clockFace, err := face.New(*cfg, s, logger)
	if err != nil {
		fmt.Println("face init error:", err)
		os.Exit(2)
	}

	renderer := render.NewPNGRenderer(*out, cfg.Width, cfg.Height)
	renderer.Scale = *scale
	renderer.Logger = logger

	if *at != "" {
		start, err := time.ParseInLocation("15:04", *at, time.Local)
		if err != nil {
			fmt.Println("bad -at time:", err)
			os.Exit(2)
		}
		if err := drawAt(renderer, clockFace, start, *frames); err != nil {
			fmt.Println("render error:", err)
			os.Exit(1)
		}
		report(renderer, s)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(renderer, clockFace)
	a.Logger = logger
	a.Frames = *frames
	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		os.Exit(1)
	}
	report(renderer, s)
}

// drawAt renders frames consecutive minutes starting at start.
func drawAt(r *render.PNGRenderer, screen render.Screen, start time.Time, frames int) error {
	if frames <= 0 {
		frames = 1
	}
	if err := r.Start(context.Background()); err != nil {
		return err
	}
	defer r.Stop()
	r.SetScreen(screen)
	for i := 0; i < frames; i++ {
		if err := r.Redraw(start.Add(time.Duration(i) * time.Minute)); err != nil {
			return err
		}
	}
	return nil
}

func report(r *render.PNGRenderer, s *sampler.Sampler) {
	written := r.Written()
	fmt.Printf("seed %d, %d frame(s) written\n", s.Seed(), len(written))
	if len(written) > 0 {
		fmt.Println("last:", written[len(written)-1])
	}
}
