package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/triface/internal/app"
	"github.com/rook-computer/triface/internal/face"
	"github.com/rook-computer/triface/internal/render"
	"github.com/rook-computer/triface/internal/sampler"
	"github.com/rook-computer/triface/internal/system"
)

func main() {
	defaults, err := face.ConfigFromEnv(face.DefaultConfig())
	if err != nil {
		fmt.Println("face config error:", err)
		os.Exit(2)
	}

	// Flags
	debug := flag.Bool("debug", false, "enable debug logging to ./triface-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via TRIFACE_STDIO_LOG")
	device := flag.String("fb", render.DefaultFramebuffer, "framebuffer device to draw on")
	seed := flag.Int64("seed", 0, "background seed; 0 seeds from the clock")
	cfg := face.RegisterFlags(flag.CommandLine, defaults)
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("TRIFACE_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./triface-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	s := sampler.NewFromTime()
	if *seed != 0 {
		s = sampler.New(*seed)
	}
	logger.Infof("main", "seed %d", s.Seed())

	clockFace, err := face.New(*cfg, s, logger)
	if err != nil {
		fmt.Println("face init error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewFBRenderer(*device, cfg.Width, cfg.Height)
	renderer.Logger = logger

	a := app.New(renderer, clockFace)
	a.Logger = logger
	a.Console = true

	// SIGHUP rebuilds the background field.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				logger.Infof("main", "SIGHUP: regenerating background")
				a.RequestRegenerate()
			}
		}
	}()

	system.StartExitOnKey(ctx, logger, func() { a.Exit(nil) }, system.KeyF4)

	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("app error:", err)
		os.Exit(1)
	}
}
