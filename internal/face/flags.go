package face

import (
	"flag"

	"github.com/rook-computer/triface/internal/field"
)

// RegisterFlags binds the face settings to fs, using defaults (typically from
// ConfigFromEnv) as flag defaults. The returned Config is filled in by
// fs.Parse.
func RegisterFlags(fs *flag.FlagSet, defaults Config) *Config {
	cfg := defaults
	fs.BoolVar(&cfg.FillMode, "fill", cfg.FillMode, "fill triangles; false draws outlines only; also "+EnvFillMode)
	fs.BoolVar(&cfg.RandomizeSize, "randomize-size", cfg.RandomizeSize, "vary background triangle size (halton layout); also "+EnvRandomizeSize)
	fs.Func("layout", "background layout: halton | grid (default "+cfg.Layout.String()+"); also "+EnvLayout, func(raw string) error {
		l, err := field.ParseLayout(raw)
		if err != nil {
			return err
		}
		cfg.Layout = l
		return nil
	})
	fs.IntVar(&cfg.BackgroundCount, "count", cfg.BackgroundCount, "number of background triangles; also "+EnvBackground)
	fs.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "grid rows and columns for the grid layout; also "+EnvGridSize)
	fs.IntVar(&cfg.HourHandLength, "hour-hand", cfg.HourHandLength, "hour hand length in pixels, the minute hand is twice this; also "+EnvHourHandLength)
	fs.IntVar(&cfg.EdgeWidth, "edge", cfg.EdgeWidth, "outline stroke width in pixels; also "+EnvEdgeWidth)
	fs.BoolVar(&cfg.Caption, "caption", cfg.Caption, "print time and seed along the bottom; also "+EnvCaption)
	return &cfg
}
