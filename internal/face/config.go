package face

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rook-computer/triface/internal/clock"
	"github.com/rook-computer/triface/internal/field"
	"github.com/rook-computer/triface/internal/render"
)

const (
	EnvFillMode       = "TRIFACE_FILL"
	EnvRandomizeSize  = "TRIFACE_RANDOMIZE_SIZE"
	EnvLayout         = "TRIFACE_LAYOUT"
	EnvBackground     = "TRIFACE_COUNT"
	EnvGridSize       = "TRIFACE_GRID"
	EnvHourHandLength = "TRIFACE_HOUR_HAND"
	EnvEdgeWidth      = "TRIFACE_EDGE"
	EnvCaption        = "TRIFACE_CAPTION"
)

var ErrInvalidConfig = errors.New("invalid face config")

// Config holds the face settings. The minute hand is always twice
// HourHandLength.
type Config struct {
	Width           int
	Height          int
	FillMode        bool
	RandomizeSize   bool
	Layout          field.Layout
	BackgroundCount int
	GridSize        int
	HourHandLength  int
	EdgeWidth       int
	// Caption prints the time and seed along the bottom edge.
	Caption         bool
}

func DefaultConfig() Config {
	return Config{
		Width:           render.CanvasWidth,
		Height:          render.CanvasHeight,
		FillMode:        true,
		RandomizeSize:   true,
		Layout:          field.LayoutHalton,
		BackgroundCount: 18,
		GridSize:        6,
		HourHandLength:  clock.DefaultHourHandLength,
		EdgeWidth:       4,
	}
}

// ConfigFromEnv overrides defaults with any TRIFACE_* variables that are set.
func ConfigFromEnv(defaults Config) (Config, error) {
	cfg := defaults
	var err error
	if cfg.FillMode, err = envBool(EnvFillMode, cfg.FillMode); err != nil {
		return Config{}, err
	}
	if cfg.RandomizeSize, err = envBool(EnvRandomizeSize, cfg.RandomizeSize); err != nil {
		return Config{}, err
	}
	if cfg.Caption, err = envBool(EnvCaption, cfg.Caption); err != nil {
		return Config{}, err
	}
	if raw := os.Getenv(EnvLayout); raw != "" {
		if cfg.Layout, err = field.ParseLayout(raw); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLayout, err)
		}
	}
	if cfg.BackgroundCount, err = envInt(EnvBackground, cfg.BackgroundCount); err != nil {
		return Config{}, err
	}
	if cfg.GridSize, err = envInt(EnvGridSize, cfg.GridSize); err != nil {
		return Config{}, err
	}
	if cfg.HourHandLength, err = envInt(EnvHourHandLength, cfg.HourHandLength); err != nil {
		return Config{}, err
	}
	if cfg.EdgeWidth, err = envInt(EnvEdgeWidth, cfg.EdgeWidth); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.EdgeWidth < 0 {
		return fmt.Errorf("edge width %d: %w", cfg.EdgeWidth, ErrInvalidConfig)
	}
	if err := cfg.fieldConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (cfg Config) fieldConfig() field.Config {
	return field.Config{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Count:          cfg.BackgroundCount,
		Layout:         cfg.Layout,
		RandomizeSize:  cfg.RandomizeSize,
		HourHandLength: cfg.HourHandLength,
		GridSize:       cfg.GridSize,
	}
}

func envBool(name string, fallback bool) (bool, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q): %w", name, raw, err)
	}
	return parsed, nil
}

func envInt(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q): %w", name, raw, err)
	}
	return parsed, nil
}
