package field

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/rook-computer/triface/internal/clock"
	"github.com/rook-computer/triface/internal/layout"
	"github.com/rook-computer/triface/internal/palette"
	"github.com/rook-computer/triface/internal/sampler"
)

// Layout selects how background triangles are spread over the canvas.
type Layout int

const (
	// LayoutHalton places triangles on a shuffled-base Halton sequence.
	LayoutHalton Layout = iota
	// LayoutGrid places one jittered triangle per grid column, with rows
	// shuffled per set.
	LayoutGrid
)

func (l Layout) String() string {
	switch l {
	case LayoutHalton:
		return "halton"
	case LayoutGrid:
		return "grid"
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "halton", "":
		return LayoutHalton, nil
	case "grid":
		return LayoutGrid, nil
	}
	return 0, fmt.Errorf("unknown layout %q (want halton or grid): %w", s, ErrInvalidConfig)
}

var ErrInvalidConfig = errors.New("invalid field config")

const (
	// Early Halton terms bunch up near zero; start somewhere in [256, 384).
	haltonStartIndex = 256
	haltonStartRange = 128
)

type Config struct {
	Width          int
	Height         int
	Count          int
	Layout         Layout
	RandomizeSize  bool
	HourHandLength int
	// GridSize is the number of rows and columns for LayoutGrid.
	GridSize       int
}

func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("canvas %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidConfig)
	}
	if cfg.Count <= 0 {
		return fmt.Errorf("count %d: %w", cfg.Count, ErrInvalidConfig)
	}
	if cfg.HourHandLength <= 0 {
		return fmt.Errorf("hour hand length %d: %w", cfg.HourHandLength, ErrInvalidConfig)
	}
	switch cfg.Layout {
	case LayoutHalton:
	case LayoutGrid:
		if cfg.GridSize <= 0 || cfg.GridSize > cfg.Width || cfg.GridSize > cfg.Height {
			return fmt.Errorf("grid size %d for %dx%d canvas: %w", cfg.GridSize, cfg.Width, cfg.Height, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%s: %w", cfg.Layout, ErrInvalidConfig)
	}
	return nil
}

// Generate builds cfg.Count background triangles. The result depends only on
// cfg and the sampler's state.
func Generate(cfg Config, s *sampler.Sampler) ([]clock.Triangle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Layout {
	case LayoutGrid:
		return generateGrid(cfg, s)
	default:
		return generateHalton(cfg, s)
	}
}

func generateHalton(cfg Config, s *sampler.Sampler) ([]clock.Triangle, error) {
	index := haltonStartIndex + s.Intn(haltonStartRange)
	bases := sampler.Primes
	s.Shuffle(len(bases), func(i, j int) { bases[i], bases[j] = bases[j], bases[i] })
	xBase, yBase, sizeBase, hueBase := bases[0], bases[1], bases[2], bases[3]

	out := make([]clock.Triangle, 0, cfg.Count)
	for len(out) < cfg.Count {
		center := image.Pt(
			int(float64(cfg.Width)*sampler.Halton(index, xBase)),
			int(float64(cfg.Height)*sampler.Halton(index, yBase)),
		)
		scale := 1.0
		if cfg.RandomizeSize {
			scale = remapSize(sampler.Halton(index, sizeBase))
		}
		c := palette.FromHue(sampler.Halton(index, hueBase))

		hour, minute := clock.RandomHands(s)
		tri, err := clock.MakeTriangle(hour, minute, scale, c, center, cfg.HourHandLength)
		if err != nil {
			return nil, fmt.Errorf("halton triangle %d: %w", len(out), err)
		}
		out = append(out, tri)
		index++
	}
	return out, nil
}

// remapSize folds a uniform [0,1) sample into [MinScale, MaxScale): the lower
// half maps to [0.5,1) and the upper half to [1,2).
func remapSize(u float64) float64 {
	if u < 0.5 {
		return u + 0.5
	}
	return u * 2
}

func generateGrid(cfg Config, s *sampler.Sampler) ([]clock.Triangle, error) {
	canvas := image.Rect(0, 0, cfg.Width, cfg.Height)
	n := cfg.GridSize
	rows := make([]int, n)

	out := make([]clock.Triangle, 0, cfg.Count)
	for len(out) < cfg.Count {
		for i := range rows {
			rows[i] = i
		}
		s.Shuffle(n, func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })

		for col := 0; col < n && len(out) < cfg.Count; col++ {
			cell := layout.GridCell(canvas, n, n, col, rows[col])
			center := image.Pt(
				cell.Min.X+s.Intn(cell.Dx()),
				cell.Min.Y+s.Intn(cell.Dy()),
			)
			c := palette.FromRandom(s)
			hour, minute := clock.RandomHands(s)
			tri, err := clock.MakeTriangle(hour, minute, 1, c, center, cfg.HourHandLength)
			if err != nil {
				return nil, fmt.Errorf("grid triangle %d: %w", len(out), err)
			}
			out = append(out, tri)
		}
	}
	return out, nil
}
