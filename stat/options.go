package stat

import "github.com/arloliu/vecstat/internal/options"

// Lane width bounds for the tiling drivers. The width is the number of
// independent partial reductions advanced per tile; useful values match the
// target's vector register capacity in float64 lanes (4 for AVX2, 8 for
// AVX-512), with headroom above that for unrolling experiments.
const (
	MinLaneWidth     = 2
	MaxLaneWidth     = 64
	DefaultLaneWidth = 8
)

// accumulateConfig carries the driver configuration assembled from options.
type accumulateConfig struct {
	laneWidth int
	weights   []float64
	projX     func(float64) float64
	projY     func(float64) float64
}

// Option configures an Accumulate driver call.
type Option = options.Option[*accumulateConfig]

func newAccumulateConfig(opts ...Option) (*accumulateConfig, error) {
	cfg := &accumulateConfig{laneWidth: DefaultLaneWidth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// projections returns the configured projections with identity fallbacks.
func (c *accumulateConfig) projections() (fx, fy func(float64) float64) {
	fx, fy = c.projX, c.projY
	if fx == nil {
		fx = identity
	}
	if fy == nil {
		fy = identity
	}

	return fx, fy
}

func identity(x float64) float64 { return x }

// WithLaneWidth sets the number of parallel lanes used by the tiling
// drivers. The width must be a power of two within
// [MinLaneWidth, MaxLaneWidth]; inputs shorter than the width fall back to
// pure scalar accumulation. Results for different widths agree up to
// floating-point rounding.
func WithLaneWidth(width int) Option {
	return options.New(func(c *accumulateConfig) error {
		if width < MinLaneWidth || width > MaxLaneWidth || width&(width-1) != 0 {
			return ErrInvalidLaneWidth
		}
		c.laneWidth = width

		return nil
	})
}

// WithWeights attaches a parallel sequence of per-observation weights. The
// slice must have the same length as the value sequence; zero-weight
// observations are no-ops. The driver does not modify the slice.
func WithWeights(weights []float64) Option {
	return options.NoError(func(c *accumulateConfig) {
		c.weights = weights
	})
}

// WithProjection applies f to each element of the (first) input sequence
// before accumulation. The projection runs exactly once per element,
// including remainder elements handled by the scalar tail.
func WithProjection(f func(float64) float64) Option {
	return options.NoError(func(c *accumulateConfig) {
		c.projX = f
	})
}

// WithProjections applies fx and fy to the elements of the first and second
// input sequences of the two-sequence drivers (AccumulateBivariate,
// AccumulateBinary). Either may be nil to keep that sequence unprojected.
func WithProjections(fx, fy func(float64) float64) Option {
	return options.NoError(func(c *accumulateConfig) {
		c.projX = fx
		c.projY = fy
	})
}
