// Package ray turns a stream of amplitude buffers into a ring of pulsing,
// hue-rotating rays.
//
// An Effect is driven by two calls per animation frame: OnFrameTick, which
// ingests samples, advances smoothing and recomputes geometry, and Render,
// which issues one line per ray to a Surface. Neither call blocks and the
// Effect is not safe for concurrent use.
package ray

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"rainbow-ray.klederson.com/internal/config"
)

// ErrInvalidConfig is wrapped by every construction error.
var ErrInvalidConfig = errors.New("invalid ray configuration")

// Effect orchestrates the ray field, sample ingestion and coloring.
type Effect struct {
	field  *Field
	hue    HueCycler
	source SampleSource
	layout Layout

	color  colorful.Color
	alpha  float64
	stroke float64

	cadence int // Ingest when frameID % cadence == 0
	cycle   int // frameID wraps to 0 once it reaches cycle
	frameID int
	frames  uint64
}

// Option configures an Effect at construction.
type Option func(*Effect)

// WithSource sets where new sample buffers are polled from.
func WithSource(s SampleSource) Option {
	return func(e *Effect) { e.source = s }
}

// WithLayout sets the provider of drawing bounds.
func WithLayout(l Layout) Option {
	return func(e *Effect) { e.layout = l }
}

// WithCadence sets how often samples are ingested: on frames where
// frameID % divisor == 0, with frameID cycling through [0, cycle).
func WithCadence(divisor, cycle int) Option {
	return func(e *Effect) {
		e.cadence = divisor
		e.cycle = cycle
	}
}

// WithColor sets the base color.
func WithColor(c colorful.Color) Option {
	return func(e *Effect) { e.color = c }
}

// WithAlpha sets the ray opacity in [0, 1].
func WithAlpha(a float64) Option {
	return func(e *Effect) { e.alpha = clamp01(a) }
}

// WithStrokeWidth sets the width passed to every DrawLine.
func WithStrokeWidth(w float64) Option {
	return func(e *Effect) { e.stroke = w }
}

// New creates an Effect with resolution rays, each moving at most waveSpeed
// per frame.
func New(resolution int, waveSpeed float64, opts ...Option) (*Effect, error) {
	if resolution < config.MinResolution {
		return nil, fmt.Errorf("%w: resolution %d, must be larger than %d",
			ErrInvalidConfig, resolution, config.MinResolution-1)
	}
	if !(waveSpeed > 0) {
		return nil, fmt.Errorf("%w: wave speed %v, must be positive", ErrInvalidConfig, waveSpeed)
	}

	base, _ := colorful.Hex(config.DefaultColor)
	e := &Effect{
		field:   newField(resolution, waveSpeed),
		color:   base,
		alpha:   config.DefaultAlpha,
		stroke:  config.StrokeWidth,
		cadence: config.DefaultCadence,
		cycle:   config.DefaultCycle,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.cadence < 1 || e.cycle < 1 {
		return nil, fmt.Errorf("%w: cadence %d/%d, both must be at least 1",
			ErrInvalidConfig, e.cadence, e.cycle)
	}

	e.field.Layout(e.bounds())
	return e, nil
}

// OnFrameTick advances the animation by one frame.
func (e *Effect) OnFrameTick() {
	if e.frameID%e.cadence == 0 && e.source != nil {
		if samples := e.source.Samples(); samples != nil {
			e.field.ApplySamples(samples)
		}
	}

	e.field.Tick()
	e.field.Layout(e.bounds())

	e.frameID++
	if e.frameID >= e.cycle {
		e.frameID = 0
	}
	e.frames++
}

// Render draws one line per ray.
func (e *Effect) Render(s Surface) {
	e.hue.Reset(e.color, e.alpha)
	n := e.field.Len()
	for i := 0; i < n; i++ {
		in, out := e.field.Segment(i)
		s.DrawLine(in.X, in.Y, out.X, out.Y, e.stroke, e.hue.Color(i, n))
	}
}

// ApplySamples retargets rays immediately, outside the frame cadence.
func (e *Effect) ApplySamples(samples []int) {
	e.field.ApplySamples(samples)
}

func (e *Effect) bounds() Bounds {
	if e.layout == nil {
		return Bounds{}
	}
	return e.layout.Bounds()
}

// Field exposes the ray state for inspection.
func (e *Effect) Field() *Field { return e.field }

// Resolution returns the number of rays.
func (e *Effect) Resolution() int { return e.field.Len() }

// FrameID returns the position within the ingestion cycle.
func (e *Effect) FrameID() int { return e.frameID }

// Frames returns the number of frames ticked since construction.
func (e *Effect) Frames() uint64 { return e.frames }

// Level returns the mean ray height in [0, 1].
func (e *Effect) Level() float64 { return e.field.Level() }

func (e *Effect) Color() colorful.Color     { return e.color }
func (e *Effect) SetColor(c colorful.Color) { e.color = c }
func (e *Effect) Alpha() float64            { return e.alpha }
func (e *Effect) SetAlpha(a float64)        { e.alpha = clamp01(a) }

// SetSource replaces the sample source; nil stops ingestion.
func (e *Effect) SetSource(s SampleSource) { e.source = s }

// SetLayout replaces the bounds provider.
func (e *Effect) SetLayout(l Layout) { e.layout = l }
