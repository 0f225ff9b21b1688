package ray

import "image/color"

// SampleSource yields the latest amplitude buffer, values 0..255.
// A nil buffer means nothing new this frame.
type SampleSource interface {
	Samples() []int
}

// SampleFunc adapts a function to SampleSource.
type SampleFunc func() []int

func (f SampleFunc) Samples() []int { return f() }

// Surface accepts the line draws issued by Render.
type Surface interface {
	DrawLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// Bounds is the drawing area the rays are scaled into.
type Bounds struct {
	CenterX   float64
	CenterY   float64
	MinRadius float64 // Base circle the rays start from
	MaxWidth  float64 // Length of a ray at full amplitude
}

// Bounds lets a fixed Bounds value serve as a Layout.
func (b Bounds) Bounds() Bounds { return b }

// Layout supplies the current drawing bounds. It is read once per frame so
// resizes take effect on the next tick.
type Layout interface {
	Bounds() Bounds
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func() Bounds

func (f LayoutFunc) Bounds() Bounds { return f() }
