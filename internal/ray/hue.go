package ray

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HueCycler rotates a base color around the hue wheel, one step per segment.
// It keeps the base color's HSV so a render pass converts it only once.
type HueCycler struct {
	h, s, v float64
	alpha   uint8
}

// Reset loads the base color and opacity for the next render pass.
func (c *HueCycler) Reset(base colorful.Color, alpha float64) {
	c.h, c.s, c.v = base.Hsv()
	c.alpha = AlphaByte(alpha)
}

// Hue returns the hue in [0, 360) for segment i of n. Every segment,
// including the first, is shifted by at least one degree.
func (c *HueCycler) Hue(i, n int) float64 {
	h := c.h + max(1, float64(i)/float64(n)*360)
	for h >= 360 {
		h -= 360
	}
	return h
}

// Color returns the rotated color for segment i of n.
func (c *HueCycler) Color(i, n int) color.NRGBA {
	r, g, b := colorful.Hsv(c.Hue(i, n), c.s, c.v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.alpha}
}

// AlphaByte maps an opacity in [0, 1] to floor(255 * alpha).
func AlphaByte(alpha float64) uint8 {
	return uint8(math.Floor(255 * clamp01(alpha)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
