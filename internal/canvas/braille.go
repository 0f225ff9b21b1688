// Package canvas rasterises ray lines onto a terminal grid of Braille cells.
package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rainbow-ray.klederson.com/internal/ray"
)

// Braille dot positions (col, row) -> bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

const brailleBase = 0x2800

// Braille is a ray.Surface with 2x4 dots per terminal cell. Each cell keeps
// the color of the last line that touched it.
type Braille struct {
	cols, rows int
	dots       []uint8
	colors     []color.NRGBA
}

// New creates a canvas of cols x rows terminal cells.
func New(cols, rows int) *Braille {
	b := &Braille{}
	b.Resize(cols, rows)
	return b
}

// Resize changes the cell dimensions and clears the canvas. Buffers are
// reused when the size is unchanged.
func (b *Braille) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if cols == b.cols && rows == b.rows {
		b.Clear()
		return
	}
	b.cols, b.rows = cols, rows
	b.dots = make([]uint8, cols*rows)
	b.colors = make([]color.NRGBA, cols*rows)
}

// Clear blanks every cell.
func (b *Braille) Clear() {
	clear(b.dots)
	clear(b.colors)
}

// Size returns the cell dimensions.
func (b *Braille) Size() (cols, rows int) { return b.cols, b.rows }

// DotSize returns the dot dimensions.
func (b *Braille) DotSize() (w, h int) { return b.cols * 2, b.rows * 4 }

// Bounds centres a ray layout on the canvas. The base circle and the longest
// ray are given as fractions of half the shorter dot dimension.
func (b *Braille) Bounds(innerFrac, widthFrac float64) ray.Bounds {
	w, h := b.DotSize()
	half := float64(min(w, h)) / 2
	return ray.Bounds{
		CenterX:   float64(w) / 2,
		CenterY:   float64(h) / 2,
		MinRadius: half * innerFrac,
		MaxWidth:  half * widthFrac,
	}
}

// Set lights the dot at (x, y). Dots outside the canvas are dropped.
func (b *Braille) Set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= b.cols*2 || y >= b.rows*4 {
		return
	}
	idx := (y/4)*b.cols + x/2
	b.dots[idx] |= 1 << brailleBits[x%2][y%4]
	b.colors[idx] = c
}

// Cell returns the glyph and color of a terminal cell.
func (b *Braille) Cell(col, row int) (rune, color.NRGBA) {
	idx := row*b.cols + col
	return rune(brailleBase + int(b.dots[idx])), b.colors[idx]
}

// DrawLine rasterises a line with Bresenham's algorithm. Width is in dots
// and is applied across the line's dominant axis.
func (b *Braille) DrawLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	ax, ay := int(math.Round(x0)), int(math.Round(y0))
	bx, by := int(math.Round(x1)), int(math.Round(y1))

	thick := max(1, int(math.Round(width)))
	lo := -(thick - 1) / 2
	hi := thick / 2

	dx := abs(bx - ax)
	dy := -abs(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	horizontal := dx >= -dy

	d := dx + dy
	for {
		for o := lo; o <= hi; o++ {
			if horizontal {
				b.Set(ax, ay+o, c)
			} else {
				b.Set(ax+o, ay, c)
			}
		}
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * d
		if e2 >= dy {
			d += dy
			ax += sx
		}
		if e2 <= dx {
			d += dx
			ay += sy
		}
	}
}

// String renders the canvas as rows of colored Braille glyphs. Runs of the
// same color share one style.
func (b *Braille) String() string {
	rows := make([]string, b.rows)
	var line, run strings.Builder
	for row := 0; row < b.rows; row++ {
		line.Reset()
		run.Reset()
		var runColor color.NRGBA
		for col := 0; col < b.cols; col++ {
			glyph, c := b.Cell(col, row)
			if glyph == brailleBase {
				glyph = ' '
				c = color.NRGBA{}
			}
			if c != runColor && run.Len() > 0 {
				line.WriteString(paint(runColor, run.String()))
				run.Reset()
			}
			runColor = c
			run.WriteRune(glyph)
		}
		if run.Len() > 0 {
			line.WriteString(paint(runColor, run.String()))
		}
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

func paint(c color.NRGBA, s string) string {
	if c.A == 0 {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c))).Render(s)
}

// Hex flattens c onto a black background and formats it as #rrggbb.
func Hex(c color.NRGBA) string {
	a := uint32(c.A)
	return fmt.Sprintf("#%02x%02x%02x",
		uint32(c.R)*a/255, uint32(c.G)*a/255, uint32(c.B)*a/255)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
