package ray

import "rainbow-ray.klederson.com/internal/wave"

// Field is the ring of smoothed rays. Its buffers are sized once and
// rewritten in place every frame.
type Field struct {
	points []wave.Point
	inner  []Point
	outer  []Point
	delta  float64 // Degrees between neighbouring rays
}

func newField(resolution int, step float64) *Field {
	f := &Field{
		points: make([]wave.Point, resolution),
		inner:  make([]Point, resolution),
		outer:  make([]Point, resolution),
		delta:  360 / float64(resolution),
	}
	for i := range f.points {
		f.points[i] = wave.NewPoint(0, step)
	}
	return f
}

// Len returns the number of rays.
func (f *Field) Len() int { return len(f.points) }

// Angle returns the fixed angular position of ray i in degrees.
func (f *Field) Angle(i int) float64 { return float64(i) * f.delta }

// Target returns the value ray i is heading for.
func (f *Field) Target(i int) float64 { return f.points[i].Target() }

// Value returns the clamped display value of ray i.
func (f *Field) Value(i int) float64 { return f.points[i].DisplayValue() }

// Segment returns the inner and outer end of ray i as of the last Layout.
func (f *Field) Segment(i int) (inner, outer Point) {
	return f.inner[i], f.outer[i]
}

// Tick advances every ray one step toward its target.
func (f *Field) Tick() {
	for i := range f.points {
		f.points[i].Tick()
	}
}

// Layout recomputes both ends of every ray for the given bounds.
func (f *Field) Layout(b Bounds) {
	for i := range f.points {
		deg := f.Angle(i)
		height := f.points[i].DisplayValue() * b.MaxWidth
		f.inner[i] = PointOnCircle(b.CenterX, b.CenterY, b.MinRadius, deg)
		f.outer[i] = PointOnCircle(b.CenterX, b.CenterY, b.MinRadius+height, deg)
	}
}

// Level returns the mean display value across all rays.
func (f *Field) Level() float64 {
	sum := 0.0
	for i := range f.points {
		sum += f.points[i].DisplayValue()
	}
	return sum / float64(len(f.points))
}
