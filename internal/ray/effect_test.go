package ray

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

type line struct {
	x0, y0, x1, y1, width float64
	c                     color.NRGBA
}

type recorder struct {
	lines []line
}

func (r *recorder) DrawLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.lines = append(r.lines, line{x0, y0, x1, y1, width, c})
}

func mustEffect(t *testing.T, resolution int, speed float64, opts ...Option) *Effect {
	t.Helper()
	e, err := New(resolution, speed, opts...)
	if err != nil {
		t.Fatalf("New(%d, %v): %v", resolution, speed, err)
	}
	return e
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name       string
		resolution int
		speed      float64
		opts       []Option
	}{
		{"zero resolution", 0, 0.1, nil},
		{"resolution four", 4, 0.1, nil},
		{"negative resolution", -3, 0.1, nil},
		{"zero speed", 8, 0, nil},
		{"negative speed", 8, -0.2, nil},
		{"nan speed", 8, math.NaN(), nil},
		{"zero cadence", 8, 0.1, []Option{WithCadence(0, 3)}},
		{"zero cycle", 8, 0.1, []Option{WithCadence(2, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.resolution, tt.speed, tt.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if e != nil {
				t.Fatal("expected nil effect on error")
			}
		})
	}
}

func TestNewAcceptsResolutionFive(t *testing.T) {
	e := mustEffect(t, 5, 0.1)
	if e.Resolution() != 5 {
		t.Fatalf("Resolution() = %d, want 5", e.Resolution())
	}
}

func TestFirstFrameScenario(t *testing.T) {
	e := mustEffect(t, 8, 0.1, WithSource(SampleFunc(func() []int {
		return []int{256, 0, 128}
	})))

	e.OnFrameTick()

	f := e.Field()
	want := []struct{ target, value float64 }{
		{1.0, 0.1},
		{0.0, 0.0},
		{0.5, 0.1},
		{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0},
	}
	for i, w := range want {
		if f.Target(i) != w.target {
			t.Fatalf("point %d target = %v, want %v", i, f.Target(i), w.target)
		}
		if math.Abs(f.Value(i)-w.value) > 1e-12 {
			t.Fatalf("point %d value = %v, want %v", i, f.Value(i), w.value)
		}
	}
}

func TestShortBufferLeavesRemainingTargets(t *testing.T) {
	e := mustEffect(t, 6, 0.5)
	e.ApplySamples([]int{128, 128, 128, 128, 128, 128})
	e.ApplySamples([]int{64, 32})

	f := e.Field()
	wantTargets := []float64{0.25, 0.125, 0.5, 0.5, 0.5, 0.5}
	for i, w := range wantTargets {
		if f.Target(i) != w {
			t.Fatalf("point %d target = %v, want %v", i, f.Target(i), w)
		}
	}
}

func TestLongBufferIsTruncated(t *testing.T) {
	e := mustEffect(t, 5, 0.1)
	samples := make([]int, 50)
	for i := range samples {
		samples[i] = 192
	}
	e.ApplySamples(samples)
	for i := 0; i < 5; i++ {
		if e.Field().Target(i) != 0.75 {
			t.Fatalf("point %d target = %v, want 0.75", i, e.Field().Target(i))
		}
	}
}

func TestAbsentSamplesChangeNothing(t *testing.T) {
	var buf []int
	e := mustEffect(t, 5, 0.1, WithCadence(1, 1), WithSource(SampleFunc(func() []int {
		return buf
	})))
	e.ApplySamples([]int{100, 100, 100, 100, 100})

	e.OnFrameTick()
	buf = []int{}
	e.OnFrameTick()

	for i := 0; i < 5; i++ {
		if e.Field().Target(i) != 100/SampleScale {
			t.Fatalf("point %d target changed to %v", i, e.Field().Target(i))
		}
	}
}

func TestIngestionCadence(t *testing.T) {
	tests := []struct {
		name      string
		opts      []Option
		frames    int
		wantPolls int
	}{
		{"default every other frame of three", nil, 6, 4},
		{"every frame", []Option{WithCadence(1, 1)}, 6, 6},
		{"once per cycle", []Option{WithCadence(3, 3)}, 6, 2},
		{"divisor larger than cycle", []Option{WithCadence(5, 2)}, 6, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			polls := 0
			opts := append([]Option{WithSource(SampleFunc(func() []int {
				polls++
				return nil
			}))}, tt.opts...)
			e := mustEffect(t, 8, 0.1, opts...)
			for i := 0; i < tt.frames; i++ {
				e.OnFrameTick()
			}
			if polls != tt.wantPolls {
				t.Fatalf("polled %d times, want %d", polls, tt.wantPolls)
			}
			if e.Frames() != uint64(tt.frames) {
				t.Fatalf("Frames() = %d, want %d", e.Frames(), tt.frames)
			}
		})
	}
}

func TestFrameIDWraps(t *testing.T) {
	e := mustEffect(t, 8, 0.1)
	want := []int{1, 2, 0, 1, 2, 0}
	for i, w := range want {
		e.OnFrameTick()
		if e.FrameID() != w {
			t.Fatalf("frame %d: FrameID() = %d, want %d", i, e.FrameID(), w)
		}
	}
}

func TestTicksEveryFrameRegardlessOfCadence(t *testing.T) {
	e := mustEffect(t, 8, 0.25, WithCadence(100, 100))
	e.ApplySamples([]int{256})
	for i := 0; i < 3; i++ {
		e.OnFrameTick()
	}
	if got := e.Field().Value(0); got != 0.75 {
		t.Fatalf("value after 3 frames = %v, want 0.75", got)
	}
}

func TestLayoutIsReadEveryFrame(t *testing.T) {
	b := Bounds{CenterX: 50, CenterY: 50, MinRadius: 10, MaxWidth: 20}
	calls := 0
	e := mustEffect(t, 8, 1, WithLayout(LayoutFunc(func() Bounds {
		calls++
		return b
	})))
	e.ApplySamples([]int{128})
	e.OnFrameTick()

	in, out := e.Field().Segment(0)
	if !near(in, Point{60, 50}) || !near(out, Point{70, 50}) {
		t.Fatalf("segment 0 = %+v -> %+v", in, out)
	}

	b.CenterX = 0
	b.MaxWidth = 40
	e.OnFrameTick()
	in, out = e.Field().Segment(0)
	if !near(in, Point{10, 50}) || !near(out, Point{30, 50}) {
		t.Fatalf("after resize segment 0 = %+v -> %+v", in, out)
	}
	if calls != 3 {
		t.Fatalf("layout read %d times, want 3", calls)
	}
}

func TestSegmentsAreEvenlySpaced(t *testing.T) {
	e := mustEffect(t, 8, 1, WithLayout(Bounds{MinRadius: 1}))
	e.OnFrameTick()
	for i := 0; i < 8; i++ {
		in, _ := e.Field().Segment(i)
		want := PointOnCircle(0, 0, 1, float64(i)*45)
		if !near(in, want) {
			t.Fatalf("segment %d inner = %+v, want %+v", i, in, want)
		}
	}
}

func TestDegenerateBoundsDoNotPanic(t *testing.T) {
	e := mustEffect(t, 16, 0.5)
	e.ApplySamples([]int{255, 255, 255})
	e.OnFrameTick()
	rec := &recorder{}
	e.Render(rec)
	for _, l := range rec.lines {
		if l.x0 != 0 || l.y0 != 0 || l.x1 != 0 || l.y1 != 0 {
			t.Fatalf("expected collapsed geometry, got %+v", l)
		}
	}
}

func TestRenderDrawsOneLinePerRay(t *testing.T) {
	base := colorful.Color{R: 1, G: 0, B: 0}
	e := mustEffect(t, 12, 0.1,
		WithLayout(Bounds{CenterX: 20, CenterY: 20, MinRadius: 5, MaxWidth: 10}),
		WithColor(base),
		WithAlpha(0.65),
		WithStrokeWidth(2),
	)
	e.ApplySamples([]int{256, 256, 256})
	e.OnFrameTick()

	rec := &recorder{}
	e.Render(rec)
	if len(rec.lines) != 12 {
		t.Fatalf("drew %d lines, want 12", len(rec.lines))
	}

	var hc HueCycler
	hc.Reset(base, 0.65)
	for i, l := range rec.lines {
		if l.width != 2 {
			t.Fatalf("line %d width = %v", i, l.width)
		}
		if l.c.A != 165 {
			t.Fatalf("line %d alpha = %d, want 165", i, l.c.A)
		}
		if l.c != hc.Color(i, 12) {
			t.Fatalf("line %d color = %v, want %v", i, l.c, hc.Color(i, 12))
		}
		in, out := e.Field().Segment(i)
		if l.x0 != in.X || l.y0 != in.Y || l.x1 != out.X || l.y1 != out.Y {
			t.Fatalf("line %d endpoints do not match segment", i)
		}
	}

	if rec.lines[0].c == rec.lines[1].c {
		t.Fatal("expected neighbouring rays to differ in color")
	}
}

func TestSetAlphaClamps(t *testing.T) {
	e := mustEffect(t, 8, 0.1)
	e.SetAlpha(1.5)
	if e.Alpha() != 1 {
		t.Fatalf("Alpha() = %v, want 1", e.Alpha())
	}
	e.SetAlpha(-1)
	if e.Alpha() != 0 {
		t.Fatalf("Alpha() = %v, want 0", e.Alpha())
	}
}

func TestLevelAveragesDisplayValues(t *testing.T) {
	e := mustEffect(t, 8, 1)
	e.ApplySamples([]int{256, 256, 256, 256})
	e.OnFrameTick()
	if got := e.Level(); got != 0.5 {
		t.Fatalf("Level() = %v, want 0.5", got)
	}
}
