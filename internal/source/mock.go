package source

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/sirupsen/logrus"

	"rainbow-ray.klederson.com/internal/config"
)

type mockBand struct {
	phase float64
	speed float64
	pos   float64
	vel   float64
}

// Mock synthesises a music-like amplitude signal for demo mode: a few
// travelling sine waves around the ring, a beat pulse and noise, each band
// spring-smoothed so the output moves like a real analyser.
type Mock struct {
	out    *Latest
	bands  []mockBand
	spring harmonica.Spring
	rng    *rand.Rand
	t      float64
	dt     float64
	log    logrus.FieldLogger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewMock creates a demo source publishing n values per buffer into out.
func NewMock(out *Latest, n int, seed int64, log logrus.FieldLogger) *Mock {
	if log == nil {
		log = logrus.StandardLogger()
	}
	fps := int(time.Second / config.SampleInterval)
	rng := rand.New(rand.NewSource(seed))

	bands := make([]mockBand, n)
	for i := range bands {
		bands[i] = mockBand{
			phase: rng.Float64() * 2 * math.Pi,
			speed: 1 + rng.Float64()*3,
		}
	}

	return &Mock{
		out:    out,
		bands:  bands,
		spring: harmonica.NewSpring(harmonica.FPS(fps), config.MockSpringFreq, config.MockSpringDamp),
		rng:    rng,
		dt:     config.SampleInterval.Seconds(),
		log:    log.WithField("source", "mock"),
	}
}

// Start begins publishing on a background goroutine.
func (m *Mock) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	m.log.WithField("bands", len(m.bands)).Info("demo source started")
	go m.loop(ctx, m.done)
	return nil
}

func (m *Mock) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(config.SampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.out.Publish(m.Next())
		}
	}
}

// Next advances the signal by one publish interval and returns the buffer.
// Occasionally the buffer is cut short, like a source that delivered fewer
// values than the ring has rays.
func (m *Mock) Next() []int {
	m.t += m.dt
	beat := math.Pow(math.Max(0, math.Sin(m.t*2*math.Pi*2)), 8)

	n := len(m.bands)
	buf := make([]int, n)
	for i := range m.bands {
		b := &m.bands[i]
		around := 2 * math.Pi * float64(i) / float64(n)

		target := 0.35 +
			0.25*math.Sin(m.t*1.3+around*3) +
			0.15*math.Sin(m.t*b.speed+b.phase) +
			0.3*beat +
			(m.rng.Float64()-0.5)*0.1
		target = math.Min(1, math.Max(0, target))

		b.pos, b.vel = m.spring.Update(b.pos, b.vel, target)
		buf[i] = toByte(b.pos)
	}

	if m.rng.Float64() < config.MockShortChance {
		buf = buf[:m.rng.Intn(n+1)]
	}
	return buf
}

// Stop halts publishing and waits for the goroutine to exit.
func (m *Mock) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	m.log.Info("demo source stopped")
}

// toByte maps [0, 1] onto the 0..255 sample range.
func toByte(v float64) int {
	b := int(v * 255)
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return b
}
