package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"rainbow-ray.klederson.com/internal/config"
)

// ErrEmptyClip is returned when a WAV file holds no PCM frames.
var ErrEmptyClip = errors.New("wav file has no samples")

// Clip is a decoded WAV file mixed down to mono.
type Clip struct {
	Samples    []int
	SampleRate int
	FullScale  int // Magnitude of a full-scale sample
}

// LoadWAV decodes the WAV file at path.
func LoadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		channels = buf.Format.NumChannels
	}
	if channels < 1 {
		channels = 1
	}
	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyClip)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}
	// 8-bit WAV is unsigned, centred on 128.
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	mono := make([]int, frames)
	for i := range mono {
		sum := 0
		for ch := 0; ch < channels; ch++ {
			sum += buf.Data[i*channels+ch] - offset
		}
		mono[i] = sum / channels
	}

	return &Clip{
		Samples:    mono,
		SampleRate: int(dec.SampleRate),
		FullScale:  1 << (bitDepth - 1),
	}, nil
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// Frame folds window samples starting at pos into bands peak amplitudes in
// 0..255. Reads past the end wrap to the start of the clip.
func (c *Clip) Frame(pos, window, bands int) []int {
	out := make([]int, bands)
	if len(c.Samples) == 0 || bands == 0 || c.FullScale == 0 {
		return out
	}
	per := max(1, window/bands)
	n := len(c.Samples)
	pos %= n
	if pos < 0 {
		pos += n
	}

	for b := range out {
		peak := 0
		start := pos + b*per
		for k := 0; k < per; k++ {
			v := c.Samples[(start+k)%n]
			if v < 0 {
				v = -v
			}
			peak = max(peak, v)
		}
		out[b] = min(255, peak*255/c.FullScale)
	}
	return out
}

// WAV plays a clip in real time, looping, and publishes one frame per
// interval into out.
type WAV struct {
	clip  *Clip
	out   *Latest
	bands int
	pos   int
	log   logrus.FieldLogger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWAV creates a file-backed source publishing bands values per buffer.
func NewWAV(clip *Clip, out *Latest, bands int, log logrus.FieldLogger) *WAV {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &WAV{
		clip:  clip,
		out:   out,
		bands: bands,
		log:   log.WithField("source", "wav"),
	}
}

// Start begins playback on a background goroutine.
func (w *WAV) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	w.log.WithFields(logrus.Fields{
		"samples":    len(w.clip.Samples),
		"sampleRate": w.clip.SampleRate,
		"duration":   w.clip.Duration(),
	}).Info("wav source started")
	go w.loop(ctx, w.done)
	return nil
}

func (w *WAV) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(config.SampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.out.Publish(w.Next())
		}
	}
}

// Next returns the frame at the playback position and advances it by one
// publish interval.
func (w *WAV) Next() []int {
	frame := w.clip.Frame(w.pos, config.WAVWindow, w.bands)
	step := int(float64(w.clip.SampleRate) * config.SampleInterval.Seconds())
	w.pos = (w.pos + max(1, step)) % len(w.clip.Samples)
	return frame
}

// Stop halts playback and waits for the goroutine to exit.
func (w *WAV) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	w.log.Info("wav source stopped")
}
