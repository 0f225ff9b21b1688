package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"rainbow-ray.klederson.com/internal/canvas"
	"rainbow-ray.klederson.com/internal/config"
	"rainbow-ray.klederson.com/internal/ray"
	"rainbow-ray.klederson.com/internal/source"
	"rainbow-ray.klederson.com/internal/ui"
)

// Options configures the app. Zero FPS, Bands, Cadence and Cycle fall back
// to config defaults.
type Options struct {
	Resolution int
	WaveSpeed  float64
	Color      colorful.Color
	Alpha      float64
	Cadence    int
	Cycle      int
	FPS        int
	Bands      int
	Clip       *source.Clip // nil runs the demo source
	ClipName   string
	Seed       int64
	Log        logrus.FieldLogger
}

// sampler is a background producer of sample buffers.
type sampler interface {
	Start(ctx context.Context) error
	Stop()
}

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	effect  *ray.Effect
	canvas  *canvas.Braille
	latest  *source.Latest
	levels  *LevelRing
	sampler sampler
	log     logrus.FieldLogger
}

// AppModel is the root Bubble Tea model for the ray display.
type AppModel struct {
	width  int
	height int

	fps        int
	sourceName string

	shared *shared
}

// New creates an AppModel and its effect.
func New(opts Options) (AppModel, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.TargetFPS
	}
	bands := opts.Bands
	if bands <= 0 {
		bands = config.DefaultBands
	}
	if opts.Cadence == 0 {
		opts.Cadence = config.DefaultCadence
	}
	if opts.Cycle == 0 {
		opts.Cycle = config.DefaultCycle
	}

	latest := source.NewLatest()
	board := canvas.New(0, 0)

	effect, err := ray.New(opts.Resolution, opts.WaveSpeed,
		ray.WithSource(latest),
		ray.WithLayout(ray.LayoutFunc(func() ray.Bounds {
			return board.Bounds(config.InnerRadiusFrac, config.RayWidthFrac)
		})),
		ray.WithCadence(opts.Cadence, opts.Cycle),
		ray.WithColor(opts.Color),
		ray.WithAlpha(opts.Alpha),
		ray.WithStrokeWidth(config.StrokeWidth),
	)
	if err != nil {
		return AppModel{}, fmt.Errorf("creating ray effect: %w", err)
	}

	var s sampler
	name := "demo"
	if opts.Clip != nil {
		s = source.NewWAV(opts.Clip, latest, bands, log)
		name = opts.ClipName
	} else {
		s = source.NewMock(latest, bands, opts.Seed, log)
	}

	log.WithFields(logrus.Fields{
		"resolution": opts.Resolution,
		"waveSpeed":  opts.WaveSpeed,
		"cadence":    fmt.Sprintf("%d/%d", opts.Cadence, opts.Cycle),
		"bands":      bands,
		"source":     name,
	}).Info("ray effect ready")

	return AppModel{
		fps:        fps,
		sourceName: name,
		shared: &shared{
			effect:  effect,
			canvas:  board,
			latest:  latest,
			levels:  NewLevelRing(config.LevelHistory),
			sampler: s,
			log:     log,
		},
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd(m.fps)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := m.canvasSize()
		m.shared.canvas.Resize(cols, rows)
		m.shared.log.WithFields(logrus.Fields{
			"width": msg.Width, "height": msg.Height, "cols": cols, "rows": rows,
		}).Debug("resized")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.shared.effect.OnFrameTick()
		m.shared.levels.Push(m.shared.effect.Level())
		return m, tickCmd(m.fps)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.shared.effect
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.StopSources()
		return m, tea.Quit

	case "p", "P", " ":
		if m.shared.latest.Paused() {
			m.shared.latest.Resume()
		} else {
			m.shared.latest.Pause()
		}

	case "+", "=":
		e.SetAlpha(e.Alpha() + config.AlphaStep)

	case "-", "_":
		e.SetAlpha(e.Alpha() - config.AlphaStep)

	case "]":
		e.SetColor(rotateHue(e.Color(), config.HueStep))

	case "[":
		e.SetColor(rotateHue(e.Color(), -config.HueStep))
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing rainbow ray..."
	}

	e := m.shared.effect
	paused := m.shared.latest.Paused()
	cols, _ := m.canvasSize()

	m.shared.canvas.Clear()
	e.Render(m.shared.canvas)

	menuBar := ui.RenderMenuBar(m.width, m.sourceName, paused)
	legend := ui.RenderLegend(cols, fmt.Sprintf("%d rays  level %.2f", e.Resolution(), m.shared.levels.Last()))
	panel := ui.RenderRayPanel(m.width, m.bodyHeight(), m.shared.canvas.String(), legend, paused)

	h, _, _ := e.Color().Hsv()
	statusBar := ui.RenderStatusBar(m.width, ui.Status{
		Paused:     paused,
		Frames:     e.Frames(),
		FrameID:    e.FrameID(),
		Resolution: e.Resolution(),
		Alpha:      e.Alpha(),
		Hue:        h,
		Levels:     m.shared.levels.Values(),
	})

	return ui.ComposeLayout(menuBar, panel, statusBar)
}

// bodyHeight is the panel height between the menu and status bars.
func (m AppModel) bodyHeight() int {
	return max(5, m.height-2)
}

// canvasSize is the panel interior minus the legend line.
func (m AppModel) canvasSize() (cols, rows int) {
	return max(1, m.width-2), max(1, m.bodyHeight()-3)
}

// StartSources starts the sample producer. Must be called before p.Run().
func (m *AppModel) StartSources(ctx context.Context) error {
	if err := m.shared.sampler.Start(ctx); err != nil {
		return fmt.Errorf("starting %s source: %w", m.sourceName, err)
	}
	return nil
}

// StopSources stops the sample producer.
func (m AppModel) StopSources() {
	m.shared.sampler.Stop()
}

func rotateHue(c colorful.Color, deg float64) colorful.Color {
	h, s, v := c.Hsv()
	return colorful.Hsv(ray.NormalizeDegrees(h+deg), s, v)
}

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
