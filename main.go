package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rainbow-ray.klederson.com/internal/app"
	"rainbow-ray.klederson.com/internal/config"
	"rainbow-ray.klederson.com/internal/source"
)

var (
	flagResolution int
	flagSpeed      float64
	flagColor      string
	flagAlpha      float64
	flagCadence    int
	flagCycle      int
	flagFPS        int
	flagBands      int
	flagWAV        string
	flagLog        string
	flagSeed       int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rainbow-ray",
		Short: "Rainbow Ray - pulsing hue-rotating ray ring for the terminal",
		Long: `Rainbow Ray draws a ring of radial rays whose lengths follow an amplitude
signal and whose colors sweep around the hue wheel.

Without --wav a synthetic demo signal is used. With --wav the file is
played (silently) in real time, looping, and its waveform drives the rays.`,
		RunE:         run,
		SilenceUsage: true,
	}

	f := rootCmd.Flags()
	f.IntVar(&flagResolution, "resolution", config.DefaultResolution, "Number of rays (must be larger than 4)")
	f.Float64Var(&flagSpeed, "speed", config.DefaultWaveSpeed, "Max change of a ray per frame, as a fraction of full length")
	f.StringVar(&flagColor, "color", config.DefaultColor, "Base color the hue rotation starts from (#rrggbb)")
	f.Float64Var(&flagAlpha, "alpha", config.DefaultAlpha, "Ray opacity from 0 to 1")
	f.IntVar(&flagCadence, "cadence", config.DefaultCadence, "Ingest samples on frames where frame % cadence == 0")
	f.IntVar(&flagCycle, "cycle", config.DefaultCycle, "Frame counter cycle length")
	f.IntVar(&flagFPS, "fps", config.TargetFPS, "Frames per second")
	f.IntVar(&flagBands, "bands", config.DefaultBands, "Values per sample buffer")
	f.StringVar(&flagWAV, "wav", "", "WAV file to drive the rays")
	f.StringVar(&flagLog, "log", "", "Write debug logs to this file")
	f.Int64Var(&flagSeed, "seed", 0, "Demo signal seed (0 picks one from the clock)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := colorful.Hex(flagColor)
	if err != nil {
		return fmt.Errorf("invalid --color %q: %w", flagColor, err)
	}

	opts := app.Options{
		Resolution: flagResolution,
		WaveSpeed:  flagSpeed,
		Color:      base,
		Alpha:      flagAlpha,
		Cadence:    flagCadence,
		Cycle:      flagCycle,
		FPS:        flagFPS,
		Bands:      flagBands,
		Seed:       flagSeed,
		Log:        log,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if flagWAV != "" {
		clip, err := source.LoadWAV(flagWAV)
		if err != nil {
			return err
		}
		opts.Clip = clip
		opts.ClipName = filepath.Base(flagWAV)
	}

	model, err := app.New(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := model.StartSources(ctx); err != nil {
		return err
	}
	defer model.StopSources()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(flagFPS),
	)

	_, err = p.Run()
	if err != nil {
		log.WithError(err).Error("program exited")
	}
	return err
}

func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}
