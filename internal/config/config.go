package config

import "time"

const (
	// Ray field
	DefaultResolution = 256       // Rays around the circle
	DefaultWaveSpeed  = 0.04      // Max change of a ray's value per frame
	MinResolution     = 5         // Fewer rays than this is rejected
	DefaultColor      = "#ef9a9a" // Base color, hue rotates from here
	DefaultAlpha      = 0.65      // Ray opacity [0, 1]
	StrokeWidth       = 1.0       // Ray stroke width in dots on the braille canvas

	// Frame cadence
	DefaultCadence = 2  // Ingest samples when frame % cadence == 0
	DefaultCycle   = 3  // Frame counter wraps after this many frames
	TargetFPS      = 30 // Target frames per second

	// Layout, as fractions of the canvas half-extent
	InnerRadiusFrac = 0.35 // Base circle the rays start from
	RayWidthFrac    = 0.6  // Longest ray length

	// Sample sources
	SampleInterval  = 50 * time.Millisecond // Source publish cadence
	DefaultBands    = 256                   // Values per published buffer
	MockSpringFreq  = 6.0                   // Angular frequency of the demo springs
	MockSpringDamp  = 0.5                   // Damping ratio of the demo springs
	MockShortChance = 0.05                  // Chance the demo publishes a truncated buffer
	WAVWindow       = 2048                  // PCM frames folded into one published buffer

	// App
	LevelHistory = 32   // Sparkline length in the status bar
	AlphaStep    = 0.05 // Alpha change per key press
	HueStep      = 15.0 // Base hue rotation per key press (degrees)
	AppName      = "RAINBOW-RAY"
	AppVersion   = "1.0"
)
