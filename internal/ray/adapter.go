package ray

// SampleScale maps a 0..255 sample onto a ray target.
const SampleScale = 256.0

// ApplySamples retargets the first min(len(samples), Len()) rays. Rays past
// the end of a short buffer keep their previous target.
func (f *Field) ApplySamples(samples []int) {
	n := min(len(samples), len(f.points))
	for i := 0; i < n; i++ {
		f.points[i].SetTarget(float64(samples[i]) / SampleScale)
	}
}
