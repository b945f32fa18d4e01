package renderer

import "time"

// RenderStats contains aggregate statistics about a completed render
type RenderStats struct {
	TotalRays       int64         // Every ray traced, including bounce rays
	Elapsed         time.Duration // Wall-clock render time
	Width           int
	Height          int
	SamplesPerPixel int
}

// MraysPerSec returns the throughput in millions of rays per second
func (s RenderStats) MraysPerSec() float64 {
	secs := s.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalRays) / secs / 1e6
}
