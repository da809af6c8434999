package core

import (
	"time"

	"github.com/spaghettifunk/orbit/engine/containers"
)

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of frame times and a frames-per-second
// counter refreshed once per accumulated second.
type Metrics struct {
	FrameAVGCounter    uint8
	MStimes            *containers.RingQueue[float64]
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		MStimes: containers.NewRingQueue[float64](int(AVG_COUNT)),
	}
}

// Update feeds the duration of the last frame. It returns true whenever a
// new FPS value has just been computed.
func (m *Metrics) Update(frameElapsed time.Duration) bool {
	// Calculate frame ms average
	frameMS := frameElapsed.Seconds() * 1000.0
	m.MStimes.Push(frameMS)
	if m.FrameAVGCounter == AVG_COUNT-1 {
		m.MSavg = 0
		m.MStimes.Each(func(ms float64) {
			m.MSavg += ms
		})
		m.MSavg /= float64(m.MStimes.Len())
	}
	m.FrameAVGCounter++
	m.FrameAVGCounter %= AVG_COUNT

	// Count all Frames.
	m.Frames++

	// Calculate Frames per second.
	m.AccumulatedFrameMS += frameMS
	if m.AccumulatedFrameMS >= 1000 {
		m.FPS = float64(m.Frames)
		m.AccumulatedFrameMS -= 1000
		m.Frames = 0
		return true
	}
	return false
}

func (m *Metrics) FrameTime() float64 {
	return m.MSavg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.FPS, m.MSavg
}
