package core

import (
	"testing"
	"time"
)

func TestMetricsFPS(t *testing.T) {
	m := NewMetrics()
	reported := 0
	for i := 0; i < 120; i++ {
		if m.Update(DefaultFramePeriod) {
			reported++
		}
	}
	if reported != 1 {
		t.Fatalf("FPS computed %d times over two seconds of frames, expected 1", reported)
	}
	fps, avg := m.Frame()
	if fps < 59 || fps > 61 {
		t.Errorf("fps = %f", fps)
	}
	if avg < 16.6 || avg > 16.7 {
		t.Errorf("average frame time = %f ms", avg)
	}
}

func TestMetricsRollingAverage(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(10 * time.Millisecond)
	}
	if m.FrameTime() < 9.99 || m.FrameTime() > 10.01 {
		t.Errorf("average = %f", m.FrameTime())
	}
	// the window only holds the last AVG_COUNT frames
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(20 * time.Millisecond)
	}
	if m.FrameTime() < 19.99 || m.FrameTime() > 20.01 {
		t.Errorf("average = %f", m.FrameTime())
	}
}
