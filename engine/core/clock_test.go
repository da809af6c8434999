package core

import (
	"testing"
	"time"
)

// fakeTime is a manual clock: work advances it explicitly, sleeping
// advances it by the slept amount.
type fakeTime struct {
	now   time.Time
	slept []time.Duration
}

func (f *fakeTime) Now() time.Time { return f.now }

func (f *fakeTime) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
}

func (f *fakeTime) work(d time.Duration) { f.now = f.now.Add(d) }

func TestClockFixedStep(t *testing.T) {
	c := NewClock()
	if c.Elapsed() != 0 {
		t.Fatalf("new clock at %f", c.Elapsed())
	}
	// the measured frame time does not matter in fixed mode
	for _, d := range []time.Duration{time.Millisecond, time.Second, 0} {
		c.Advance(d)
	}
	if c.Elapsed() != 3 {
		t.Errorf("elapsed = %f, expected 3", c.Elapsed())
	}
	c.Reset()
	if c.Elapsed() != 0 {
		t.Errorf("Reset left %f", c.Elapsed())
	}
}

func TestClockDeltaMode(t *testing.T) {
	c := NewClockWithMode(ClockModeDelta, 1)
	c.Advance(DefaultFramePeriod)
	if got := c.Elapsed(); got < 0.999 || got > 1.001 {
		t.Errorf("one nominal frame advanced %f", got)
	}
	c.Advance(2 * DefaultFramePeriod)
	if got := c.Elapsed(); got < 2.999 || got > 3.001 {
		t.Errorf("a double length frame should count twice, elapsed %f", got)
	}
}

func TestParseClockMode(t *testing.T) {
	for in, want := range map[string]ClockMode{"": ClockModeFixed, "fixed": ClockModeFixed, "delta": ClockModeDelta} {
		if got, err := ParseClockMode(in); err != nil || got != want {
			t.Errorf("ParseClockMode(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseClockMode("wall"); err == nil {
		t.Errorf("expected an error for an unknown mode")
	}
}

func TestFramePacerSleepFor(t *testing.T) {
	fp := NewFramePacer(DefaultFramePeriod)
	tests := []struct {
		work time.Duration
		want time.Duration
	}{
		{0, DefaultFramePeriod},
		{5 * time.Millisecond, DefaultFramePeriod - 5*time.Millisecond},
		{DefaultFramePeriod, 0},
		{40 * time.Millisecond, 0},
		{-time.Millisecond, DefaultFramePeriod},
	}
	for _, tc := range tests {
		if got := fp.SleepFor(tc.work); got != tc.want {
			t.Errorf("SleepFor(%s) = %s, expected %s", tc.work, got, tc.want)
		}
	}
}

func TestFramePacerEnd(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	fp := NewFramePacer(DefaultFramePeriod).WithClock(ft.Now, ft.Sleep)

	// a short frame sleeps the rest of the period
	fp.Begin()
	ft.work(4 * time.Millisecond)
	if work := fp.End(); work != 4*time.Millisecond {
		t.Errorf("work = %s", work)
	}
	if len(ft.slept) != 1 || ft.slept[0] != DefaultFramePeriod-4*time.Millisecond {
		t.Errorf("slept %v", ft.slept)
	}
	if fp.LastFrame() != DefaultFramePeriod {
		t.Errorf("frame lasted %s, expected the full period", fp.LastFrame())
	}
	if fp.State() != PacerStateRunning {
		t.Errorf("state after End = %s", fp.State())
	}

	// a long frame does not sleep and is not compensated later
	fp.Begin()
	ft.work(30 * time.Millisecond)
	fp.End()
	if len(ft.slept) != 1 {
		t.Errorf("an overrunning frame slept: %v", ft.slept)
	}
	if fp.LastWork() != 30*time.Millisecond || fp.LastFrame() != 30*time.Millisecond {
		t.Errorf("work/frame = %s/%s", fp.LastWork(), fp.LastFrame())
	}

	fp.Begin()
	ft.work(time.Millisecond)
	fp.End()
	if ft.slept[1] != DefaultFramePeriod-time.Millisecond {
		t.Errorf("next frame should get a normal sleep, got %s", ft.slept[1])
	}
}

func TestFramePacerStateWhileSleeping(t *testing.T) {
	ft := &fakeTime{now: time.Unix(0, 0)}
	var fp *FramePacer
	var during PacerState
	fp = NewFramePacer(0).WithClock(ft.Now, func(d time.Duration) {
		during = fp.State()
		ft.Sleep(d)
	})
	if fp.Target != DefaultFramePeriod {
		t.Errorf("zero target should fall back to the default, got %s", fp.Target)
	}

	fp.Begin()
	fp.End()
	if during != PacerStatePacedWait {
		t.Errorf("state while sleeping = %s", during)
	}
}
