package core

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/orbit/engine/math"
)

// DefaultFramePeriod is the wall-clock budget of a single frame (~60 fps).
const DefaultFramePeriod time.Duration = 16666666 * time.Nanosecond

// DefaultClockStep is the logical time added to the clock on every frame.
const DefaultClockStep float32 = 1.0

type ClockMode string

const (
	// Elapsed grows by a constant step per frame, whatever the frame took.
	ClockModeFixed ClockMode = "fixed"
	// Elapsed grows by the measured frame time, scaled so that a frame
	// hitting DefaultFramePeriod advances by exactly one step.
	ClockModeDelta ClockMode = "delta"
)

func ParseClockMode(mode string) (ClockMode, error) {
	switch ClockMode(mode) {
	case "", ClockModeFixed:
		return ClockModeFixed, nil
	case ClockModeDelta:
		return ClockModeDelta, nil
	default:
		return ClockModeFixed, fmt.Errorf("unknown clock mode %q", mode)
	}
}

// Clock holds the logical simulation time. It is frame based: unless it is
// in delta mode, Advance adds the same step regardless of how long the
// frame actually lasted.
type Clock struct {
	elapsed float32
	step    float32
	mode    ClockMode
}

func NewClock() *Clock {
	return &Clock{
		step: DefaultClockStep,
		mode: ClockModeFixed,
	}
}

func NewClockWithMode(mode ClockMode, step float32) *Clock {
	if step <= 0 {
		step = DefaultClockStep
	}
	return &Clock{
		step: step,
		mode: mode,
	}
}

func (c *Clock) Elapsed() float32 {
	return c.elapsed
}

func (c *Clock) Step() float32 {
	return c.step
}

func (c *Clock) Mode() ClockMode {
	return c.mode
}

// Advance moves the clock forward by one frame. frameTime is only used in
// delta mode.
func (c *Clock) Advance(frameTime time.Duration) {
	if c.mode == ClockModeDelta {
		c.elapsed += c.step * float32(frameTime.Seconds()/DefaultFramePeriod.Seconds())
		return
	}
	c.elapsed += c.step
}

// Reset sets the elapsed time back to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
}

type PacerState uint8

const (
	PacerStateRunning PacerState = iota
	PacerStatePacedWait
)

func (s PacerState) String() string {
	if s == PacerStatePacedWait {
		return "paced-wait"
	}
	return "running"
}

// FramePacer holds every frame to a fixed wall-clock period by sleeping
// away whatever the frame's work left of it. Frames running long are not
// compensated: there is no catch-up and no frame skipping.
type FramePacer struct {
	Target time.Duration

	now   func() time.Time
	sleep func(time.Duration)

	state      PacerState
	frameStart time.Time
	lastWork   time.Duration
	lastFrame  time.Duration
}

func NewFramePacer(target time.Duration) *FramePacer {
	if target <= 0 {
		target = DefaultFramePeriod
	}
	return &FramePacer{
		Target: target,
		now:    time.Now,
		sleep:  time.Sleep,
		state:  PacerStateRunning,
	}
}

// WithClock replaces the time source and the sleep function, mainly for tests.
func (fp *FramePacer) WithClock(now func() time.Time, sleep func(time.Duration)) *FramePacer {
	fp.now = now
	fp.sleep = sleep
	return fp
}

// Begin records the start of the frame's work.
func (fp *FramePacer) Begin() {
	fp.state = PacerStateRunning
	fp.frameStart = fp.now()
}

// SleepFor returns how long a frame whose work took `work` has to wait to
// fill the target period. Zero when the work already used it up, and never
// more than one period.
func (fp *FramePacer) SleepFor(work time.Duration) time.Duration {
	return math.Clamp(fp.Target-work, 0, fp.Target)
}

// End measures the work done since Begin, sleeps the remainder of the
// period if any, and returns the measured work duration.
func (fp *FramePacer) End() time.Duration {
	work := fp.now().Sub(fp.frameStart)
	fp.lastWork = work

	remaining := fp.SleepFor(work)
	if remaining > 0 {
		fp.state = PacerStatePacedWait
		fp.sleep(remaining)
	}
	fp.lastFrame = work + remaining
	fp.state = PacerStateRunning
	return work
}

func (fp *FramePacer) State() PacerState {
	return fp.state
}

// LastWork is the work duration measured by the previous End.
func (fp *FramePacer) LastWork() time.Duration {
	return fp.lastWork
}

// LastFrame is the full period of the previous frame, sleep included.
func (fp *FramePacer) LastFrame() time.Duration {
	return fp.lastFrame
}
