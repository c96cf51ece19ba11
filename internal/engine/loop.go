package engine

import "time"

// DefaultStepRate is the number of fixed simulation steps per second.
const DefaultStepRate = 60

// Loop is a fixed-timestep accumulator. Each external frame reports the
// wall-clock time since the previous frame; the loop runs the simulation
// step zero or more times, each consuming exactly one frame slice.
type Loop struct {
	frameSize   time.Duration
	accumulated time.Duration
	frames      FrameCounter
}

// NewLoop creates a loop that steps stepsPerSecond times per simulated second.
func NewLoop(stepsPerSecond int) *Loop {
	if stepsPerSecond <= 0 {
		stepsPerSecond = DefaultStepRate
	}
	return &Loop{frameSize: time.Second / time.Duration(stepsPerSecond)}
}

// FrameSize returns the duration of one simulation step.
func (l *Loop) FrameSize() time.Duration {
	return l.frameSize
}

// Advance adds elapsed to the accumulator and calls step until less than one
// frame slice remains. It returns the number of steps taken.
func (l *Loop) Advance(elapsed time.Duration, step func()) int {
	if elapsed < 0 {
		elapsed = 0
	}
	l.frames.Record(elapsed)
	l.accumulated += elapsed

	steps := 0
	for l.accumulated >= l.frameSize {
		step()
		l.accumulated -= l.frameSize
		steps++
	}
	return steps
}

// Pending returns the time accumulated but not yet simulated.
func (l *Loop) Pending() time.Duration {
	return l.accumulated
}

// FrameRate returns the most recently measured external frame rate.
func (l *Loop) FrameRate() int {
	return l.frames.Rate()
}

// FrameCounter measures how many external frames arrive per second.
type FrameCounter struct {
	counted int
	total   time.Duration
	rate    int
}

// Record counts one frame that took elapsed.
func (c *FrameCounter) Record(elapsed time.Duration) {
	c.counted++
	c.total += elapsed
	if c.total > time.Second {
		c.rate = c.counted
		c.counted = 0
		c.total = 0
	}
}

// Rate returns frames counted during the last full second.
func (c *FrameCounter) Rate() int {
	return c.rate
}
