package app

import "time"

// Pacer releases one interpreter step per interval from a frame loop that
// ticks much faster.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer returns a Pacer whose first step is due immediately.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = time.Second
	}
	return &Pacer{step: interval, accumulator: interval}
}

// Interval is the time between two released steps.
func (p *Pacer) Interval() time.Duration { return p.step }

// Reset makes the next step due immediately.
func (p *Pacer) Reset() {
	p.accumulator = p.step
	p.last = time.Time{}
}

// Due reports whether a step should run at now.
func (p *Pacer) Due(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
