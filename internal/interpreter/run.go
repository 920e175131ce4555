package interpreter

import (
	"context"
	"iter"
	"time"
)

// Step is the observable outcome of one executed command. Index is 1-based.
type Step struct {
	Index   int     `json:"index" yaml:"index"`
	Command Command `json:"command" yaml:"command"`
	Pose    Pose    `json:"pose" yaml:"pose"`
}

// Run drives a Robot through a Sequence one command at a time. A Run can be
// ranged over once; it mutates the robot it was given.
type Run struct {
	// ID identifies the run in logs and traces. Session.Play sets it.
	ID string

	ctx      context.Context
	robot    *Robot
	seq      Sequence
	delay    time.Duration
	consumed bool
}

// NewRun prepares a run of seq on r, pausing delay between steps. The robot
// must already be reset to its starting pose.
func NewRun(ctx context.Context, r *Robot, seq Sequence, delay time.Duration) *Run {
	return &Run{
		ctx:   ctx,
		robot: r,
		seq:   append(Sequence(nil), seq...),
		delay: delay,
	}
}

// Len is the number of commands the run will execute at most.
func (r *Run) Len() int { return len(r.seq) }

// Robot returns the engine driven by the run.
func (r *Run) Robot() *Robot { return r.robot }

// Steps applies each command in turn and yields the resulting step. Between
// two steps it waits for the run's delay. An illegal command yields an
// *IllegalMoveError carrying the last valid pose and ends the run; so does a
// cancelled context, which yields the context's error together with the last
// executed step. Stopping the range
// early abandons the rest of the run.
func (r *Run) Steps() iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		if r.consumed {
			yield(Step{}, ErrRunConsumed)
			return
		}
		r.consumed = true

		for i, c := range r.seq {
			if i > 0 && !r.wait() {
				yield(Step{Index: i, Command: r.seq[i-1], Pose: r.robot.Pose()}, r.ctx.Err())
				return
			}
			step := Step{Index: i + 1, Command: c}
			if err := r.robot.Apply(c); err != nil {
				ime := err.(*IllegalMoveError)
				ime.Step = step.Index
				step.Pose = r.robot.Pose()
				yield(step, ime)
				return
			}
			step.Pose = r.robot.Pose()
			if !yield(step, nil) {
				return
			}
		}
	}
}

func (r *Run) wait() bool {
	if r.delay <= 0 {
		return r.ctx.Err() == nil
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-r.ctx.Done():
		return false
	}
}
