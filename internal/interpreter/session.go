package interpreter

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Session ties an Environment to the runs started from it. Each Play builds
// a fresh Robot at the validated starting pose.
type Session struct {
	Env    *Environment
	logger *slog.Logger
}

func NewSession(env *Environment, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{Env: env, logger: logger}
}

// Play starts a new run of the current script. It fails with ErrNotReady,
// joined with every field error, while any field is invalid.
func (s *Session) Play(ctx context.Context, delay time.Duration) (*Run, error) {
	if !s.Env.Ready() {
		return nil, fmt.Errorf("%w: %w", ErrNotReady, s.Env.Validate())
	}
	grid, _ := s.Env.Grid()
	start, _ := s.Env.Start()
	seq, _ := s.Env.Sequence()

	robot := NewRobot(grid)
	robot.Reset(start)

	run := NewRun(ctx, robot, seq, delay)
	run.ID = uuid.NewString()
	s.logger.Info("run started", "run_id", run.ID, "grid", grid.String(), "start", start.String(), "sequence", seq.String())
	return run, nil
}

// Trace ranges over run and logs its outcome. It forwards every step to the
// caller and stops when the caller does.
func (s *Session) Trace(run *Run) iter.Seq2[Step, error] {
	runID := run.ID
	return func(yield func(Step, error) bool) {
		last := run.Robot().Pose()
		steps := 0
		for step, err := range run.Steps() {
			if err != nil {
				s.logger.Warn("run halted", "run_id", runID, "step", step.Index, "pose", step.Pose.String(), "kind", KindOf(err), "error", err)
				yield(step, err)
				return
			}
			steps++
			last = step.Pose
			s.logger.Debug("step", "run_id", runID, "index", step.Index, "command", step.Command.String(), "pose", step.Pose.String())
			if !yield(step, nil) {
				s.logger.Info("run abandoned", "run_id", runID, "steps", steps, "pose", last.String())
				return
			}
		}
		grid := run.Robot().Grid()
		s.logger.Info("run finished", "run_id", runID, "steps", steps, "pose", last.String(), "on_grid", grid.Contains(last.X, last.Y))
	}
}
