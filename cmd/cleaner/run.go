package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yassinebenameur/vaccumCleaner/internal/config"
	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
	"github.com/yassinebenameur/vaccumCleaner/internal/output"
)

// runCmd replays the move script and animates each step.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay the move script on the grid",
	Long: `Validate the grid, the starting pose and the move script, then replay the
script one command at a time. With --format text every step is drawn as a
board; json and yaml print the full trace once the run ends.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		return runSimulation(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration(config.KeyDelay, time.Second, "pause between two steps")
	runCmd.Flags().StringP(config.KeyFormat, "f", "text", "Output format: text, json, yaml")
	runCmd.Flags().BoolP(config.KeyInteractive, "i", false, "edit the inputs in an interactive form first")
	for _, key := range []string{config.KeyDelay, config.KeyFormat, config.KeyInteractive} {
		_ = viper.BindPFlag(key, runCmd.Flags().Lookup(key))
	}
}

// runSimulation implements the run command.
func runSimulation(ctx context.Context, w io.Writer, cfg *config.Config) error {
	env := interpreter.NewEnvironment(slog.Default())
	env.SetAll(cfg.Fields())

	if cfg.Interactive {
		if err := promptFields(ctx, env); err != nil {
			return fmt.Errorf("form aborted: %w", err)
		}
	}

	formatter, err := output.New(cfg.Format, w)
	if err != nil {
		return err
	}

	session := interpreter.NewSession(env, slog.Default())
	run, err := session.Play(ctx, cfg.Delay)
	if err != nil {
		printFieldStatus(w, env)
		return err
	}

	seq, _ := env.Sequence()
	trace := output.NewTrace(run, seq)
	grid := run.Robot().Grid()
	animate := cfg.Format == "text"

	if animate {
		if err := interpreter.RenderFrame(w, grid, trace.Start); err != nil {
			return err
		}
		if err := sleep(ctx, cfg.Delay); err != nil {
			return err
		}
	}

	var haltErr error
	for step, stepErr := range session.Trace(run) {
		trace.Record(grid, step, stepErr)
		if stepErr != nil {
			haltErr = stepErr
			break
		}
		if animate {
			if err := interpreter.RenderFrame(w, grid, step.Pose); err != nil {
				return err
			}
		}
	}

	if err := formatter.Format(trace); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	if haltErr != nil {
		return fmt.Errorf("run %s halted at step %d: %w", trace.RunID, trace.Halt.Step, haltErr)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
