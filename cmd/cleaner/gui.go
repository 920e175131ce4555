package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yassinebenameur/vaccumCleaner/internal/app"
	"github.com/yassinebenameur/vaccumCleaner/internal/config"
	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

var (
	guiScale    int
	guiInterval time.Duration
)

// guiCmd opens the windowed host.
var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Replay the move script in a window",
	Long: `Open a window showing the grid. Space starts (or restarts) the run, q quits.
Only available in builds made with -tags ebiten.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		env := interpreter.NewEnvironment(slog.Default())
		env.SetAll(cfg.Fields())
		if !env.Ready() {
			return fmt.Errorf("%w: %w", interpreter.ErrNotReady, env.Validate())
		}
		err = app.Run(interpreter.NewSession(env, slog.Default()), guiScale, guiInterval)
		if errors.Is(err, app.ErrHeadless) {
			return fmt.Errorf("%w; rebuild with `go build -tags ebiten ./cmd/cleaner`", err)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)

	guiCmd.Flags().IntVar(&guiScale, "scale", 32, "pixels per cell")
	guiCmd.Flags().DurationVar(&guiInterval, "interval", time.Second, "time between two steps")
}
