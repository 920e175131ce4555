package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yassinebenameur/vaccumCleaner/internal/config"
	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

// validateCmd checks the inputs without running the script.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the grid, starting pose and move script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		env := interpreter.NewEnvironment(slog.Default())
		env.SetAll(cfg.Fields())

		w := cmd.OutOrStdout()
		printFieldStatus(w, env)
		if !env.Ready() {
			return fmt.Errorf("%w: %d invalid field(s)", interpreter.ErrNotReady, len(env.Errors()))
		}
		grid, _ := env.Grid()
		start, _ := env.Start()
		return interpreter.Render(w, grid, start)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// printFieldStatus writes one line per input with its error kind, if any.
//
//nolint:errcheck // best-effort terminal output
func printFieldStatus(w io.Writer, env *interpreter.Environment) {
	for _, f := range interpreter.Fields {
		err := env.Err(f)
		if err == nil {
			fmt.Fprintf(w, "%-9s ok      %q\n", f, env.Raw(f))
			continue
		}
		fmt.Fprintf(w, "%-9s %-15s %v\n", f, interpreter.KindOf(err), err)
	}
}
