package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yassinebenameur/vaccumCleaner/internal/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "cleaner",
	Short: "Simulate a cleaner moving on a grid",
	Long: `cleaner places a cleaner on a width x height grid at a starting pose
("x,y,D" with D one of N, E, S, W) and replays a move script made of
A (advance), G (turn left) and D (turn right), one step at a time.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cleaner.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	flags.String(config.KeyWidth, "10", "grid width (1-30)")
	flags.String(config.KeyHeight, "10", "grid height (1-30)")
	flags.StringP(config.KeyPosition, "p", "5,5,N", "starting pose x,y,D")
	flags.StringP(config.KeySequence, "s", "DADADADAA", "move script of A, G and D")
	for _, key := range []string{config.KeyWidth, config.KeyHeight, config.KeyPosition, config.KeySequence} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".cleaner")
	}

	config.Bind(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
