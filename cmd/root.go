package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tubeseo/pkg/config"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "tubeseo",
	Short: "Upload videos to YouTube with AI-generated SEO metadata",
	Long: `tubeseo serves a small web app that links a Google account, generates
SEO metadata for a video and uploads it to YouTube, optionally scheduled.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to config.yaml")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger()
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
