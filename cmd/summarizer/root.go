package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "summarizer",
	Short: "Summarize videos: extract audio, transcribe, ask a language model",
	Long: `summarizer extracts the audio track of a video with ffmpeg, transcribes it,
and asks a hosted language model (Gemini by default) for a summary.

It can serve a small upload page, summarize a single file, or watch a folder.`,
	SilenceUsage: true,
}

// Flags
var (
	configPath string
	dotenvPath string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&dotenvPath, "env", ".env", "Path to a .env file with API keys")
}
