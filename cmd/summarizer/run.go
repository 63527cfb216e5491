package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/report"
	"github.com/nguyentantai21042004/video-summarizer/internal/stager"
)

var runCmd = &cobra.Command{
	Use:   "run <video>",
	Short: "Summarize a single video file",
	Long: `Stage a local video into the work directory, run the pipeline and print the summary.

Examples:
  summarizer run talk.mp4             # Print the summary
  summarizer run talk.mkv --report    # Also write a report into paths.output`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

var runWriteReport bool

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runWriteReport, "report", false, "Write a markdown (and optional docx) report")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	ctx, _ = logger.NewRequestID(ctx)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read video: %w", err)
	}

	videoPath, err := a.stager.Stage(ctx, stager.Blob{Name: filepath.Base(args[0]), Data: data})
	if err != nil {
		return err
	}

	res, err := a.pipeline.Run(ctx, videoPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Summary:", res.Summary)

	if runWriteReport {
		name := filepath.Base(videoPath)
		_, err := a.reports.Write(ctx, report.Report{
			Title:      strings.TrimSuffix(name, filepath.Ext(name)),
			Transcript: res.Transcript.Text(),
			Summary:    res.Summary,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
