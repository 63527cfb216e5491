package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/report"
	"github.com/nguyentantai21042004/video-summarizer/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize every video dropped into a folder",
	Long: `Watch paths.watch for new videos and write a report for each one into paths.output.

Videos are processed where they land; performance.max_concurrent bounds parallel runs.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(a.cfg.Paths.Watch, 0755); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}

	w, err := watcher.New(a.cfg.Paths.Watch, a.summarizeFile, a.logger, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	a.logger.Info(ctx, "Watching %s, reports go to %s. Press Ctrl+C to stop", a.cfg.Paths.Watch, a.cfg.Paths.Output)

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info(context.Background(), "Watcher stopped")
	return nil
}

// summarizeFile is the watcher handler: one pipeline run plus a report per video.
func (a *app) summarizeFile(ctx context.Context, videoPath string) error {
	ctx, _ = logger.NewRequestID(ctx)

	res, err := a.pipeline.Run(ctx, videoPath)
	if err != nil {
		return err
	}

	name := filepath.Base(videoPath)
	_, err = a.reports.Write(ctx, report.Report{
		Title:      strings.TrimSuffix(name, filepath.Ext(name)),
		Transcript: res.Transcript.Text(),
		Summary:    res.Summary,
		CreatedAt:  time.Now(),
	})
	return err
}
