package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/video-summarizer/internal/config"
	"github.com/nguyentantai21042004/video-summarizer/internal/extractor"
	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
	"github.com/nguyentantai21042004/video-summarizer/internal/metrics"
	"github.com/nguyentantai21042004/video-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/video-summarizer/internal/report"
	"github.com/nguyentantai21042004/video-summarizer/internal/stager"
	"github.com/nguyentantai21042004/video-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/video-summarizer/internal/transcriber"
	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

// app holds the wired components shared by every command.
type app struct {
	cfg      *config.Config
	logger   logger.Logger
	metrics  metrics.Metrics
	stager   stager.Stager
	pipeline pipeline.Pipeline
	reports  report.Writer
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath, dotenvPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	m := metrics.NewMetrics()
	exec := executor.New()

	tr, err := newTranscriber(cfg, exec, log)
	if err != nil {
		return nil, err
	}
	sum, err := newSummarizer(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(pipeline.Services{
		Extractor:   extractor.New(cfg.FFmpeg.BinaryPath, exec, log),
		Transcriber: tr,
		Summarizer:  sum,
	}, pipeline.Options{StrictTranscript: cfg.Pipeline.StrictTranscript}, m, log)

	log.Info(ctx, "Configuration loaded (transcriber: %s, summarizer: %s, work dir: %s)",
		cfg.Transcriber.Backend, cfg.Summarizer.Backend, cfg.Paths.WorkDir)

	return &app{
		cfg:      cfg,
		logger:   log,
		metrics:  m,
		stager:   stager.New(cfg.Paths.WorkDir, log),
		pipeline: p,
		reports:  report.New(cfg.Paths.Output, cfg.Report.Docx, log),
	}, nil
}

func newTranscriber(cfg *config.Config, exec executor.Executor, log logger.Logger) (transcriber.Transcriber, error) {
	var engine transcriber.Engine
	switch cfg.Transcriber.Backend {
	case config.TranscriberWhisperCPP:
		engine = transcriber.NewWhisperCPP(transcriber.WhisperCPPConfig{
			BinaryPath: cfg.Transcriber.BinaryPath,
			ModelPath:  cfg.Transcriber.ModelPath,
			Language:   cfg.Transcriber.Language,
			Threads:    cfg.Transcriber.Threads,
		}, exec)
	case config.TranscriberOpenAI:
		engine = transcriber.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.TranscriptionModel, cfg.Transcriber.Language)
	default:
		return nil, fmt.Errorf("unknown transcriber backend %q", cfg.Transcriber.Backend)
	}

	var detector transcriber.LanguageDetector
	if cfg.Transcriber.DetectLanguage {
		detector = transcriber.NewLinguaDetector()
	}
	return transcriber.New(engine, detector, log), nil
}

func newSummarizer(ctx context.Context, cfg *config.Config, log logger.Logger) (summarizer.Summarizer, error) {
	switch cfg.Summarizer.Backend {
	case config.SummarizerGemini:
		return summarizer.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	case config.SummarizerOpenAI:
		return summarizer.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel, log), nil
	default:
		return nil, fmt.Errorf("unknown summarizer backend %q", cfg.Summarizer.Backend)
	}
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
