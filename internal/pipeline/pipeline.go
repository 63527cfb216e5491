package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/video-summarizer/internal/metrics"
)

const (
	StepExtractAudio = "extract_audio"
	StepTranscribe   = "transcribe"
	StepSummarize    = "summarize"
)

// ErrUnusableTranscript is returned in strict mode when transcription
// produced no recognized speech.
var ErrUnusableTranscript = errors.New("transcript has no recognized speech")

// SummarizeVideo runs the pipeline and returns the summary text.
func (p *implPipeline) SummarizeVideo(ctx context.Context, videoPath string) (string, error) {
	res, err := p.Run(ctx, videoPath)
	if err != nil {
		return "", err
	}
	return res.Summary, nil
}

// Run executes the steps in order, each one finishing before the next starts.
func (p *implPipeline) Run(ctx context.Context, videoPath string) (Result, error) {
	startTime := time.Now()
	res := Result{VideoPath: videoPath}

	p.logger.Info(ctx, "Starting video summary: %s", videoPath)

	err := p.run(ctx, &res)
	if err != nil {
		p.metrics.IncrementRuns(metrics.OutcomeError)
		p.logger.Error(ctx, "Video summary failed after %s: %v", time.Since(startTime), err)
		return Result{}, err
	}

	p.metrics.IncrementRuns(metrics.OutcomeSuccess)
	p.logger.Info(ctx, "Video summary completed in %s: %s", time.Since(startTime), videoPath)
	return res, nil
}

func (p *implPipeline) run(ctx context.Context, res *Result) error {
	// Step 1: Extract audio
	err := p.step(StepExtractAudio, func() (err error) {
		res.AudioPath, err = p.services.Extractor.ExtractAudio(ctx, res.VideoPath)
		return err
	})
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}

	// Step 2: Transcribe
	err = p.step(StepTranscribe, func() (err error) {
		res.Transcript, err = p.services.Transcriber.Transcribe(ctx, res.AudioPath)
		return err
	})
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	p.metrics.IncrementTranscripts(res.Transcript.Kind.String())

	if !res.Transcript.OK() {
		if p.opts.StrictTranscript {
			return fmt.Errorf("%w: %s", ErrUnusableTranscript, res.Transcript.Text())
		}
		p.logger.Warn(ctx, "Transcript is %s, summarizing its text anyway", res.Transcript.Kind)
	}

	// Step 3: Summarize
	err = p.step(StepSummarize, func() (err error) {
		res.Summary, err = p.services.Summarizer.Summarize(ctx, res.Transcript.Text())
		return err
	})
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	return nil
}

func (p *implPipeline) step(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	p.metrics.ObserveStepDuration(name, time.Since(start).Seconds())
	return err
}
