package transcriber

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/video-summarizer/pkg/executor"
)

// WhisperCPPConfig points at a local whisper.cpp CLI and model.
type WhisperCPPConfig struct {
	BinaryPath string
	ModelPath  string
	Language   string
	Threads    int
}

type whisperCPPEngine struct {
	cfg      WhisperCPPConfig
	executor executor.Executor
}

// NewWhisperCPP creates an offline Engine backed by the whisper.cpp CLI.
func NewWhisperCPP(cfg WhisperCPPConfig, exec executor.Executor) Engine {
	return &whisperCPPEngine{
		cfg:      cfg,
		executor: exec,
	}
}

// Recognize runs whisper.cpp and reads the plain transcript from stdout.
func (w *whisperCPPEngine) Recognize(ctx context.Context, audioPath string) (string, error) {
	out, err := w.executor.Execute(ctx, w.cfg.BinaryPath, w.args(audioPath)...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		var cmdErr *executor.CommandError
		if errors.As(err, &cmdErr) {
			return "", &RequestError{Err: err}
		}
		return "", err
	}

	text := cleanWhisperOutput(out)
	if text == "" {
		return "", ErrUnintelligible
	}
	return text, nil
}

// args prints only the recognized text (-np) without timestamps (-nt).
func (w *whisperCPPEngine) args(audioPath string) []string {
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-nt",
		"-np",
	}
	if w.cfg.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(w.cfg.Threads))
	}
	if lang := strings.TrimSpace(w.cfg.Language); lang != "" {
		args = append(args, "-l", lang)
	}
	return args
}

// nonSpeechMarkers are emitted by whisper for segments without speech.
var nonSpeechMarkers = []string{"[BLANK_AUDIO]", "[SILENCE]", "[MUSIC]", "(silence)"}

func cleanWhisperOutput(out string) string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		for _, marker := range nonSpeechMarkers {
			line = strings.TrimSpace(strings.ReplaceAll(line, marker, ""))
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
