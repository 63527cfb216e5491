package transcriber

import (
	"context"
	"errors"
	"fmt"
)

// Transcribe runs the engine and classifies its outcome. Errors other than
// ErrUnintelligible and *RequestError are returned unchanged in meaning.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (Transcript, error) {
	t.logger.Info(ctx, "Transcribing: %s", audioPath)

	var result Transcript
	speech, err := t.engine.Recognize(ctx, audioPath)

	var reqErr *RequestError
	switch {
	case err == nil:
		result = Recognized(speech)
	case errors.Is(err, ErrUnintelligible):
		result = Unintelligible()
	case errors.As(err, &reqErr):
		result = BackendFailure(reqErr.Error())
	default:
		return Transcript{}, fmt.Errorf("recognize %s: %w", audioPath, err)
	}

	t.logger.Info(ctx, "Transcript (%s): %s", result.Kind, result.Text())

	if result.OK() && t.detector != nil {
		if lang, ok := t.detector.Detect(result.Speech); ok {
			t.logger.Info(ctx, "Detected transcript language: %s", lang)
		}
	}

	return result, nil
}
