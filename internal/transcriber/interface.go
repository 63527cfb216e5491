package transcriber

import (
	"context"
	"errors"
)

// Transcriber turns an audio file into a Transcript. Recognition failures
// the engine can classify are returned as Transcript kinds, not errors.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Transcript, error)
}

// Engine is a speech recognition backend. It returns ErrUnintelligible when
// no speech was understood and a *RequestError when the backend failed.
type Engine interface {
	Recognize(ctx context.Context, audioPath string) (string, error)
}

// LanguageDetector names the language of a text, if it can tell.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

// ErrUnintelligible is returned by engines that ran but understood no speech.
var ErrUnintelligible = errors.New("speech not understood")

// RequestError wraps a failure of the recognition backend itself.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
