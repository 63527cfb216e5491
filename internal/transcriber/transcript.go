package transcriber

// Kind tags how a transcription attempt ended.
type Kind int

const (
	// KindRecognized means Speech holds recognized text.
	KindRecognized Kind = iota
	// KindUnintelligible means the engine ran but understood no speech.
	KindUnintelligible
	// KindBackendFailure means the recognition backend could not be reached or failed.
	KindBackendFailure
)

const (
	unintelligibleText   = "recognizer could not understand audio"
	backendFailurePrefix = "recognizer request failed; "
)

func (k Kind) String() string {
	switch k {
	case KindRecognized:
		return "recognized"
	case KindUnintelligible:
		return "unintelligible"
	case KindBackendFailure:
		return "backend_failure"
	default:
		return "unknown"
	}
}

// Transcript is the outcome of one transcription.
type Transcript struct {
	Kind   Kind
	Speech string
	Detail string
}

func Recognized(speech string) Transcript {
	return Transcript{Kind: KindRecognized, Speech: speech}
}

func Unintelligible() Transcript {
	return Transcript{Kind: KindUnintelligible}
}

func BackendFailure(detail string) Transcript {
	return Transcript{Kind: KindBackendFailure, Detail: detail}
}

// OK reports whether the transcript carries recognized speech.
func (t Transcript) OK() bool {
	return t.Kind == KindRecognized
}

// Text renders the transcript as plain text. Failure kinds render as
// fixed descriptive strings so they can still be fed to a summarizer.
func (t Transcript) Text() string {
	switch t.Kind {
	case KindUnintelligible:
		return unintelligibleText
	case KindBackendFailure:
		return backendFailurePrefix + t.Detail
	default:
		return t.Speech
	}
}
