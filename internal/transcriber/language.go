package transcriber

import (
	"github.com/pemistahl/lingua-go"
)

type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector over every language lingua knows.
// Building it loads language models, so create one per process.
func NewLinguaDetector() LanguageDetector {
	return &linguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().FromAllLanguages().Build(),
	}
}

func (d *linguaDetector) Detect(text string) (string, bool) {
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return language.String(), true
}
