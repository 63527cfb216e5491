package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

// contentGenerator is the slice of the Gemini API the summarizer needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}

type genaiGenerator struct {
	client *genai.Client
}

func (g *genaiGenerator) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

type geminiSummarizer struct {
	generator contentGenerator
	model     string
	logger    logger.Logger
}

// NewGemini creates a Summarizer calling model through the Gemini API with apiKey.
func NewGemini(ctx context.Context, apiKey, model string, log logger.Logger) (Summarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGeminiSummarizer(&genaiGenerator{client: client}, model, log), nil
}

func newGeminiSummarizer(gen contentGenerator, model string, log logger.Logger) *geminiSummarizer {
	return &geminiSummarizer{
		generator: gen,
		model:     model,
		logger:    log,
	}
}

// Summarize sends the prompt once and returns the model's text unmodified.
func (s *geminiSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	s.logger.Info(ctx, "Requesting summary from %s (%d chars)", s.model, len(transcript))

	text, err := s.generator.GenerateContent(ctx, s.model, BuildPrompt(transcript))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return text, nil
}
