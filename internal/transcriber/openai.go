package transcriber

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// audioClient is the part of the go-openai client used for transcription.
type audioClient interface {
	CreateTranscription(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

type openAIEngine struct {
	client   audioClient
	model    string
	language string
}

// NewOpenAI creates an Engine backed by the OpenAI transcription API.
func NewOpenAI(apiKey, model, language string) Engine {
	return newOpenAIEngine(openai.NewClient(apiKey), model, language)
}

func newOpenAIEngine(client audioClient, model, language string) *openAIEngine {
	if model == "" {
		model = openai.Whisper1
	}
	return &openAIEngine{
		client:   client,
		model:    model,
		language: language,
	}
}

func (o *openAIEngine) Recognize(ctx context.Context, audioPath string) (string, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: audioPath,
		Language: o.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		if errors.As(err, &apiErr) || errors.As(err, &reqErr) {
			return "", &RequestError{Err: err}
		}
		return "", err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrUnintelligible
	}
	return text, nil
}
