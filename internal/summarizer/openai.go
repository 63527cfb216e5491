package summarizer

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openAISummarizer struct {
	client chatClient
	model  string
	logger logger.Logger
}

// NewOpenAI creates a Summarizer backed by an OpenAI chat model.
func NewOpenAI(apiKey, model string, log logger.Logger) Summarizer {
	return newOpenAISummarizer(openai.NewClient(apiKey), model, log)
}

func newOpenAISummarizer(client chatClient, model string, log logger.Logger) *openAISummarizer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAISummarizer{
		client: client,
		model:  model,
		logger: log,
	}
}

func (s *openAISummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	s.logger.Info(ctx, "Requesting summary from %s (%d chars)", s.model, len(transcript))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(transcript),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", s.model)
	}

	return resp.Choices[0].Message.Content, nil
}
