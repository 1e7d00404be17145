package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/theUtkarshRaj/SupplyGuard/internal/ports"
)

const systemPrompt = "You summarize supply-chain news headlines in one or two factual sentences."

// OpenAISummarizer is an alternative summarization backend behind the same
// port as the HuggingFace client.
type OpenAISummarizer struct {
	client openai.Client
	model  string
}

var _ ports.Summarizer = (*OpenAISummarizer)(nil)

// NewOpenAISummarizer builds a client from an API key and model name.
func NewOpenAISummarizer(apiKey, model string, opts ...option.RequestOption) *OpenAISummarizer {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAISummarizer{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Summarize requests a chat completion over the text.
func (s *OpenAISummarizer) Summarize(ctx context.Context, text string) (string, error) {
	response, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return response.Choices[0].Message.Content, nil
}
