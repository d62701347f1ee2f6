package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultGroqBaseURL is Groq's OpenAI-compatible API root.
const DefaultGroqBaseURL = "https://api.groq.com/openai/v1/"

// GroqClient calls an OpenAI-compatible chat completion endpoint.
type GroqClient struct {
	client openai.Client
	model  string
}

// NewGroqClient builds the client once at startup; it is safe for concurrent use.
// An empty baseURL selects DefaultGroqBaseURL.
func NewGroqClient(apiKey, baseURL, model string, opts ...option.RequestOption) *GroqClient {
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	reqOpts = append(reqOpts, opts...)

	return &GroqClient{
		client: openai.NewClient(reqOpts...),
		model:  model,
	}
}

func (c *GroqClient) Summarize(ctx context.Context, payload string) Result {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(payload),
		},
		MaxTokens: openai.Int(MaxOutputTokens),
	})
	if err != nil {
		return FailureFrom(err)
	}

	if len(resp.Choices) == 0 {
		return FailureFrom(fmt.Errorf("groq: %w", errNoChoices))
	}
	return Success{Summary: resp.Choices[0].Message.Content}
}
