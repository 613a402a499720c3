package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/deuslabs/pitchboard/internal/application"
	domain "github.com/deuslabs/pitchboard/internal/domain/analysis"
	"github.com/deuslabs/pitchboard/internal/domain/projects"
	"github.com/deuslabs/pitchboard/internal/infra/ai/prompt"
)

const maxTokens = 2048

// Client is an analysis.Source backed by the OpenAI chat completions
// API. The model answers in the report JSON schema directly.
type Client struct {
	*openai.Client
	Model string
	Clock application.Clock
}

var _ domain.Source = (*Client)(nil)

func NewClient(apiKey, model string, clock application.Clock) *Client {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &Client{Client: openai.NewClient(apiKey), Model: model, Clock: clock}
}

func (c *Client) Fetch(ctx context.Context, p *projects.Project) (*domain.Report, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.GetUserPrompt(p.Name, p.Context, p.FileKey)},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.ErrUnavailable
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	report.ID = p.ID
	report.ProjectName = p.Name
	report.FileKey = p.FileKey
	report.Context = p.Context
	report.Status = projects.StatusCompleted
	report.CreatedAt = p.CreatedAt
	report.UpdatedAt = c.Clock.Now()
	return &report, nil
}
