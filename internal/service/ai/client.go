package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/jwhitfield/careersite/backend/internal/config"
	"github.com/jwhitfield/careersite/backend/internal/model/session"
)

// historyLimit caps how many persisted messages ride along on one call.
const historyLimit = 10

// Provider pairs a chat model with a name used in logs and message metadata.
type Provider struct {
	Name  string
	Model model.BaseChatModel
}

// Client runs an ordered provider chain. Each call walks the chain once and
// returns the first non-empty completion; there are no per-provider retries.
type Client struct {
	providers []Provider
}

// NewClient builds the provider chain from configuration: Anthropic first,
// OpenAI second. At least one provider must be configured.
func NewClient(ctx context.Context, cfg config.AIConfig) (*Client, error) {
	var providers []Provider

	var temperature *float32
	if cfg.Temperature != nil {
		val := float32(*cfg.Temperature)
		temperature = &val
	}

	if cfg.Anthropic.Enabled() {
		claudeCfg := &claude.Config{
			APIKey:      cfg.Anthropic.APIKey,
			Model:       cfg.Anthropic.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: temperature,
		}
		if cfg.Anthropic.BaseURL != "" {
			baseURL := cfg.Anthropic.BaseURL
			claudeCfg.BaseURL = &baseURL
		}
		chatModel, err := claude.NewChatModel(ctx, claudeCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic chat model: %w", err)
		}
		providers = append(providers, Provider{Name: "anthropic", Model: chatModel})
	}

	if cfg.OpenAI.Enabled() {
		maxTokens := cfg.MaxTokens
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.Model,
			BaseURL:     cfg.OpenAI.BaseURL,
			MaxTokens:   &maxTokens,
			Temperature: temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai chat model: %w", err)
		}
		providers = append(providers, Provider{Name: "openai", Model: chatModel})
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no chat completion provider configured")
	}

	return &Client{providers: providers}, nil
}

// NewClientWithProviders wires an explicit chain, primarily for tests.
func NewClientWithProviders(providers ...Provider) *Client {
	return &Client{providers: providers}
}

// Complete sends the system prompt, prior exchanges, and the current message
// through the chain and returns the first non-empty text completion. Only the
// last historyLimit history messages are forwarded. The returned error is the
// last provider's; callers are expected to substitute their own fallback
// content.
func (c *Client) Complete(ctx context.Context, systemPrompt string, history []session.Message, userMessage string) (string, error) {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	for _, msg := range history {
		if msg.Role == session.RoleAssistant {
			messages = append(messages, schema.AssistantMessage(msg.Content, nil))
		} else {
			messages = append(messages, schema.UserMessage(msg.Content))
		}
	}
	messages = append(messages, schema.UserMessage(userMessage))

	var lastErr error
	for _, provider := range c.providers {
		resp, err := provider.Model.Generate(ctx, messages)
		if err != nil {
			log.Printf("[ai] provider %s failed: %v", provider.Name, err)
			lastErr = err
			continue
		}
		if resp == nil || resp.Content == "" {
			log.Printf("[ai] provider %s returned no text content", provider.Name)
			lastErr = fmt.Errorf("provider %s returned no text content", provider.Name)
			continue
		}
		return resp.Content, nil
	}

	return "", fmt.Errorf("all providers failed: %w", lastErr)
}

// CompleteJSON completes the prompt and decodes the model output into out
// using the two-stage parser. Unparsable output surfaces as
// ErrUnparsableOutput wrapped in the returned error.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userMessage string, out any) error {
	text, err := c.Complete(ctx, systemPrompt, nil, userMessage)
	if err != nil {
		return err
	}
	return DecodeModelJSON(text, out)
}
