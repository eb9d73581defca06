// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package upstream

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"
)

// Chat providers.
const (
	ProviderAzure  = "azure"
	ProviderOpenAI = "openai"
)

// Chat defaults.
const (
	DefaultOpenAIBaseURL   = "https://api.openai.com/v1"
	DefaultChatModel       = "gpt-4o"
	DefaultAzureAPIVersion = "2024-06-01"
)

// ChatConfig configures the chat-completion client.
type ChatConfig struct {
	// Provider is "azure" or "openai". Empty selects azure when Endpoint is set.
	Provider string

	APIKey string

	// Endpoint is the Azure OpenAI resource endpoint.
	Endpoint string

	// Deployment is the Azure deployment name. Defaults to Model.
	Deployment string

	// APIVersion is the Azure api-version query parameter.
	APIVersion string

	// BaseURL is the OpenAI API root.
	BaseURL string

	// Model is sent in the request body.
	Model string

	Temperature *float64
	MaxTokens   int

	Options ClientOptions
}

// ChatClient sends single-turn chat completions to Azure OpenAI or OpenAI
// through github.com/openai/openai-go.
type ChatClient struct {
	client openai.Client
	model  string
	temp   *float64
	maxTok int
	req    *requester
}

// NewChatClient creates a chat-completion client.
func NewChatClient(cfg ChatConfig) (*ChatClient, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultChatModel
	}

	provider := strings.ToLower(cfg.Provider)
	if provider == "" {
		provider = ProviderOpenAI
		if cfg.Endpoint != "" {
			provider = ProviderAzure
		}
	}

	req := newRequester("llm", cfg.Options, parseChatError)
	opts := []option.RequestOption{
		option.WithHTTPClient(req.httpClient()),
		// 429 backoff happens in the requester transport.
		option.WithMaxRetries(0),
	}

	switch provider {
	case ProviderAzure:
		if cfg.Endpoint == "" {
			return nil, errors.New("azure chat provider requires an endpoint")
		}
		version := cfg.APIVersion
		if version == "" {
			version = DefaultAzureAPIVersion
		}
		// Azure routes on the deployment name, which the SDK reads from the
		// request's model field.
		if cfg.Deployment != "" {
			model = cfg.Deployment
		}
		opts = append(opts,
			azure.WithEndpoint(strings.TrimRight(cfg.Endpoint, "/"), version),
			azure.WithAPIKey(cfg.APIKey),
		)
	case ProviderOpenAI:
		base := strings.TrimRight(cfg.BaseURL, "/")
		if base == "" {
			base = DefaultOpenAIBaseURL
		}
		opts = append(opts,
			option.WithBaseURL(base+"/"),
			option.WithAPIKey(cfg.APIKey),
		)
	default:
		return nil, fmt.Errorf("unknown chat provider %q", cfg.Provider)
	}

	return &ChatClient{
		client: openai.NewClient(opts...),
		model:  model,
		temp:   cfg.Temperature,
		maxTok: cfg.MaxTokens,
		req:    req,
	}, nil
}

// BreakerState reports the circuit breaker state for readiness checks.
func (c *ChatClient) BreakerState() string {
	return c.req.breaker.State()
}

// Complete sends a system and a user message and returns the first choice's content.
func (c *ChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	if c.temp != nil {
		params.Temperature = openai.Float(*c.temp)
	}
	if c.maxTok > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTok))
	}

	var content string
	err := c.req.call(ctx, "chat_completion", func(ctx context.Context) error {
		resp, err := c.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			return ErrEmptyCompletion
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}
	return content, nil
}

// parseChatError reads {"error":{"code":..,"message":..}} bodies.
func parseChatError(operation string, statusCode int, body []byte) error {
	msg := gjson.GetBytes(body, "error.message")
	if !msg.Exists() {
		return nil
	}
	code := gjson.GetBytes(body, "error.code").String()
	if code == "" {
		code = fmt.Sprintf("%d", statusCode)
	}
	return &APIStatusError{
		Service:   "llm",
		Operation: operation,
		Status:    code,
		Message:   msg.String(),
	}
}
