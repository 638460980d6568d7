package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"academy-chatbot-be/pkg/ai"
)

type OpenAIProvider struct {
	BaseURL    string
	APIKey     string
	ModelName  string
	MaxRetries int
	RetryDelay time.Duration
	Client     *http.Client
}

// Ensure OpenAIProvider implements Provider
var _ ai.Provider = &OpenAIProvider{}

func NewOpenAIProvider(baseURL, apiKey, modelName string, maxRetries int, retryDelay time.Duration) *OpenAIProvider {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIProvider{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		ModelName:  modelName,
		MaxRetries: maxRetries,
		RetryDelay: retryDelay,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// --- Interface Implementation ---

func (p *OpenAIProvider) Chat(ctx context.Context, history []ai.Message, opts ...ai.Option) (string, error) {
	options := &ai.Options{
		Temperature: 0.3,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]chatMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = chatMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	attempts := p.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		content, retryable, err := p.doRequest(ctx, payloadBytes)
		if err == nil {
			return content, nil
		}
		lastErr = err
		if !retryable || attempt == attempts {
			break
		}

		// Exponential backoff, doubled per attempt.
		delay := p.RetryDelay * time.Duration(1<<(attempt-1))
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", lastErr
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...ai.Option) (string, error) {
	return p.Chat(ctx, []ai.Message{{Role: "user", Content: prompt}}, opts...)
}

// doRequest performs one chat-completions call. The bool reports whether the
// failure is worth retrying (network errors, 429, 5xx).
func (p *OpenAIProvider) doRequest(ctx context.Context, payload []byte) (string, bool, error) {
	url := p.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, fmt.Errorf("openai error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return "", false, fmt.Errorf("unmarshal response: %w", err)
	}
	if completion.Error != nil {
		return "", false, fmt.Errorf("openai error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", false, fmt.Errorf("openai returned no choices")
	}

	return completion.Choices[0].Message.Content, false, nil
}
