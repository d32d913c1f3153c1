package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Completer is the narrow seam to the LLM provider. The provider itself is a
// black box; everything this package needs is a reply for a prompt.
type Completer interface {
	Complete(ctx context.Context, system string, messages []Message) (string, error)
}

var ErrChatDisabled = errors.New("chatbot is not configured")

// HTTPCompleter posts an OpenAI-style chat completion request to a configured
// endpoint. No provider SDK; the request surface is three fields.
type HTTPCompleter struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

func NewHTTPCompleter(endpoint, apiKey, model string, timeout time.Duration) *HTTPCompleter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPCompleter{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message wireMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPCompleter) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	if c.endpoint == "" {
		return "", ErrChatDisabled
	}

	wire := make([]wireMessage, 0, len(messages)+1)
	if system != "" {
		wire = append(wire, wireMessage{Role: "system", Content: system})
	}
	for _, m := range messages {
		wire = append(wire, wireMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(completionRequest{Model: c.model, Messages: wire})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("chat completion: bad response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := "provider error"
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("chat completion: %s (status %d)", msg, resp.StatusCode)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return out.Choices[0].Message.Content, nil
}
