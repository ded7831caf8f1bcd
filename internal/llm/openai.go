package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const openaiBackend = "openai"

// OpenAIAdapter is the secondary backend, used for refinement and as a
// generation fallback target when it is the only configured backend.
type OpenAIAdapter struct {
	creds  CredentialSource
	model  string
	client *resty.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatAPIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func NewOpenAI(creds CredentialSource, model string, timeout time.Duration) *OpenAIAdapter {
	client := resty.New().
		SetBaseURL("https://api.openai.com").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	return &OpenAIAdapter{creds: creds, model: model, client: client}
}

// SetBaseURL points the adapter at a different API host. Used in tests.
func (o *OpenAIAdapter) SetBaseURL(url string) {
	o.client.SetBaseURL(url)
}

func (o *OpenAIAdapter) Kind() BackendKind { return BackendSecondary }
func (o *OpenAIAdapter) Name() string      { return openaiBackend }

func (o *OpenAIAdapter) Ready(ctx context.Context) bool {
	_, ok, err := o.creds.Get(ctx, openaiBackend)
	return err == nil && ok
}

func (o *OpenAIAdapter) Invoke(ctx context.Context, prompt string) (string, error) {
	key, ok, err := o.creds.Get(ctx, openaiBackend)
	if err != nil || !ok {
		return "", &AuthError{Backend: openaiBackend, Err: err}
	}

	var out chatResponse
	var apiErr chatAPIError

	resp, err := o.client.R().
		SetContext(ctx).
		SetAuthToken(key).
		SetBody(chatRequest{
			Model:       o.model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			Temperature: 0.7,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v1/chat/completions")
	if err != nil {
		return "", &TransportError{Backend: openaiBackend, Err: fmt.Errorf("chat completions: %w", err)}
	}

	switch code := resp.StatusCode(); {
	case code == 401 || code == 403:
		return "", &AuthError{Backend: openaiBackend, Err: fmt.Errorf("status %d: %s", code, apiErr.Error.Message)}
	case code < 200 || code > 299:
		return "", &TransportError{Backend: openaiBackend, Err: fmt.Errorf("status %d: %s", code, apiErr.Error.Message)}
	}

	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", &EmptyResponseError{Backend: openaiBackend}
	}
	return out.Choices[0].Message.Content, nil
}
