package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const geminiBackend = "gemini"

// GeminiAdapter is the primary backend. The client is built per call so
// a credential rotated through the store takes effect immediately.
type GeminiAdapter struct {
	creds   CredentialSource
	model   string
	timeout time.Duration
}

func NewGemini(creds CredentialSource, model string, timeout time.Duration) *GeminiAdapter {
	return &GeminiAdapter{creds: creds, model: model, timeout: timeout}
}

func (g *GeminiAdapter) Kind() BackendKind { return BackendPrimary }
func (g *GeminiAdapter) Name() string      { return geminiBackend }

func (g *GeminiAdapter) Ready(ctx context.Context) bool {
	_, ok, err := g.creds.Get(ctx, geminiBackend)
	return err == nil && ok
}

func (g *GeminiAdapter) Invoke(ctx context.Context, prompt string) (string, error) {
	key, ok, err := g.creds.Get(ctx, geminiBackend)
	if err != nil || !ok {
		return "", &AuthError{Backend: geminiBackend, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return "", classifyGeminiErr(err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(16384)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classifyGeminiErr(err)
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop {
			log.Warn().Int("candidate", i).Str("finish_reason", cand.FinishReason.String()).
				Msg("gemini stopped early")
		}
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", &EmptyResponseError{Backend: geminiBackend}
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}

func classifyGeminiErr(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == 401 || gerr.Code == 403) {
		return &AuthError{Backend: geminiBackend, Err: err}
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unauthenticated, codes.PermissionDenied:
			return &AuthError{Backend: geminiBackend, Err: err}
		}
	}
	return &TransportError{Backend: geminiBackend, Err: fmt.Errorf("generate content: %w", err)}
}
