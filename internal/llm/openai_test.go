package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticCreds map[string]string

func (c staticCreds) Get(ctx context.Context, backend string) (string, bool, error) {
	v, ok := c[backend]
	return v, ok, nil
}

func TestOpenAIInvoke(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantOut string
		wantErr any
	}{
		{
			name:    "success",
			status:  http.StatusOK,
			body:    `{"choices":[{"message":{"role":"assistant","content":"<!DOCTYPE html><html></html>"}}]}`,
			wantOut: "<!DOCTYPE html><html></html>",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Incorrect API key","type":"invalid_request_error"}}`,
			wantErr: &AuthError{},
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error":{"message":"overloaded","type":"server_error"}}`,
			wantErr: &TransportError{},
		},
		{
			name:    "empty choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: &EmptyResponseError{},
		},
		{
			name:    "blank content",
			status:  http.StatusOK,
			body:    `{"choices":[{"message":{"role":"assistant","content":"   "}}]}`,
			wantErr: &EmptyResponseError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/chat/completions" {
					t.Errorf("path = %s", r.URL.Path)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
					t.Errorf("auth header = %q", got)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := NewOpenAI(staticCreds{"openai": "sk-test"}, "gpt-4o", 5*time.Second)
			a.SetBaseURL(srv.URL)

			out, err := a.Invoke(context.Background(), "build a game")
			switch want := tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out != tt.wantOut {
					t.Errorf("out = %q, want %q", out, tt.wantOut)
				}
			case *AuthError:
				var e *AuthError
				if !errors.As(err, &e) {
					t.Fatalf("err = %v, want *AuthError", err)
				}
			case *TransportError:
				var e *TransportError
				if !errors.As(err, &e) {
					t.Fatalf("err = %v, want *TransportError", err)
				}
			case *EmptyResponseError:
				var e *EmptyResponseError
				if !errors.As(err, &e) {
					t.Fatalf("err = %v, want *EmptyResponseError", err)
				}
			default:
				t.Fatalf("bad test case: %T", want)
			}
		})
	}
}

func TestOpenAIMissingCredential(t *testing.T) {
	a := NewOpenAI(staticCreds{}, "gpt-4o", time.Second)
	if a.Ready(context.Background()) {
		t.Error("Ready = true with no credential")
	}
	_, err := a.Invoke(context.Background(), "x")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want *AuthError", err)
	}
}
