package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

func makeChatResponse(content string) chatResponse {
	choice := chatChoice{Index: 0, FinishReason: "stop"}
	choice.Message.Role = "assistant"
	choice.Message.Content = content
	return chatResponse{
		ID:      "test-id",
		Object:  "chat.completion",
		Created: 1234567890,
		Model:   "test-model",
		Choices: []chatChoice{choice},
	}
}

func makeEmptyChoicesResponse() chatResponse {
	return chatResponse{
		ID:      "test-id",
		Object:  "chat.completion",
		Created: 1234567890,
		Model:   "test-model",
		Choices: []chatChoice{},
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

type completionCase struct {
	name           string
	responseBody   string
	statusCode     int
	wantErr        bool
	wantErrContain string
	wantContent    string
}

// 4xx statuses keep the SDKs from retrying.
func completionCases() []completionCase {
	return []completionCase{
		{
			name:         "successfulCompletion",
			responseBody: mustJSON(makeChatResponse(`{"title":"x"}`)),
			statusCode:   http.StatusOK,
			wantContent:  `{"title":"x"}`,
		},
		{
			name:           "emptyResponse",
			responseBody:   mustJSON(makeChatResponse("")),
			statusCode:     http.StatusOK,
			wantErr:        true,
			wantErrContain: "empty response",
		},
		{
			name:           "noChoices",
			responseBody:   mustJSON(makeEmptyChoicesResponse()),
			statusCode:     http.StatusOK,
			wantErr:        true,
			wantErrContain: "no response",
		},
		{
			name:           "httpErrorUnauthorized",
			responseBody:   `{"error": {"message": "invalid api key", "type": "authentication_error"}}`,
			statusCode:     http.StatusUnauthorized,
			wantErr:        true,
			wantErrContain: "generate",
		},
		{
			name:           "httpErrorBadRequest",
			responseBody:   `{"error": {"message": "bad request", "type": "invalid_request_error"}}`,
			statusCode:     http.StatusBadRequest,
			wantErr:        true,
			wantErrContain: "generate",
		},
	}
}

func runCompletionCases(t *testing.T, newProvider func(t *testing.T, url string) Provider) {
	for _, tt := range completionCases() {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			p := newProvider(t, server.URL)
			got, err := p.CompleteJSON(context.Background(), "system", "user")

			if tt.wantErr {
				if err == nil {
					t.Errorf("CompleteJSON() expected error containing %q, got nil", tt.wantErrContain)
					return
				}
				if !strings.Contains(err.Error(), tt.wantErrContain) {
					t.Errorf("CompleteJSON() error = %v, want error containing %q", err, tt.wantErrContain)
				}
				return
			}

			if err != nil {
				t.Errorf("CompleteJSON() unexpected error: %v", err)
				return
			}
			if got != tt.wantContent {
				t.Errorf("CompleteJSON() = %q, want %q", got, tt.wantContent)
			}
		})
	}
}

func TestOpenAICompleteJSON(t *testing.T) {
	runCompletionCases(t, func(t *testing.T, url string) Provider {
		return NewOpenAIClient("test-api-key", "gpt-4o-mini", DefaultTemperature, url+"/")
	})
}

func TestGroqCompleteJSON(t *testing.T) {
	runCompletionCases(t, func(t *testing.T, url string) Provider {
		t.Helper()
		client, err := NewGroqClient("test-api-key", "llama3-8b-8192", DefaultTemperature, url+"/")
		if err != nil {
			t.Fatalf("failed to create groq client: %v", err)
		}
		return client
	})
}

func TestRequestShape(t *testing.T) {
	tests := []struct {
		name        string
		newProvider func(url string) (Provider, error)
		wantModel   string
	}{
		{
			name: "openai",
			newProvider: func(url string) (Provider, error) {
				return NewOpenAIClient("k", "gpt-4o-mini", 0.8, url+"/"), nil
			},
			wantModel: "gpt-4o-mini",
		},
		{
			name: "groq",
			newProvider: func(url string) (Provider, error) {
				return NewGroqClient("k", "llama3-8b-8192", 0.8, url+"/")
			},
			wantModel: "llama3-8b-8192",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				data, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(data, &body)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(mustJSON(makeChatResponse("{}"))))
			}))
			defer server.Close()

			p, err := tt.newProvider(server.URL)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := p.CompleteJSON(context.Background(), "sys prompt", "user prompt"); err != nil {
				t.Fatalf("CompleteJSON() error = %v", err)
			}

			if body["model"] != tt.wantModel {
				t.Errorf("model = %v, want %q", body["model"], tt.wantModel)
			}
			if temp, _ := body["temperature"].(float64); temp < 0.79 || temp > 0.81 {
				t.Errorf("temperature = %v, want 0.8", body["temperature"])
			}
			format, _ := body["response_format"].(map[string]any)
			if format["type"] != "json_object" {
				t.Errorf("response_format = %v, want json_object", body["response_format"])
			}

			messages, _ := body["messages"].([]any)
			if len(messages) != 2 {
				t.Fatalf("messages = %d, want 2", len(messages))
			}
			first, _ := messages[0].(map[string]any)
			second, _ := messages[1].(map[string]any)
			if first["role"] != "system" || first["content"] != "sys prompt" {
				t.Errorf("messages[0] = %v", first)
			}
			if second["role"] != "user" || second["content"] != "user prompt" {
				t.Errorf("messages[1] = %v", second)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantNil  bool
		wantName string
		wantErr  bool
	}{
		{name: "emptyKey", opts: Options{Provider: ProviderOpenAI}, wantNil: true},
		{name: "demoKey", opts: Options{Provider: ProviderOpenAI, APIKey: "demo-key"}, wantNil: true},
		{name: "defaultsToOpenAI", opts: Options{APIKey: "sk-test"}, wantName: ProviderOpenAI},
		{name: "groq", opts: Options{Provider: "Groq", APIKey: "gsk-test"}, wantName: ProviderGroq},
		{name: "unknownProvider", opts: Options{Provider: "llamafile", APIKey: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.opts)
			if tt.wantErr {
				if err == nil {
					t.Error("New() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if tt.wantNil {
				if p != nil {
					t.Errorf("New() = %v, want nil", p)
				}
				return
			}
			if p == nil {
				t.Fatal("New() = nil")
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}
