package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// CompleterInterface is the generation capability. Messages are role-tagged
// (system / user / assistant); an assistant entry at the end acts as a reply prefix.
type CompleterInterface interface {
	Complete(ctx context.Context, messages []ChatMessage, temperature float32, maxTokens int) (string, error)
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// LlamaClient talks to an OpenAI-compatible chat completions endpoint
// (the Hugging Face inference router by default).
type LlamaClient struct {
	url   string
	token string
	model string
}

func NewLlamaClient() *LlamaClient {
	url := os.Getenv("HF_ROUTER_URL")
	if url == "" {
		url = "https://router.huggingface.co/v1/chat/completions"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "meta-llama/Llama-3.3-70B-Instruct"
	}
	return &LlamaClient{
		url:   url,
		token: os.Getenv("HF_TOKEN"),
		model: model,
	}
}

// Complete performs a single chat completion attempt. No retries; the caller
// decides how a failure degrades. maxTokens <= 0 leaves the provider default cap.
func (l *LlamaClient) Complete(ctx context.Context, messages []ChatMessage, temperature float32, maxTokens int) (string, error) {
	start := time.Now()
	defer func() {
		fmt.Printf("LLM completion took %v\n", time.Since(start))
	}()

	req := ChatCompletionRequest{
		Model:       l.model,
		Messages:    messages,
		Temperature: temperature,
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(ctx, "POST", l.url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if l.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+l.token)
	}

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llm API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if chatResp.Error.Message != "" {
		return "", fmt.Errorf("llm API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
