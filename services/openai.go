package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"journey-backend/models"
)

const DefaultAIEndpoint = "https://api.aimlapi.com/chat/completions"

// ChatCompletionMessage is one turn of the chat-completion request.
type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// AIClient issues single-shot chat-completion calls. One request per call:
// no retry, no streaming, no conversation memory. Construct it once and
// inject it wherever recommendations are generated.
type AIClient struct {
	Endpoint    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTPClient  *http.Client
}

func NewAIClient(apiKey, model string, temperature float64, maxTokens int) *AIClient {
	return &AIClient{
		Endpoint:    DefaultAIEndpoint,
		APIKey:      apiKey,
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		HTTPClient:  &http.Client{},
	}
}

// Complete sends the system and user prompts and returns the raw text of
// the first completion choice. Callers feed the text into the parser; no
// interpretation happens here.
func (c *AIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	requestData := ChatCompletionRequest{
		Model: c.Model,
		Messages: []ChatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize request: %v", models.ErrUnknown, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", models.ErrUnknown, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to send request: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", models.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: API returned status %d: %s", models.ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var completionResp ChatCompletionResponse
	if err := json.Unmarshal(body, &completionResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode API response: %v", models.ErrInvalidResponse, err)
	}

	if len(completionResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices returned", models.ErrInvalidResponse)
	}
	return completionResp.Choices[0].Message.Content, nil
}
