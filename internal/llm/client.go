// Package llm talks to the external text-generation endpoint. The same
// chat-completions transport serves two very different callers: the date
// oracle and the submission reviewer.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Transport-level failure classes. The per-caller clients map these onto the
// application error taxonomy.
var (
	errChatTransport = errors.New("chat endpoint unreachable or non-success status")
	errChatDecode    = errors.New("chat endpoint returned undecodable body")
	errChatEmpty     = errors.New("chat endpoint returned no choices")
)

type ChatConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	// HTTPClient is optional; a 60s-timeout client is used when nil.
	HTTPClient *http.Client
}

type ChatClient struct {
	baseURL string
	apiKey  string
	model   string
	httpc   *http.Client
}

func NewChatClient(cfg *ChatConfig) *ChatClient {
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 60 * time.Second}
	}
	return &ChatClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpc:   httpc,
	}
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
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user exchange and returns the first choice's
// content. Exactly one attempt is made.
func (c *ChatClient) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	jsonBody, err := sonic.Marshal(reqBody)
	if err != nil {
		return "", errors.New("marshaling chat request error: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", errors.New("creating chat request error: " + err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", errors.Join(errChatTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Join(errChatTransport, fmt.Errorf("chat endpoint status %d", resp.StatusCode))
	}

	var chatResp chatResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", errors.Join(errChatDecode, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", errChatEmpty
	}
	return chatResp.Choices[0].Message.Content, nil
}
