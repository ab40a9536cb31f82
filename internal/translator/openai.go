package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dangehub/dualtext/internal/config"
)

// OpenAI speaks the chat-completion protocol with templated prompts. Requests
// use deterministic low-temperature decoding and non-streaming mode.
type OpenAI struct {
	cfg    config.Config
	client *http.Client
}

func NewOpenAI(cfg config.Config) (*OpenAI, error) {
	switch {
	case cfg.APIURL == "":
		return nil, &ConfigError{Reason: "api_url is required for the openai backend"}
	case cfg.APIKey == "":
		return nil, &ConfigError{Reason: "api_key is required for the openai backend"}
	case cfg.Model == "":
		return nil, &ConfigError{Reason: "model is required for the openai backend"}
	case strings.TrimSpace(cfg.UserPrompt) == "":
		return nil, &ConfigError{Reason: "user_prompt is required for the openai backend"}
	}
	return &OpenAI{
		cfg:    cfg,
		client: &http.Client{Timeout: httpTimeout(cfg)},
	}, nil
}

func (o *OpenAI) Name() string { return "openai" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (o *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	var messages []chatMessage
	if o.cfg.SystemPrompt != "" {
		messages = append(messages, chatMessage{
			Role:    "system",
			Content: ExpandPrompt(o.cfg.SystemPrompt, text, o.cfg.FromLang, o.cfg.ToLang),
		})
	}
	messages = append(messages, chatMessage{
		Role:    "user",
		Content: ExpandPrompt(o.cfg.UserPrompt, text, o.cfg.FromLang, o.cfg.ToLang),
	})

	payload := map[string]any{
		"model":       o.cfg.Model,
		"messages":    messages,
		"temperature": 0.2,
		"stream":      false,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", &BackendError{Backend: o.Name(), Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.APIURL, bytes.NewReader(data))
	if err != nil {
		return "", &BackendError{Backend: o.Name(), Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", &BackendError{Backend: o.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Backend: o.Name(), Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Surface the body verbatim: chat endpoints put the useful
		// diagnostics there.
		return "", &BackendError{Backend: o.Name(), Status: resp.StatusCode, Body: string(body)}
	}

	var chatResp struct {
		Choices []struct {
			Message struct {
				Content json.RawMessage `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", &BackendError{Backend: o.Name(), Body: string(body), Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(chatResp.Choices) == 0 {
		return "", &BackendError{Backend: o.Name(), Body: string(body), Err: errors.New("response has no choices")}
	}

	var content string
	if err := json.Unmarshal(chatResp.Choices[0].Message.Content, &content); err != nil {
		return "", &BackendError{Backend: o.Name(), Body: string(body), Err: errors.New("message content is not a string")}
	}
	return content, nil
}
