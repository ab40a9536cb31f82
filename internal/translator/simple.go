package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dangehub/dualtext/internal/config"
)

// Simple speaks the plain request/response text-translation protocol
// (LibreTranslate-compatible): one POST per fragment, JSON in, JSON out.
type Simple struct {
	cfg    config.Config
	client *http.Client
}

func NewSimple(cfg config.Config) (*Simple, error) {
	if cfg.APIURL == "" {
		return nil, &ConfigError{Reason: "api_url is required"}
	}
	return &Simple{
		cfg:    cfg,
		client: &http.Client{Timeout: httpTimeout(cfg)},
	}, nil
}

func (s *Simple) Name() string { return "simple" }

func (s *Simple) Translate(ctx context.Context, text string) (string, error) {
	payload := map[string]any{
		"q":      text,
		"source": s.cfg.FromLang,
		"target": s.cfg.ToLang,
		"format": "text",
	}
	if s.cfg.APIKey != "" {
		payload["api_key"] = s.cfg.APIKey
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", &BackendError{Backend: s.Name(), Err: fmt.Errorf("marshal request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(data))
	if err != nil {
		return "", &BackendError{Backend: s.Name(), Err: fmt.Errorf("create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", &BackendError{Backend: s.Name(), Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &BackendError{Backend: s.Name(), Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &BackendError{Backend: s.Name(), Status: resp.StatusCode, Body: string(body)}
	}

	return parseSimpleResponse(s.Name(), body)
}

// parseSimpleResponse accepts either an object exposing translatedText or a
// list whose first element exposes it. A well-formed response without the
// field is an empty result, not a failure; the session turns empty results
// into an error.
func parseSimpleResponse(backend string, body []byte) (string, error) {
	var obj struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &obj); err == nil {
		return obj.TranslatedText, nil
	}

	var list []struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", nil
		}
		return list[0].TranslatedText, nil
	}

	return "", &BackendError{Backend: backend, Body: string(body), Err: errors.New("unparseable response body")}
}
