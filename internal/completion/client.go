// Package completion is a client for OpenAI-compatible chat completion APIs
// (Groq, OpenAI, OpenRouter, vLLM and similar).
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	defaultDialTimeout     = 5 * time.Second
	defaultTLSHandshake    = 5 * time.Second
	defaultIdleConnTimeout = 30 * time.Second
	maxErrorBody           = 4 << 10
)

// Request is a single question to answer
type Request struct {
	// Language is the natural-language name the answer must be written in
	Language string
	Text     string
}

// Config configures a Client
type Config struct {
	URL         string
	APIKey      string
	Model       string
	Temperature float64
}

// Client sends chat completion requests. It never retries; callers bound
// each call with a context deadline.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// New creates a client using a pooled HTTP transport
func New(cfg Config) *Client {
	return NewWithHTTPClient(cfg, BuildHTTPClient())
}

// NewWithHTTPClient creates a client on top of an existing HTTP client
func NewWithHTTPClient(cfg Config, httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient, cfg: cfg}
}

// BuildHTTPClient returns an HTTP client tuned for long completion calls.
// There is no client-wide timeout: the request context carries the deadline.
func BuildHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: defaultDialTimeout, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   defaultTLSHandshake,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: transport}
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

// APIError is a non-2xx response from the completion service
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("completion: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("completion: HTTP %d: %s: %s", e.StatusCode, e.Type, e.Message)
}

// ErrNoChoices is returned when the service answers without any choice
var ErrNoChoices = errors.New("completion: response has no choices")

// SystemPrompt is the directive that pins the answer language
func SystemPrompt(language string) string {
	return fmt.Sprintf("Respond ONLY in %s", language)
}

// Complete sends the question and returns the generated answer
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt(req.Language)},
			{Role: "user", Content: req.Text},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("completion: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("completion: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", readAPIError(resp)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("completion: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", ErrNoChoices
	}

	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}

// readAPIError extracts {"error":{"type":"...","message":"..."}} when present
func readAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var envelope struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(data, &envelope) == nil && envelope.Error.Message != "" {
		apiErr.Type = envelope.Error.Type
		apiErr.Message = envelope.Error.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(data))
	}
	return apiErr
}
