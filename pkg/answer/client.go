// Package answer talks to the remote llama_prompt answer service.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nec-chat-be/internal/constant"
)

const promptEndpoint = "/llama_prompt"

// Status is the remote service's verdict on a query.
type Status string

const (
	StatusGood    Status = "good"
	StatusBad     Status = "bad"
	StatusTimeOut Status = "time_out"
)

type Request struct {
	Username string `json:"username"`
	Query    string `json:"query"`
}

type Response struct {
	Status Status `json:"status"`
	Answer string `json:"answer"`
}

// DisplayText resolves the user-facing text for a response. The switch is
// total: unknown statuses fall through to the generic error text.
func (r Response) DisplayText() string {
	switch r.Status {
	case StatusGood:
		return r.Answer
	case StatusBad:
		if r.Answer != "" {
			return r.Answer
		}
		return constant.ChatBadFallbackText
	case StatusTimeOut:
		return constant.ChatTimeoutText
	default:
		return constant.ChatUnexpectedText
	}
}

// Service is what the chat core needs from the answer backend.
type Service interface {
	Ask(ctx context.Context, username, query string) (Response, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ask sends one prompt and decodes the reply. The service sometimes wraps
// its object in a one-element array; both shapes are accepted.
func (c *Client) Ask(ctx context.Context, username, query string) (Response, error) {
	if username == "" {
		username = constant.AnonymousUser
	}

	payload, err := json.Marshal(Request{Username: username, Query: query})
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+promptEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("answer request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("answer service error: status %d, body: %s", res.StatusCode, string(resBody))
	}

	return decodeResponse(resBody)
}

func decodeResponse(body []byte) (Response, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var wrapped []Response
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return Response{}, fmt.Errorf("unmarshal response array: %w", err)
		}
		if len(wrapped) == 0 {
			return Response{}, fmt.Errorf("empty response array")
		}
		return wrapped[0], nil
	}

	var out Response
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return Response{}, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}
