package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/httpclient"
)

// SendResult is the server's answer to a send: the assistant reply
// and the session id the exchange was recorded under. The session id
// may differ from the one sent when the server rotated it.
type SendResult struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

// HTTPError is a non-2xx response from the chat API.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("chat api request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// Client talks to the cmd/api chat endpoints. It implements Backend.
type Client struct {
	base *httpclient.BaseClient
}

// New builds a Client for the API at baseURL (e.g. "http://localhost:8000/api").
func New(baseURL string) *Client {
	hc := httpclient.New(httpclient.Config{Timeout: 2 * time.Minute})
	return &Client{base: httpclient.NewBaseClientWithClient(hc, baseURL)}
}

type sendRequest struct {
	FarmID    string `json:"farm_id"`
	Message   string `json:"message"`
	Lang      string `json:"lang,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

const maxBodySize = 5 * 1024 * 1024

// SendMessage posts a user message and returns the reply.
func (c *Client) SendMessage(ctx context.Context, farmID, message, lang, sessionID string) (SendResult, error) {
	payload := sendRequest{FarmID: farmID, Message: message, Lang: lang, SessionID: sessionID}
	buf, err := json.Marshal(payload)
	if err != nil {
		return SendResult{}, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/chat/message", nil, bytes.NewReader(buf))
	if err != nil {
		return SendResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return SendResult{}, err
	}

	body, err := httpclient.ReadBody(resp, maxBodySize)
	if err != nil {
		return SendResult{}, fmt.Errorf("chat api response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return SendResult{}, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out SendResult
	if err := json.Unmarshal(body, &out); err != nil {
		return SendResult{}, err
	}
	return out, nil
}

// History returns up to limit messages for the farm. The result is
// raw; normalization and ordering are the reconciler's job.
func (c *Client) History(ctx context.Context, farmID string, limit int) ([]Message, error) {
	query := url.Values{}
	query.Set("farm_id", farmID)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/chat/history", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}

	body, err := httpclient.ReadBody(resp, maxBodySize)
	if err != nil {
		return nil, fmt.Errorf("chat api response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out []Message
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type clearResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

// ClearHistory deletes the farm's server-side history and returns the
// number of messages removed.
func (c *Client) ClearHistory(ctx context.Context, farmID string) (int64, error) {
	query := url.Values{}
	query.Set("farm_id", farmID)

	req, err := c.base.NewRequest(ctx, http.MethodDelete, "/chat/history", query, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return 0, err
	}

	body, err := httpclient.ReadBody(resp, maxBodySize)
	if err != nil {
		return 0, fmt.Errorf("chat api response read failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out clearResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}
