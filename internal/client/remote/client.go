// Package remote talks to the authoritative memo service. Every failure
// is reported as one of the model error values, so callers never see
// raw HTTP or transport errors.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/memoshare/memoshare/internal/client/model"
)

const (
	defaultRequestTimeout = 15 * time.Second
	defaultProbeTimeout   = 3 * time.Second
)

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	ProbeTimeout   time.Duration
	// Transport overrides the HTTP transport, used by tests to wire the
	// client straight into an in-process server.
	Transport http.RoundTripper
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	probeTimeout time.Duration
}

// MemoFields carries the caller-editable part of a memo.
type MemoFields struct {
	Title    string
	Content  string
	IsShared bool
}

func NewClient(cfg Config) *Client {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.ProbeTimeout == 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: cfg.Transport,
		},
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		probeTimeout: cfg.ProbeTimeout,
	}
}

func (c *Client) ListMine(ctx context.Context, token string) ([]model.Memo, error) {
	var payloads []memoPayload
	if err := c.do(ctx, http.MethodGet, "/memos/my", token, nil, &payloads); err != nil {
		return nil, err
	}
	return toMemos(payloads), nil
}

func (c *Client) ListShared(ctx context.Context, token string) ([]model.Memo, error) {
	var payloads []memoPayload
	if err := c.do(ctx, http.MethodGet, "/memos/shared", token, nil, &payloads); err != nil {
		return nil, err
	}
	return toMemos(payloads), nil
}

func (c *Client) Get(ctx context.Context, token, id string) (model.Memo, error) {
	var payload memoPayload
	if err := c.do(ctx, http.MethodGet, "/memos/"+id, token, nil, &payload); err != nil {
		return model.Memo{}, err
	}
	return payload.toMemo(), nil
}

func (c *Client) Create(ctx context.Context, token string, fields MemoFields) (model.Memo, error) {
	request := memoRequest{Title: fields.Title, Content: fields.Content, IsShared: fields.IsShared}

	var payload memoPayload
	if err := c.do(ctx, http.MethodPost, "/memos", token, request, &payload); err != nil {
		return model.Memo{}, err
	}
	return payload.toMemo(), nil
}

func (c *Client) Update(ctx context.Context, token, id string, fields MemoFields) (model.Memo, error) {
	request := memoRequest{Title: fields.Title, Content: fields.Content, IsShared: fields.IsShared}

	var payload memoPayload
	if err := c.do(ctx, http.MethodPut, "/memos/"+id, token, request, &payload); err != nil {
		return model.Memo{}, err
	}
	return payload.toMemo(), nil
}

func (c *Client) Delete(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/memos/"+id, token, nil, nil)
}

// Grant shares a memo with another user. The service answers a bad
// request both for duplicate grants and unknown grantees, which in the
// client taxonomy is a conflict on the share relation.
func (c *Client) Grant(ctx context.Context, token, memoID, userID string) error {
	err := c.do(ctx, http.MethodPost, "/memos/"+memoID+"/share", token, shareRequest{SharedWithUserID: userID}, nil)
	if errors.Is(err, model.ErrValidation) {
		return fmt.Errorf("%w: %v", model.ErrConflict, err)
	}
	return err
}

func (c *Client) Revoke(ctx context.Context, token, memoID, userID string) error {
	return c.do(ctx, http.MethodDelete, "/memos/"+memoID+"/share/"+userID, token, nil, nil)
}

// Probe answers whether the service responds within the probe timeout.
// It never returns an error; any failure at all collapses to false.
func (c *Client) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer response.Body.Close()

	return response.StatusCode == http.StatusOK
}

func (c *Client) do(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%w: %v", model.ErrValidation, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrUnreachable, err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return statusError(response)
	}

	if out != nil {
		if err := json.NewDecoder(response.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: malformed response body: %v", model.ErrServer, err)
		}
	}

	return nil
}

func statusError(response *http.Response) error {
	var kind error
	switch response.StatusCode {
	case http.StatusBadRequest:
		kind = model.ErrValidation
	case http.StatusUnauthorized:
		kind = model.ErrUnauthenticated
	case http.StatusForbidden:
		kind = model.ErrForbidden
	case http.StatusNotFound:
		kind = model.ErrNotFound
	case http.StatusConflict:
		kind = model.ErrConflict
	default:
		kind = model.ErrServer
	}

	var body errorResponse
	if err := json.NewDecoder(response.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("%w: %s", kind, body.Message)
	}
	return fmt.Errorf("%w: status %d", kind, response.StatusCode)
}
