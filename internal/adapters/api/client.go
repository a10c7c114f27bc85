package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseBytes = 1 << 20

// ResultKind is the raw transport outcome shape, before classification.
type ResultKind string

const (
	ResultSuccess      ResultKind = "success"
	ResultHTTPError    ResultKind = "http_error"
	ResultNetworkError ResultKind = "network_error"
	ResultDecodeError  ResultKind = "decode_error"
)

// Result is one terminal transport outcome. Body is set for success and
// HTTP-error outcomes, StatusCode for HTTP errors, Err for network and
// decode failures.
type Result struct {
	Kind       ResultKind
	StatusCode int
	Body       []byte
	Err        error
}

// Client issues requests against the parent API. It is safe for concurrent
// use; batch fan-out runs many calls through one client at once.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Get executes an authorized GET and returns the raw outcome. It never
// returns an error; every failure is folded into the Result shape so the
// caller can classify it.
func (c *Client) Get(ctx context.Context, path, token string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.absoluteURL(path), nil)
	if err != nil {
		return Result{Kind: ResultNetworkError, Err: err}
	}
	c.applyAuthorization(req, token)

	return c.do(req)
}

// Post executes an authorized POST. A nil body sends an empty payload.
func (c *Client) Post(ctx context.Context, path, token string, body []byte) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.absoluteURL(path), bytes.NewReader(body))
	if err != nil {
		return Result{Kind: ResultNetworkError, Err: err}
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	c.applyAuthorization(req, token)

	return c.do(req)
}

func (c *Client) do(req *http.Request) Result {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Kind: ResultNetworkError, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{Kind: ResultNetworkError, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Kind: ResultHTTPError, StatusCode: resp.StatusCode, Body: payload}
	}

	return Result{Kind: ResultSuccess, StatusCode: resp.StatusCode, Body: payload}
}

func (c *Client) applyAuthorization(req *http.Request, token string) {
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) absoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
