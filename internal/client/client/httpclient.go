package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type response struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (string, error) {
	return c.post(ctx, "/register", credentials{Email: email, Password: password})
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	return c.post(ctx, "/login", credentials{Email: email, Password: password})
}

func (c *HTTPClient) post(ctx context.Context, path string, body any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var r response
	// non-JSON bodies (proxies, 404 pages) fall back to the status text
	_ = json.Unmarshal(raw, &r)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ServerError{Status: resp.StatusCode, Message: r.Error}
	}
	return r.Message, nil
}
