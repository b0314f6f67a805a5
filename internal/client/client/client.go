package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Entry is one leaderboard row.
type Entry struct {
	UserName  string `json:"username"`
	HighScore int64  `json:"highScore"`
}

// Client is the surface the CLI needs from the server.
type Client interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Save(ctx context.Context, payload json.RawMessage) error
	Load(ctx context.Context, username string) (json.RawMessage, error)
	Leaderboard(ctx context.Context) ([]Entry, error)
	Ping(ctx context.Context) error
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

type envelope struct {
	OK    bool            `json:"ok"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
	Save  json.RawMessage `json:"save"`
	Top   []Entry         `json:"top"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	body, _ := json.Marshal(credentials{Username: username, Password: password})
	_, err := c.do(ctx, http.MethodPost, "/api/register", body)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	body, _ := json.Marshal(credentials{Username: username, Password: password})
	_, err := c.do(ctx, http.MethodPost, "/api/login", body)
	return err
}

func (c *HTTPClient) Save(ctx context.Context, payload json.RawMessage) error {
	_, err := c.do(ctx, http.MethodPost, "/api/save", payload)
	return err
}

// Load returns nil when the server has no save for username.
func (c *HTTPClient) Load(ctx context.Context, username string) (json.RawMessage, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/load?username="+url.QueryEscape(username), nil)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(bytes.TrimSpace(env.Save), []byte("null")) {
		return nil, nil
	}
	return env.Save, nil
}

func (c *HTTPClient) Leaderboard(ctx context.Context) ([]Entry, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/leaderboard", nil)
	if err != nil {
		return nil, err
	}
	return env.Top, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/healthz", nil)
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) (*envelope, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	env := &envelope{}
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK || !env.OK {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error, Code: env.Code}
	}
	return env, nil
}
