// Package api is the REST client for the storefront chat and notification endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/clippy-oss/homie/storefront-realtime/internal/metrics"
)

const maxResponseBytes = 4 << 20

type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient returns a client that sends the token as a bearer credential on every request.
func NewClient(cfg ClientConfig, log zerolog.Logger) *Client {
	base := &http.Client{Timeout: cfg.Timeout}
	httpClient := base
	if cfg.Token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "Bearer",
		}))
		httpClient.Timeout = cfg.Timeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + "/api",
		http:    httpClient,
		log:     log,
	}
}

// Error is returned for non-2xx responses and for envelopes with success=false.
type Error struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data,omitempty"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RESTDuration.WithLabelValues(method, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	metrics.RESTDuration.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil {
			if env.Message != "" {
				apiErr.Message = env.Message
			}
			apiErr.Code = env.ErrorCode
		}
		c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg(apiErr.Message)
		return apiErr
	}
	if decodeErr != nil {
		return fmt.Errorf("%s %s: decode envelope: %w", method, path, decodeErr)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg, Code: env.ErrorCode}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}
