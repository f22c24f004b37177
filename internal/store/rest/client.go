// Package rest implements the store client against the upstream REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lodi2001/mdc-v2-sub001/config"
	"github.com/lodi2001/mdc-v2-sub001/internal/entities"

	"go.uber.org/zap"
)

// Client talks to the upstream transaction/user store over HTTP. It holds no
// mutable state between calls; cancelling a request's context abandons it
// without side effects on the client.
type Client struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.StoreConfig
	baseURL string
	http    *http.Client
}

// New creates a REST store client instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Client {
	return &Client{
		baseCtx: ctx,
		log:     log.Named("store.rest"),
		cfg:     cfg.Store,
		baseURL: strings.TrimRight(cfg.Store.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Store.RequestTimeout,
		},
	}
}

// OnStart verifies the upstream store is reachable.
func (c *Client) OnStart(_ context.Context) error {
	ctx, cancel := context.WithTimeout(c.baseCtx, c.cfg.HealthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store health check: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("store health check: status %d", resp.StatusCode)
	}

	c.log.Infow("store reachable", "base_url", c.baseURL)
	return nil
}

// OnStop releases idle connections.
func (c *Client) OnStop(_ context.Context) error {
	c.http.CloseIdleConnections()
	return nil
}

// errorEnvelope is the store's rejection shape. Field-keyed errors carry
// human-readable reasons (e.g. errors.assigned_to for role violations).
type errorEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// doJSON issues one request and decodes a 2xx response into out. It never
// retries; transient failures surface as ErrStoreUnavailable for the caller
// to decide on.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrStoreUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return c.asError(resp)
}

// asError maps a non-2xx store response onto the domain error taxonomy.
// Validation rejections keep their field-keyed messages verbatim.
func (c *Client) asError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var env errorEnvelope
	_ = json.Unmarshal(raw, &env)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Neutral on this shared path; the endpoint wrappers narrow it.
		if env.Message != "" {
			return fmt.Errorf("%w: %s", entities.ErrNotFound, env.Message)
		}
		return entities.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(env.Errors) > 0 {
			return &entities.ValidationError{Fields: env.Errors}
		}
		if env.Message != "" {
			return fmt.Errorf("%w: %s", entities.ErrInvalidArgument, env.Message)
		}
		return entities.ErrInvalidArgument
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", entities.ErrStoreUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("store returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
}
