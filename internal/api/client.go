// Package api is the HTTP client for the glossary term API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"glossary/internal/glossary"
	"glossary/internal/jsonutil"
	"glossary/internal/telemetry"
)

// DefaultBaseURL is where the term API listens by default.
const DefaultBaseURL = "http://localhost:8000"

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// Client talks to the term API. It implements glossary.TermAPI.
// Requests carry no timeout of their own; bound them through the context.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  oteltrace.Tracer
}

var _ glossary.TermAPI = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer records a span per request.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a client for the API at baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		tracer:  noop.NewTracerProvider().Tracer("glossary/api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search lists terms whose name or definition contains keyword.
func (c *Client) Search(ctx context.Context, keyword string) ([]glossary.Term, error) {
	path := "/search/?" + url.Values{"keyword": {keyword}}.Encode()
	body, err := c.do(ctx, "search", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return jsonutil.UnmarshalArrayAllowEmpty[glossary.Term](body, "decode search response")
}

// Get fetches one term.
func (c *Client) Get(ctx context.Context, id int64) (glossary.Term, error) {
	var t glossary.Term
	body, err := c.do(ctx, "get", http.MethodGet, "/terms/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return t, err
	}
	err = jsonutil.UnmarshalWithContext(body, &t, "decode term")
	return t, err
}

// Create adds a term.
func (c *Client) Create(ctx context.Context, f glossary.Form) error {
	_, err := c.do(ctx, "create", http.MethodPost, "/add_term/", f)
	return err
}

// Update replaces every field of term id.
func (c *Client) Update(ctx context.Context, id int64, f glossary.Form) error {
	_, err := c.do(ctx, "update", http.MethodPut, "/update_term/"+strconv.FormatInt(id, 10), f)
	return err
}

// Delete removes term id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, "/delete_term/"+strconv.FormatInt(id, 10), nil)
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) (_ []byte, err error) {
	ctx, span := c.tracer.Start(ctx, "glossary.api."+op,
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.target", path),
		),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    jsonutil.ErrorMessage(body),
		}
	}
	return body, nil
}
