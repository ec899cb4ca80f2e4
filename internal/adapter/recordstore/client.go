package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"repair_tracker/internal/usecase/interfaces"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	tracerName       = "repair_tracker/internal/adapter/recordstore"
	maxErrorBody     = 4 << 10
	pathOrders       = "/api/orders"
	pathAppointments = "/api/appointments"
)

// Client talks to the Record Store REST API. It never retries; every failure
// is classified as interfaces.ErrNetworkFailure or a *interfaces.RejectionError.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
	logger  *zap.Logger
}

// NewClient builds a client for baseURL. A zero timeout means requests wait
// until the caller's context is done.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("record store base URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parse record store base URL: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer: otel.Tracer(tracerName),
		logger: logger,
	}, nil
}

// Orders returns the order endpoints as an interfaces.IOrderStore.
func (c *Client) Orders() *OrderStore {
	return &OrderStore{c: c}
}

// Appointments returns the appointment endpoints as an interfaces.IAppointmentStore.
func (c *Client) Appointments() *AppointmentStore {
	return &AppointmentStore{c: c}
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	ctx, span := c.tracer.Start(ctx, "recordstore."+op, trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.request.method", method), attribute.String("url.path", path)))
	defer span.End()

	err := c.roundTrip(ctx, method, path, in, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("[recordstore][client] request failed",
			zap.String("op", op), zap.String("method", method), zap.String("path", path), zap.Error(err))
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &interfaces.RejectionError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &interfaces.RejectionError{StatusCode: resp.StatusCode, Message: "malformed response body: " + err.Error()}
	}
	return nil
}

// errorMessage pulls a readable reason out of an error body: the "message"
// or "error" JSON field when present, the trimmed text otherwise.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if msg := strings.TrimSpace(body.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(body.Error); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(raw))
}
