package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/geocoder89/userdesk/internal/domain/user"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultURL = "https://dummyjson.com/users"

var (
	ErrUnexpectedStatus = errors.New("unexpected status from users api")
	ErrMalformedPayload = errors.New("malformed users payload")
)

// Client reads the full user collection from a read-only endpoint. It never
// retries and sets no timeout of its own.
type Client struct {
	url  string
	http *http.Client
}

func New(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}

	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	return &Client{url: url, http: httpClient}
}

func (c *Client) URL() string {
	return c.url
}

func (c *Client) Fetch(ctx context.Context) ([]user.User, error) {
	ctx, span := otel.Tracer("userdesk/source").Start(ctx, "source.fetch")
	defer span.End()

	users, err := c.fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("users.count", len(users)))
	return users, nil
}

func (c *Client) fetch(ctx context.Context) ([]user.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	var env user.Envelope

	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	// a missing or null users key decodes to nil
	if env.Users == nil {
		return nil, fmt.Errorf("%w: no users array", ErrMalformedPayload)
	}

	return env.Users, nil
}
