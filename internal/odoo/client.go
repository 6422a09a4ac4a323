// Package odoo talks to an Odoo server over its web endpoints: the
// /web/login form for authentication and /web/dataset/call_kw for
// JSON-RPC model calls.
package odoo

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/log"
)

const (
	loginPath  = "/web/login"
	callKwPath = "/web/dataset/call_kw"

	// DefaultTimeout bounds a single HTTP exchange.
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 32 << 20
)

// Client is a stateless Odoo transport. Authentication state lives in the
// domain.Session returned by Login, so one Client serves any number of
// sessions.
type Client struct {
	transport http.RoundTripper
	timeout   time.Duration
	logger    domain.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l domain.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		transport: http.DefaultTransport,
		timeout:   DefaultTimeout,
		logger:    log.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL builds the server root from the connect flags.
func BaseURL(host string, port int, ssl bool) string {
	scheme := "http"
	if ssl {
		scheme = "https"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
	}
	return u.String()
}

func (c *Client) httpClient(jar http.CookieJar) *http.Client {
	return &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
		Jar:       jar,
	}
}

func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// do sends request and returns the final response with its body read.
func (c *Client) do(hc *http.Client, request *http.Request) (*http.Response, []byte, error) {
	start := time.Now()
	response, err := hc.Do(request)
	if err != nil {
		return nil, nil, fmt.Errorf("odoo: %s %s: %w", request.Method, request.URL.Path, err)
	}
	defer func() { _ = response.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("odoo: read %s response: %w", request.URL.Path, err)
	}

	c.logger.Debug("odoo: %s %s -> %d in %s", request.Method, request.URL.Path, response.StatusCode, time.Since(start))
	return response, body, nil
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the JSON-RPC id to use for the
// next Call, so callers can journal the id they sent.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
