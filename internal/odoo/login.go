package odoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odoo-term/odterm/internal/domain"
)

var csrfPattern = regexp.MustCompile(`name="csrf_token" value="([^"]*)"`)

// Login fetches the login form, posts the credentials with its CSRF token
// and returns a session holding the authenticated cookie jar.
func (c *Client) Login(ctx context.Context, baseURL, user, password string) (*domain.Session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("odoo: cookie jar: %w", err)
	}
	hc := c.httpClient(jar)
	loginURL := endpoint(baseURL, loginPath)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, loginURL, nil)
	if err != nil {
		return nil, fmt.Errorf("odoo: build login request: %w", err)
	}
	response, body, err := c.do(hc, request)
	if err != nil {
		return nil, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &AuthError{URL: baseURL, StatusCode: response.StatusCode, Reason: "login page unavailable"}
	}

	match := csrfPattern.FindSubmatch(body)
	if match == nil {
		return nil, &AuthError{URL: baseURL, Reason: "login page has no csrf token, check the host and port"}
	}

	form := url.Values{
		"csrf_token": {string(match[1])},
		"login":      {user},
		"password":   {password},
	}
	request, err = http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("odoo: build login request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, _, err = c.do(hc, request)
	if err != nil {
		return nil, err
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &AuthError{URL: baseURL, StatusCode: response.StatusCode, Reason: "login rejected"}
	}
	// Odoo re-renders the form in place when the credentials are wrong.
	if response.Request != nil && response.Request.URL.Path == loginPath {
		return nil, &AuthError{URL: baseURL, Reason: "wrong login/password"}
	}

	c.logger.Info("odoo: logged in to %s as %s", baseURL, user)

	return &domain.Session{
		ID:          uuid.NewString(),
		BaseURL:     strings.TrimRight(baseURL, "/"),
		User:        user,
		Jar:         jar,
		ConnectedAt: time.Now(),
	}, nil
}
