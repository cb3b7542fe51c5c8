// Package api is the authenticated request gateway to the PharmaScout
// service. Every authenticated call attaches the stored bearer credential;
// a 401 answer clears the credential store before surfacing, so callers can
// route straight to re-authentication.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pharmascout/internal/credential"
	"pharmascout/internal/model"
)

// Client is the gateway. It performs no retries; a transient failure is
// surfaced once and the caller decides what to do.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *credential.Store
	logger  *zap.Logger
}

// NewClient creates a gateway against baseURL using the given credential
// store. A nil logger is replaced with a no-op one.
func NewClient(baseURL string, creds *credential.Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		creds:   creds,
		logger:  logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token via the form-encoded /token
// endpoint and stores it on success.
func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tok tokenResponse
	if err := c.send(req, &tok); err != nil {
		return err
	}
	if tok.AccessToken == "" {
		return &MalformedResponseError{Err: fmt.Errorf("token response missing access_token")}
	}
	if err := c.creds.Set(tok.AccessToken); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	return nil
}

// Register creates an account. The service takes registration fields as query
// parameters, not a body. The created profile is returned; the caller still
// has to log in afterwards.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) (*model.UserProfile, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("password", password)
	q.Set("first_name", firstName)
	q.Set("last_name", lastName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/register?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var profile model.UserProfile
	if err := c.send(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Evaluate submits a query for scoring and returns the validated report.
// This is a single request/response exchange; the service runs its agent
// pipeline inline, so the call can take minutes.
func (c *Client) Evaluate(ctx context.Context, query string) (*model.Report, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}
	req, err := c.authedRequest(ctx, http.MethodPost, "/evaluate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var report model.Report
	if err := c.send(req, &report); err != nil {
		return nil, err
	}
	if err := report.Validate(); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}
	return &report, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*model.UserProfile, error) {
	req, err := c.authedRequest(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return nil, err
	}
	var profile model.UserProfile
	if err := c.send(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Reports fetches the user's saved reports in creation order, as the service
// returns them. Presentation-order reversal is the portfolio's concern.
func (c *Client) Reports(ctx context.Context) ([]model.Report, error) {
	req, err := c.authedRequest(ctx, http.MethodGet, "/users/me/reports", nil)
	if err != nil {
		return nil, err
	}
	var reports []model.Report
	if err := c.send(req, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// authedRequest builds a request carrying the bearer credential. When no
// credential is held the call is refused locally, before any network attempt.
func (c *Client) authedRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	tok, ok := c.creds.Token()
	if !ok {
		return nil, ErrUnauthenticated
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	return req, nil
}

// send executes the request and decodes a successful body into out. Response
// classification follows the gateway error taxonomy.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.logger.Debug("gateway request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", req.Header.Get("X-Request-ID")))

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("credential rejected, clearing store",
			zap.String("path", req.URL.Path))
		if err := c.creds.Clear(); err != nil {
			c.logger.Error("failed to clear credential store", zap.Error(err))
		}
		return ErrAuthRejected
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailedError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(resp.Body, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedResponseError{Err: err}
	}
	return nil
}

// serverMessage extracts the service's {"detail": "..."} error body, falling
// back to a generic message when the body has some other shape.
func serverMessage(body io.Reader, status int) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err == nil {
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &detail) == nil && detail.Detail != "" {
			return detail.Detail
		}
	}
	return fmt.Sprintf("service request failed with status %d", status)
}
