package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	planner "github.com/shahriyarnawaz/Planner"
)

const (
	loginEndpoint   = "/auth/login/"
	profileEndpoint = "/users/profile/"

	headerRequestID = "X-Request-ID"
)

// Config defines a public type used by Planner session APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	LoginRatePerMin int
	LoginBurst      int
}

// Client is the HTTP implementation of [planner.AuthAPI] against the
// task-planning backend. Every request carries a fresh X-Request-ID so
// backend logs can be correlated with client audit events.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

var _ planner.AuthAPI = (*Client)(nil)

// NewClient describes the newclient operation and its observable behavior.
//
// NewClient may return an error when input validation, dependency calls, or security checks fail.
// NewClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL required")
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return nil, errors.New("base URL must be an http(s) URL")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}

	if cfg.LoginRatePerMin > 0 {
		burst := cfg.LoginBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.LoginRatePerMin)), burst)
	}

	return c, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type loginResponse struct {
	User   planner.UserRecord `json:"user"`
	Tokens tokenPair          `json:"tokens"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Login describes the login operation and its observable behavior.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Login(ctx context.Context, identifier, password string) (planner.LoginPayload, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		return planner.LoginPayload{}, planner.ErrLoginRateLimited
	}

	body, err := json.Marshal(loginRequest{Email: identifier, Password: password})
	if err != nil {
		return planner.LoginPayload{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginEndpoint, bytes.NewReader(body))
	if err != nil {
		return planner.LoginPayload{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return planner.LoginPayload{}, fmt.Errorf("%w: %v", planner.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var decoded loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return planner.LoginPayload{}, fmt.Errorf("%w: malformed login response", planner.ErrLoginFailed)
		}
		if decoded.Tokens.Access == "" {
			return planner.LoginPayload{}, fmt.Errorf("%w: login response missing access token", planner.ErrLoginFailed)
		}
		return planner.LoginPayload{
			AccessToken:  decoded.Tokens.Access,
			RefreshToken: decoded.Tokens.Refresh,
			User:         decoded.User,
		}, nil

	case resp.StatusCode == http.StatusTooManyRequests:
		return planner.LoginPayload{}, planner.ErrLoginRateLimited

	case resp.StatusCode >= http.StatusInternalServerError:
		return planner.LoginPayload{}, planner.ErrBackendUnavailable

	default:
		var decoded errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
		if decoded.Detail != "" {
			return planner.LoginPayload{}, fmt.Errorf("%w: %s", planner.ErrLoginFailed, decoded.Detail)
		}
		return planner.LoginPayload{}, planner.ErrLoginFailed
	}
}

// Profile describes the profile operation and its observable behavior.
//
// Profile may return an error when input validation, dependency calls, or security checks fail.
// Profile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Profile(ctx context.Context, accessToken string) (planner.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profileEndpoint, nil)
	if err != nil {
		return planner.Profile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set(headerRequestID, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return planner.Profile{}, fmt.Errorf("%w: %v", planner.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return planner.Profile{}, planner.ErrBackendUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return planner.Profile{}, fmt.Errorf("profile fetch rejected: status %d", resp.StatusCode)
	}

	var profile planner.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return planner.Profile{}, fmt.Errorf("malformed profile response: %w", err)
	}

	return profile, nil
}
