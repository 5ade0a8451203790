package userprofile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"auth-gateway/app/config"
	"auth-gateway/app/domain"
)

// Client talks to the downstream User Profile Service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a new user profile service client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(cfg.UserServiceURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid user service URL: %s", cfg.UserServiceURL)
	}

	client := &Client{
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		baseURL: strings.TrimRight(cfg.UserServiceURL, "/"),
		logger:  logger.With("component", "userprofile_client"),
	}

	logger.Info("user profile client initialized", "base_url", client.baseURL)
	return client, nil
}

// CreateProfile posts a new profile record. callerToken, when present, is
// forwarded as the bearer token.
func (c *Client) CreateProfile(ctx context.Context, profile *domain.UserProfile, callerToken string) (*domain.UserProfile, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build create-profile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if callerToken != "" {
		req.Header.Set("Authorization", "Bearer "+callerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("create-profile call failed", "external_id", profile.ExternalID, "error", err)
		return nil, fmt.Errorf("create profile: %w", domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusConflict:
		return nil, domain.ErrProfileConflict
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrUpstreamAuth
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("profile service status %d: %w", resp.StatusCode, domain.ErrInvalidInput)
	default:
		c.logger.Warn("create-profile rejected",
			"external_id", profile.ExternalID,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("profile service status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var created domain.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", domain.ErrMalformedUpstreamResponse)
	}
	return &created, nil
}

// GetProfileByExternalID looks up a profile record; 404 becomes
// domain.ErrProfileNotFound.
func (c *Client) GetProfileByExternalID(ctx context.Context, externalID string) (*domain.UserProfile, error) {
	endpoint := fmt.Sprintf("%s?externalId=%s", c.baseURL, url.QueryEscape(externalID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get-profile request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("get-profile call failed", "external_id", externalID, "error", err)
		return nil, fmt.Errorf("get profile: %w", domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrProfileNotFound
	default:
		return nil, fmt.Errorf("profile service status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	var profile domain.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", domain.ErrMalformedUpstreamResponse)
	}
	return &profile, nil
}
