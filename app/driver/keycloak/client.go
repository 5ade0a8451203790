package keycloak

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"auth-gateway/app/config"
	"auth-gateway/app/domain"
)

// Client is a thin typed wrapper over the Keycloak HTTP API. It issues the
// remote calls the orchestrator needs and maps status codes to domain
// errors; it embeds no business logic.
type Client struct {
	httpClient *http.Client
	baseURL    string
	realm      string

	adminClientID     string
	adminClientSecret string
	oauthClientID     string
	oauthClientSecret string

	logger *slog.Logger
}

// NewClient creates a new Keycloak client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.KeycloakBaseURL) {
		return nil, fmt.Errorf("invalid Keycloak base URL: %s", cfg.KeycloakBaseURL)
	}

	client := &Client{
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		baseURL:           strings.TrimRight(cfg.KeycloakBaseURL, "/"),
		realm:             cfg.KeycloakRealm,
		adminClientID:     cfg.KeycloakAdminClientID,
		adminClientSecret: cfg.KeycloakAdminClientSecret,
		oauthClientID:     cfg.OAuthClientID,
		oauthClientSecret: cfg.OAuthClientSecret,
		logger:            logger.With("component", "keycloak_client"),
	}

	logger.Info("Keycloak client initialized",
		"base_url", client.baseURL,
		"realm", client.realm)

	return client, nil
}

// tokenEndpointResponse is the raw shape of the OIDC token endpoint.
type tokenEndpointResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// createUserRequest is the admin create-user body. One non-temporary
// password credential, enabled from the start.
type createUserRequest struct {
	Email       string           `json:"email"`
	Username    string           `json:"username"`
	Enabled     bool             `json:"enabled"`
	FirstName   string           `json:"firstName,omitempty"`
	LastName    string           `json:"lastName,omitempty"`
	Credentials []userCredential `json:"credentials"`
}

type userCredential struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

type userRepresentation struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Enabled       bool   `json:"enabled"`
	EmailVerified bool   `json:"emailVerified"`
}

// IssuePasswordToken exchanges user credentials for tokens via the password
// grant, using the user-facing OAuth client.
func (c *Client) IssuePasswordToken(ctx context.Context, creds domain.LoginCredentials) (*domain.TokenResponse, error) {
	form := url.Values{
		"grant_type":    {"password"},
		"client_id":     {c.oauthClientID},
		"client_secret": {c.oauthClientSecret},
		"username":      {creds.Email},
		"password":      {creds.Password},
	}

	raw, err := c.postTokenForm(ctx, form)
	if err != nil {
		return nil, err
	}

	return &domain.TokenResponse{
		AccessToken:  raw.AccessToken,
		RefreshToken: raw.RefreshToken,
		ExpiresIn:    raw.ExpiresIn,
		TokenType:    raw.TokenType,
	}, nil
}

// IssueClientCredentialsToken obtains a privileged token via the
// client-credentials grant. Consumed only by the admin token provider.
func (c *Client) IssueClientCredentialsToken(ctx context.Context) (domain.AdminToken, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.adminClientID},
		"client_secret": {c.adminClientSecret},
	}

	raw, err := c.postTokenForm(ctx, form)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Rejected admin credentials are a deployment problem, not a
			// user one.
			return domain.AdminToken{}, domain.ErrIdpRejectedAdmin
		}
		return domain.AdminToken{}, err
	}
	if raw.AccessToken == "" || raw.ExpiresIn <= 0 {
		return domain.AdminToken{}, fmt.Errorf("token endpoint returned empty grant: %w", domain.ErrMalformedUpstreamResponse)
	}

	return domain.AdminToken{
		Value:     raw.AccessToken,
		ExpiresAt: time.Now().Add(time.Duration(raw.ExpiresIn) * time.Second),
	}, nil
}

func (c *Client) postTokenForm(ctx context.Context, form url.Values) (*tokenEndpointResponse, error) {
	endpoint := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", c.baseURL, c.realm)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("token endpoint unreachable", "error", err)
		return nil, fmt.Errorf("token endpoint: %w", domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("token endpoint rejected grant",
			"grant_type", form.Get("grant_type"),
			"status", resp.StatusCode)
		return nil, classifyTokenStatus(resp.StatusCode)
	}

	var raw tokenEndpointResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding token response: %w", domain.ErrMalformedUpstreamResponse)
	}
	return &raw, nil
}

// CreateUser creates an identity and returns the external id assigned by
// Keycloak. The id is the trailing path segment of the Location header; a
// response it cannot be extracted from fails hard, because a saga that does
// not know the id cannot be compensated later.
func (c *Client) CreateUser(ctx context.Context, reg *domain.RegistrationRequest, adminToken string) (string, error) {
	body := createUserRequest{
		Email:     reg.Email,
		Username:  reg.Email,
		Enabled:   true,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Credentials: []userCredential{
			{Type: "password", Value: reg.Password, Temporary: false},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode create-user body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.adminUsersURL(""), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build create-user request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("create-user call failed", "error", err)
		return "", fmt.Errorf("create user: %w", domain.ErrUpstreamUnavailable)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		c.logger.Warn("create-user rejected", "status", resp.StatusCode, "email", reg.Email)
		return "", classifyAdminStatus(resp.StatusCode)
	}

	externalID, err := extractExternalID(resp.Header.Get("Location"))
	if err != nil {
		c.logger.Error("create-user response missing usable Location header",
			"location", resp.Header.Get("Location"))
		return "", err
	}

	return externalID, nil
}

// DeleteUser removes an identity. The caller decides how to treat
// domain.ErrIdentityNotFound; for compensation an absent identity is the
// goal state.
func (c *Client) DeleteUser(ctx context.Context, externalID, adminToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.adminUsersURL(externalID), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete-user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("delete-user call failed", "external_id", externalID, "error", err)
		return fmt.Errorf("delete user: %w", domain.ErrUpstreamUnavailable)
	}
	defer drainAndClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return domain.ErrIdentityNotFound
	default:
		c.logger.Warn("delete-user rejected", "external_id", externalID, "status", resp.StatusCode)
		return classifyAdminStatus(resp.StatusCode)
	}
}

// GetUser fetches the IdP's record for an identity.
func (c *Client) GetUser(ctx context.Context, externalID, adminToken string) (*domain.IdentityRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.adminUsersURL(externalID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get-user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("get-user call failed", "external_id", externalID, "error", err)
		return nil, fmt.Errorf("get user: %w", domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrIdentityNotFound
	default:
		return nil, classifyAdminStatus(resp.StatusCode)
	}

	var rep userRepresentation
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decoding user representation: %w", domain.ErrMalformedUpstreamResponse)
	}

	return &domain.IdentityRecord{
		ExternalID:    rep.ID,
		Email:         rep.Email,
		Enabled:       rep.Enabled,
		EmailVerified: rep.EmailVerified,
	}, nil
}

// SendVerifyEmail asks Keycloak to dispatch a verification email.
func (c *Client) SendVerifyEmail(ctx context.Context, externalID, adminToken string) error {
	endpoint := c.adminUsersURL(externalID) + "/send-verify-email"

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build send-verify-email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("send-verify-email call failed", "external_id", externalID, "error", err)
		return fmt.Errorf("send verify email: %w", domain.ErrUpstreamUnavailable)
	}
	defer drainAndClose(resp.Body)

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return domain.ErrIdentityNotFound
	default:
		return classifyAdminStatus(resp.StatusCode)
	}
}

func (c *Client) adminUsersURL(externalID string) string {
	base := fmt.Sprintf("%s/admin/realms/%s/users", c.baseURL, c.realm)
	if externalID == "" {
		return base
	}
	return base + "/" + url.PathEscape(externalID)
}

// extractExternalID pulls the new resource id from a location-style header.
// Failure here is domain.ErrMalformedUpstreamResponse, never a placeholder
// value.
func extractExternalID(location string) (string, error) {
	if location == "" {
		return "", fmt.Errorf("missing Location header: %w", domain.ErrMalformedUpstreamResponse)
	}
	parsed, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("unparseable Location header %q: %w", location, domain.ErrMalformedUpstreamResponse)
	}
	id := path.Base(parsed.Path)
	if id == "" || id == "." || id == "/" || id == "users" {
		return "", fmt.Errorf("Location header %q carries no resource id: %w", location, domain.ErrMalformedUpstreamResponse)
	}
	return id, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}

func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
