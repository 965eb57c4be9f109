package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/transport"
)

const (
	defaultRetryWaitMin = 500 * time.Millisecond
	defaultRetryWaitMax = 5 * time.Second
	maxBodySize         = 1 << 20
)

type Endpoints struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

type Config struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	Scope         string
	Timeout       time.Duration
	RetryAttempts int
}

type profileDecoder func(body []byte) (entity.OAuthProfile, error)

type Client struct {
	client    *http.Client
	provider  entity.Provider
	endpoints Endpoints
	cfg       Config
	decode    profileDecoder
}

func New(provider entity.Provider, endpoints Endpoints, cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)

	retryClient.Logger = nil

	// Authorization codes are single use, so only transport failures are retried.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	decode := decodeGoogleProfile
	if provider == entity.ProviderMicrosoft {
		decode = decodeMicrosoftProfile
	}

	return &Client{
		client:    retryClient.StandardClient(),
		provider:  provider,
		endpoints: endpoints,
		cfg:       cfg,
		decode:    decode,
	}
}

func (c *Client) AuthURL(state string) string {
	params := url.Values{
		"client_id":     {c.cfg.ClientID},
		"redirect_uri":  {c.cfg.RedirectURL},
		"response_type": {"code"},
		"scope":         {c.cfg.Scope},
		"state":         {state},
	}

	return fmt.Sprintf("%s?%s", c.endpoints.AuthURL, params.Encode())
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
	IDToken     string `json:"id_token"`
}

type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("client_id", c.cfg.ClientID)
	data.Set("client_secret", c.cfg.ClientSecret)
	data.Set("redirect_uri", c.cfg.RedirectURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoints.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("%w: %s: decode token response: %w", entity.ErrOAuthProvider, c.provider, err)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: %s: empty access token", entity.ErrOAuthProvider, c.provider)
	}

	return tokenResp.AccessToken, nil
}

func (c *Client) UserProfile(ctx context.Context, accessToken string) (entity.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoints.UserInfoURL, nil)
	if err != nil {
		return entity.OAuthProfile{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return entity.OAuthProfile{}, err
	}

	profile, err := c.decode(body)
	if err != nil {
		return entity.OAuthProfile{}, fmt.Errorf("%w: %s: decode profile: %w", entity.ErrOAuthProvider, c.provider, err)
	}

	if profile.Email == "" {
		return entity.OAuthProfile{}, entity.ErrOAuthEmailMissing
	}

	profile.Provider = c.provider

	return profile, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: send request: %w", entity.ErrOAuthProvider, c.provider, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %w", entity.ErrOAuthProvider, c.provider, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ParseProviderError(c.provider, resp.StatusCode, body)
	}

	return body, nil
}

// ParseProviderError maps an unsuccessful provider response to a domain error.
func ParseProviderError(provider entity.Provider, statusCode int, body []byte) error {
	var errResp ErrorResponse

	msg := http.StatusText(statusCode)
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		msg = errResp.Error
		if errResp.ErrorDescription != "" {
			msg += ": " + errResp.ErrorDescription
		}
	}

	if statusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s: %s", entity.ErrOAuthProviderLimit, provider, msg)
	}

	return fmt.Errorf("%w: %s: status %d: %s", entity.ErrOAuthProvider, provider, statusCode, msg)
}

var errInvalidProfile = errors.New("invalid profile payload")
