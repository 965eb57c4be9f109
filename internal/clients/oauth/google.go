package oauth

import (
	"encoding/json"
	"fmt"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/config"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	googleScope       = "openid email profile"
)

func NewGoogle(cfg config.Config) *Client {
	return New(entity.ProviderGoogle, Endpoints{
		AuthURL:     googleAuthURL,
		TokenURL:    googleTokenURL,
		UserInfoURL: googleUserInfoURL,
	}, Config{
		ClientID:      cfg.Google.ClientID,
		ClientSecret:  cfg.Google.ClientSecret,
		RedirectURL:   cfg.Google.CallbackURL,
		Scope:         googleScope,
		Timeout:       cfg.OAuth.Timeout,
		RetryAttempts: cfg.OAuth.RetryAttempts,
	})
}

type googleProfile struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Name       string `json:"name"`
}

func decodeGoogleProfile(body []byte) (entity.OAuthProfile, error) {
	var p googleProfile
	if err := json.Unmarshal(body, &p); err != nil {
		return entity.OAuthProfile{}, fmt.Errorf("%w: %w", errInvalidProfile, err)
	}

	first := p.GivenName
	if first == "" && p.FamilyName == "" {
		first = p.Name
	}

	return entity.OAuthProfile{
		Email:     p.Email,
		FirstName: first,
		LastName:  p.FamilyName,
	}, nil
}
