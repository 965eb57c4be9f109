package oauth

import (
	"encoding/json"
	"fmt"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/config"
)

const (
	microsoftLoginURL    = "https://login.microsoftonline.com"
	microsoftUserInfoURL = "https://graph.microsoft.com/v1.0/me"
	microsoftScope       = "user.read"
)

func NewMicrosoft(cfg config.Config) *Client {
	base := fmt.Sprintf("%s/%s/oauth2/v2.0", microsoftLoginURL, cfg.Microsoft.Tenant)

	return New(entity.ProviderMicrosoft, Endpoints{
		AuthURL:     base + "/authorize",
		TokenURL:    base + "/token",
		UserInfoURL: microsoftUserInfoURL,
	}, Config{
		ClientID:      cfg.Microsoft.ClientID,
		ClientSecret:  cfg.Microsoft.ClientSecret,
		RedirectURL:   cfg.Microsoft.CallbackURL,
		Scope:         microsoftScope,
		Timeout:       cfg.OAuth.Timeout,
		RetryAttempts: cfg.OAuth.RetryAttempts,
	})
}

type microsoftProfile struct {
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
	GivenName         string `json:"givenName"`
	Surname           string `json:"surname"`
	DisplayName       string `json:"displayName"`
}

func decodeMicrosoftProfile(body []byte) (entity.OAuthProfile, error) {
	var p microsoftProfile
	if err := json.Unmarshal(body, &p); err != nil {
		return entity.OAuthProfile{}, fmt.Errorf("%w: %w", errInvalidProfile, err)
	}

	// Accounts without an Exchange mailbox only carry the principal name.
	email := p.Mail
	if email == "" {
		email = p.UserPrincipalName
	}

	first := p.GivenName
	if first == "" && p.Surname == "" {
		first = p.DisplayName
	}

	return entity.OAuthProfile{
		Email:     email,
		FirstName: first,
		LastName:  p.Surname,
	}, nil
}
