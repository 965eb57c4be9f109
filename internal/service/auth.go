package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type AuthService struct {
	users     UserRepository
	tokens    *TokenManager
	states    StateRepository
	providers map[entity.Provider]OAuthProvider
	producer  Producer
}

func NewAuthService(
	users UserRepository,
	tokens *TokenManager,
	states StateRepository,
	providers map[entity.Provider]OAuthProvider,
	producer Producer,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		states:    states,
		providers: providers,
		producer:  producer,
	}
}

// ValidateCredentials returns ErrInvalidCredentials when the email is unknown,
// the account has no local password or the password does not match.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (entity.User, error) {
	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.User{}, entity.ErrInvalidCredentials
		}

		return entity.User{}, fmt.Errorf("get user by email: %w", err)
	}

	if user.Password == "" {
		return entity.User{}, entity.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return entity.User{}, entity.ErrInvalidCredentials
	}

	now := time.Now().UTC()

	err = s.users.UpdateLastLogin(ctx, user.ID, now)
	if err != nil {
		return entity.User{}, fmt.Errorf("update last login: %w", err)
	}

	user.LastLoginAt = &now

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (entity.Session, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return entity.Session{}, err
	}

	slog.InfoContext(ctx, "user logged in", "user_id", user.ID)

	return s.IssueSession(user)
}

func (s *AuthService) Register(ctx context.Context, data entity.CreateUserData) (entity.Session, error) {
	_, err := s.users.UserByEmail(ctx, data.Email)
	if err == nil {
		return entity.Session{}, entity.ErrDuplicateEmail
	}

	if !errors.Is(err, entity.ErrUserNotFound) {
		return entity.Session{}, fmt.Errorf("get user by email: %w", err)
	}

	user, err := newUser(data)
	if err != nil {
		return entity.Session{}, err
	}

	user, err = s.users.CreateUser(ctx, user)
	if err != nil {
		return entity.Session{}, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	s.producer.Publish(ctx, EventUserRegistered, user.ID.String(), user.Summary())

	return s.IssueSession(user)
}

// ReconcileOAuthIdentity finds the local user for an OAuth profile by email,
// creating a passwordless account on first login.
func (s *AuthService) ReconcileOAuthIdentity(ctx context.Context, profile entity.OAuthProfile) (entity.User, error) {
	if profile.Email == "" {
		return entity.User{}, entity.ErrOAuthEmailMissing
	}

	now := time.Now().UTC()

	user, err := s.users.UserByEmail(ctx, profile.Email)
	if err == nil {
		err = s.users.UpdateLastLogin(ctx, user.ID, now)
		if err != nil {
			return entity.User{}, fmt.Errorf("update last login: %w", err)
		}

		user.LastLoginAt = &now

		return user, nil
	}

	if !errors.Is(err, entity.ErrUserNotFound) {
		return entity.User{}, fmt.Errorf("get user by email: %w", err)
	}

	user = entity.User{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        strings.TrimSpace(profile.FirstName + " " + profile.LastName),
		Email:       profile.Email,
		Role:        entity.RoleUser,
		Provider:    string(profile.Provider),
		LastLoginAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	user, err = s.users.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, err
	}

	slog.InfoContext(ctx, "oauth user created", "user_id", user.ID, "provider", profile.Provider)
	s.producer.Publish(ctx, EventUserRegistered, user.ID.String(), user.Summary())

	return user, nil
}

func (s *AuthService) IssueSession(user entity.User) (entity.Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return entity.Session{}, err
	}

	return entity.Session{
		AccessToken: token,
		User:        user.Summary(),
	}, nil
}

func (s *AuthService) VerifyToken(_ context.Context, raw string) (entity.Caller, error) {
	return s.tokens.Verify(raw)
}

// OAuthRedirectURL starts the provider handshake and returns where to send the browser.
func (s *AuthService) OAuthRedirectURL(ctx context.Context, provider entity.Provider) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", entity.ErrUnknownProvider
	}

	state := uuid.Must(uuid.NewV4()).String()

	err := s.states.SaveState(ctx, state, provider)
	if err != nil {
		return "", err
	}

	return p.AuthURL(state), nil
}

func (s *AuthService) OAuthCallback(ctx context.Context, provider entity.Provider, code, state string) (entity.Session, error) {
	p, ok := s.providers[provider]
	if !ok {
		return entity.Session{}, entity.ErrUnknownProvider
	}

	saved, err := s.states.ConsumeState(ctx, state)
	if err != nil {
		return entity.Session{}, err
	}

	if saved != provider {
		return entity.Session{}, entity.ErrInvalidOAuthState
	}

	accessToken, err := p.ExchangeCode(ctx, code)
	if err != nil {
		return entity.Session{}, fmt.Errorf("exchange code: %w", err)
	}

	profile, err := p.UserProfile(ctx, accessToken)
	if err != nil {
		return entity.Session{}, fmt.Errorf("user profile: %w", err)
	}

	profile.Provider = provider

	user, err := s.ReconcileOAuthIdentity(ctx, profile)
	if err != nil {
		return entity.Session{}, err
	}

	return s.IssueSession(user)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

func newUser(data entity.CreateUserData) (entity.User, error) {
	role := data.Role
	if role == "" {
		role = entity.RoleUser
	}

	if !role.IsValid() {
		return entity.User{}, fmt.Errorf("%w: role %q", entity.ErrInvalidArgument, role)
	}

	hash, err := hashPassword(data.Password)
	if err != nil {
		return entity.User{}, err
	}

	now := time.Now().UTC()

	return entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      data.Name,
		Email:     data.Email,
		Password:  hash,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
