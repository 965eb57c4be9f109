package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

const (
	EventUserRegistered = "user.registered"
	EventUserCreated    = "user.created"
	EventUserDeleted    = "user.deleted"
	EventClientCreated  = "client.created"
	EventClientAssigned = "client.assigned"
	EventUsersInactive  = "users.inactive"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u entity.User) (entity.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	Users(ctx context.Context, f entity.UserFilter) ([]entity.User, error)
	InactiveUsers(ctx context.Context, cutoff time.Time) ([]entity.User, error)
	CountUsers(ctx context.Context) (int, error)
	UpdateUser(ctx context.Context, u entity.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string, updatedAt time.Time) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type ClientRepository interface {
	CreateClient(ctx context.Context, c entity.Client) (entity.Client, error)
	ClientByID(ctx context.Context, id uuid.UUID) (entity.Client, error)
	ClientByCNPJ(ctx context.Context, cnpj string) (entity.Client, error)
	Clients(ctx context.Context, f entity.ClientFilter) ([]entity.Client, error)
	ClientsByAssignedUser(ctx context.Context, userID uuid.UUID) ([]entity.Client, error)
	UpdateClient(ctx context.Context, c entity.Client) error
	AssignUser(ctx context.Context, clientID, userID uuid.UUID, updatedAt time.Time) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type StateRepository interface {
	SaveState(ctx context.Context, state string, provider entity.Provider) error
	ConsumeState(ctx context.Context, state string) (entity.Provider, error)
}

type Producer interface {
	Publish(ctx context.Context, eventType, key string, payload any)
}

type OAuthProvider interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	UserProfile(ctx context.Context, accessToken string) (entity.OAuthProfile, error)
}
