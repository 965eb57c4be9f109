package api

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

// @title Conectar API
// @version 1.0
// @description API de gestão de usuários e clientes com autenticação local e OAuth
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type AuthService interface {
	Login(ctx context.Context, email, password string) (entity.Session, error)
	Register(ctx context.Context, data entity.CreateUserData) (entity.Session, error)
	OAuthRedirectURL(ctx context.Context, provider entity.Provider) (string, error)
	OAuthCallback(ctx context.Context, provider entity.Provider, code, state string) (entity.Session, error)
}

type UserService interface {
	Create(ctx context.Context, data entity.CreateUserData) (entity.User, error)
	FindAll(ctx context.Context, f entity.UserFilter) ([]entity.User, error)
	FindOne(ctx context.Context, caller entity.Caller, id uuid.UUID) (entity.User, error)
	Update(ctx context.Context, caller entity.Caller, id uuid.UUID, data entity.UpdateUserData) (entity.User, error)
	UpdatePassword(ctx context.Context, caller entity.Caller, id uuid.UUID, currentPassword, newPassword string) error
	Remove(ctx context.Context, caller entity.Caller, id uuid.UUID) error
	FindInactiveUsers(ctx context.Context, daysThreshold int) ([]entity.User, error)
}

type ClientService interface {
	Create(ctx context.Context, data entity.CreateClientData) (entity.Client, error)
	FindAll(ctx context.Context, caller entity.Caller, f entity.ClientFilter) ([]entity.Client, error)
	FindOne(ctx context.Context, caller entity.Caller, id uuid.UUID) (entity.Client, error)
	Update(ctx context.Context, caller entity.Caller, id uuid.UUID, data entity.UpdateClientData) (entity.Client, error)
	Remove(ctx context.Context, caller entity.Caller, id uuid.UUID) error
	AssignUser(ctx context.Context, caller entity.Caller, clientID, userID uuid.UUID) (entity.Client, error)
}

type Handler struct {
	auth        AuthService
	users       UserService
	clients     ClientService
	frontendURL string
}

func NewHandler(auth AuthService, users UserService, clients ClientService, frontendURL string) *Handler {
	return &Handler{
		auth:        auth,
		users:       users,
		clients:     clients,
		frontendURL: frontendURL,
	}
}

// @Summary Verificação de saúde
// @Description Verifica se o servidor está funcionando
// @Tags health
// @Produce  plain
// @Success 200 {string} string "Servidor funcionando!"
// @Router  /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Servidor funcionando!\n"))
}

// callerOrAbort extracts the authenticated caller, answering 401 when absent.
func callerOrAbort(w http.ResponseWriter, r *http.Request) (entity.Caller, bool) {
	caller, err := entity.CallerFromContext(r.Context())
	if err != nil {
		sendErr(r.Context(), w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
		return entity.Caller{}, false
	}

	return caller, true
}
