package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/logger"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@conectar.com"`
	Password string `json:"password" validate:"required,min=6" example:"admin123"`
}

type RegisterRequest struct {
	Name     string      `json:"name" validate:"required" example:"João Silva"`
	Email    string      `json:"email" validate:"required,email" example:"joao@conectar.com"`
	Password string      `json:"password" validate:"required,min=6" example:"senha123"`
	Role     entity.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN USER" example:"USER"`
}

func (r RegisterRequest) data() entity.CreateUserData {
	return entity.CreateUserData{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// @Summary Login com email e senha
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body LoginRequest true "Credenciais"
// @Success 200 {object} entity.Session "Login realizado com sucesso"
// @Failure 400 {object} ResponseError "Dados inválidos"
// @Failure 401 {object} ResponseError "Credenciais inválidas"
// @Router  /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	var req LoginRequest
	if !bindJSON(ctx, w, r, &req) {
		return
	}

	session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, session)
}

// @Summary Registrar novo usuário
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body RegisterRequest true "Dados do usuário"
// @Success 201 {object} entity.Session "Usuário registrado com sucesso"
// @Failure 400 {object} ResponseError "Dados inválidos ou email já está em uso"
// @Router  /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "auth")

	var req RegisterRequest
	if !bindJSON(ctx, w, r, &req) {
		return
	}

	session, err := h.auth.Register(ctx, req.data())
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusCreated, session)
}

// @Summary Iniciar autenticação OAuth
// @Tags auth
// @Param   provider path string true "Provedor" Enums(google, microsoft)
// @Success 302 "Redirecionamento para o provedor"
// @Failure 404 {object} ResponseError "Provedor desconhecido"
// @Router  /auth/{provider} [get]
func (h *Handler) OAuthRedirect(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "oauth")

	provider := entity.Provider(chi.URLParam(r, "provider"))
	if !provider.IsValid() {
		handleServiceErr(ctx, w, fmt.Errorf("%w: %s", entity.ErrUnknownProvider, provider))
		return
	}

	target, err := h.auth.OAuthRedirectURL(ctx, provider)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// @Summary Callback OAuth
// @Description Conclui o login e redireciona para o frontend com o token
// @Tags auth
// @Param   provider path string true "Provedor" Enums(google, microsoft)
// @Param   code query string true "Código de autorização"
// @Param   state query string true "Estado da autenticação"
// @Success 302 "Redirecionamento para {FRONTEND_URL}/#/auth/callback?token=..."
// @Failure 401 {object} ResponseError "Falha na autenticação"
// @Failure 404 {object} ResponseError "Provedor desconhecido"
// @Router  /auth/{provider}/callback [get]
func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := logger.SetLogType(r.Context(), "oauth")

	provider := entity.Provider(chi.URLParam(r, "provider"))
	if !provider.IsValid() {
		handleServiceErr(ctx, w, fmt.Errorf("%w: %s", entity.ErrUnknownProvider, provider))
		return
	}

	q := r.URL.Query()

	if providerErr := q.Get("error"); providerErr != "" {
		handleServiceErr(ctx, w, fmt.Errorf("%w: %s: %s", entity.ErrOAuthProvider, providerErr, q.Get("error_description")))
		return
	}

	session, err := h.auth.OAuthCallback(ctx, provider, q.Get("code"), q.Get("state"))
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	http.Redirect(w, r, h.frontendURL+"/#/auth/callback?token="+url.QueryEscape(session.AccessToken), http.StatusFound)
}
