package api

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type UpdateUserRequest struct {
	Name  *string      `json:"name,omitempty" validate:"omitempty,min=1" example:"João Silva"`
	Email *string      `json:"email,omitempty" validate:"omitempty,email" example:"joao@conectar.com"`
	Role  *entity.Role `json:"role,omitempty" validate:"omitempty,oneof=ADMIN USER" example:"USER"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required" example:"senha123"`
	NewPassword     string `json:"newPassword" validate:"required,min=6" example:"novaSenha456"`
}

// @Summary Criar usuário (apenas admins)
// @Tags users
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   request body RegisterRequest true "Dados do usuário"
// @Success 201 {object} entity.User
// @Failure 400 {object} ResponseError "Dados inválidos ou email já está em uso"
// @Failure 403 {object} ResponseError "Acesso negado"
// @Router  /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if !bindJSON(ctx, w, r, &req) {
		return
	}

	user, err := h.users.Create(ctx, req.data())
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusCreated, user)
}

// @Summary Listar usuários (apenas admins)
// @Tags users
// @Security BearerAuth
// @Produce  json
// @Param   role query string false "Filtrar por papel" Enums(ADMIN, USER)
// @Param   name query string false "Filtrar por nome"
// @Param   email query string false "Filtrar por email"
// @Param   sortBy query string false "Ordenar por campo" Enums(name, createdAt, email)
// @Param   order query string false "Ordem" Enums(ASC, DESC)
// @Success 200 {array} entity.User
// @Failure 403 {object} ResponseError "Acesso negado"
// @Router  /users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	f := entity.UserFilter{
		Name:    optString(q.Get("name")),
		Email:   optString(q.Get("email")),
		SortBy:  entity.UserSortCol(q.Get("sortBy")),
		OrderBy: entity.ParseOrder(q.Get("order")),
	}

	if v := q.Get("role"); v != "" {
		role := entity.Role(v)
		if !role.IsValid() {
			handleServiceErr(ctx, w, fmt.Errorf("%w: role %q", entity.ErrInvalidArgument, v))
			return
		}

		f.Role = &role
	}

	users, err := h.users.FindAll(ctx, f)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, users)
}

// @Summary Buscar usuário por ID
// @Tags users
// @Security BearerAuth
// @Produce  json
// @Param   id path string true "ID do usuário"
// @Success 200 {object} entity.User
// @Failure 403 {object} ResponseError "Acesso negado"
// @Failure 404 {object} ResponseError "Usuário não encontrado"
// @Router  /users/{id} [get]
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	h.findUser(w, r, id)
}

// @Summary Perfil do usuário logado
// @Tags users
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} entity.User
// @Router  /users/profile/me [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	h.findUser(w, r, caller.ID)
}

func (h *Handler) findUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	user, err := h.users.FindOne(ctx, caller, id)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, user)
}

// @Summary Atualizar usuário
// @Description Usuários comuns só podem alterar o próprio nome e email
// @Tags users
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path string true "ID do usuário"
// @Param   request body UpdateUserRequest true "Campos a alterar"
// @Success 200 {object} entity.User
// @Failure 403 {object} ResponseError "Acesso negado"
// @Failure 404 {object} ResponseError "Usuário não encontrado"
// @Failure 400 {object} ResponseError "Email já está em uso"
// @Router  /users/{id} [patch]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	h.updateUser(w, r, id)
}

// @Summary Atualizar perfil do usuário logado
// @Tags users
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   request body UpdateUserRequest true "Campos a alterar"
// @Success 200 {object} entity.User
// @Failure 400 {object} ResponseError "Email já está em uso"
// @Router  /users/profile/me [patch]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	h.updateUser(w, r, caller.ID)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !bindJSON(ctx, w, r, &req) {
		return
	}

	user, err := h.users.Update(ctx, caller, id, entity.UpdateUserData{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, user)
}

// @Summary Alterar senha
// @Tags users
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path string true "ID do usuário"
// @Param   request body UpdatePasswordRequest true "Senha atual e nova senha"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError "Senha atual incorreta"
// @Failure 403 {object} ResponseError "Acesso negado"
// @Router  /users/{id}/password [patch]
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	h.updatePassword(w, r, id)
}

// @Summary Alterar senha do usuário logado
// @Tags users
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   request body UpdatePasswordRequest true "Senha atual e nova senha"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError "Senha atual incorreta"
// @Router  /users/profile/me/password [patch]
func (h *Handler) UpdateProfilePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	h.updatePassword(w, r, caller.ID)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if !bindJSON(ctx, w, r, &req) {
		return
	}

	err := h.users.UpdatePassword(ctx, caller, id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Senha atualizada com sucesso"})
}

// @Summary Excluir usuário (apenas admins)
// @Tags users
// @Security BearerAuth
// @Produce  json
// @Param   id path string true "ID do usuário"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ResponseError "Não é possível excluir a própria conta"
// @Failure 403 {object} ResponseError "Acesso negado"
// @Failure 404 {object} ResponseError "Usuário não encontrado"
// @Router  /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	err := h.users.Remove(ctx, caller, id)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Usuário excluído com sucesso"})
}

// @Summary Listar usuários inativos (apenas admins)
// @Tags users
// @Security BearerAuth
// @Produce  json
// @Param   days query int false "Dias sem login para considerar inativo (padrão: 30)"
// @Success 200 {array} entity.User
// @Failure 400 {object} ResponseError "Parâmetro inválido"
// @Failure 403 {object} ResponseError "Acesso negado"
// @Router  /users/inactive/list [get]
func (h *Handler) InactiveUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days, err := intQuery(r, "days", 0)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	users, err := h.users.FindInactiveUsers(ctx, days)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, users)
}
