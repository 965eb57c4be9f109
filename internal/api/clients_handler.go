package api

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type CreateClientRequest struct {
	StoreFrontName string              `json:"storeFrontName" validate:"required" example:"Padaria do João"`
	CNPJ           string              `json:"cnpj" validate:"required" example:"12.345.678/0001-90"`
	CompanyName    string              `json:"companyName" validate:"required" example:"João Silva Padaria LTDA"`
	CEP            string              `json:"cep" validate:"required" example:"01234-567"`
	Street         string              `json:"street" validate:"required" example:"Rua das Flores"`
	Neighborhood   string              `json:"neighborhood" validate:"required" example:"Centro"`
	City           string              `json:"city" validate:"required" example:"São Paulo"`
	State          string              `json:"state" validate:"required" example:"SP"`
	Number         string              `json:"number" validate:"required" example:"123"`
	Complement     string              `json:"complement,omitempty" example:"Sala 1"`
	Status         entity.ClientStatus `json:"status,omitempty" validate:"omitempty,oneof=Ativo Inativo Pendente" example:"Ativo"`
	Phone          string              `json:"phone,omitempty" example:"(11) 99999-9999"`
	Email          string              `json:"email,omitempty" validate:"omitempty,email" example:"contato@padariadojoao.com"`
	ContactPerson  string              `json:"contactPerson,omitempty" example:"João Silva"`
	AssignedUserID *uuid.UUID          `json:"assignedUserId,omitempty" swaggertype:"string"`
}

func (r CreateClientRequest) data() entity.CreateClientData {
	return entity.CreateClientData{
		StoreFrontName: r.StoreFrontName,
		CNPJ:           r.CNPJ,
		CompanyName:    r.CompanyName,
		CEP:            r.CEP,
		Street:         r.Street,
		Neighborhood:   r.Neighborhood,
		City:           r.City,
		State:          r.State,
		Number:         r.Number,
		Complement:     r.Complement,
		Status:         r.Status,
		Phone:          r.Phone,
		Email:          r.Email,
		ContactPerson:  r.ContactPerson,
		AssignedUserID: r.AssignedUserID,
	}
}

type UpdateClientRequest struct {
	StoreFrontName *string              `json:"storeFrontName,omitempty" validate:"omitempty,min=1"`
	CNPJ           *string              `json:"cnpj,omitempty" validate:"omitempty,min=1"`
	CompanyName    *string              `json:"companyName,omitempty" validate:"omitempty,min=1"`
	CEP            *string              `json:"cep,omitempty"`
	Street         *string              `json:"street,omitempty"`
	Neighborhood   *string              `json:"neighborhood,omitempty"`
	City           *string              `json:"city,omitempty"`
	State          *string              `json:"state,omitempty"`
	Number         *string              `json:"number,omitempty"`
	Complement     *string              `json:"complement,omitempty"`
	Status         *entity.ClientStatus `json:"status,omitempty" validate:"omitempty,oneof=Ativo Inativo Pendente"`
	Phone          *string              `json:"phone,omitempty"`
	Email          *string              `json:"email,omitempty" validate:"omitempty,email"`
	ContactPerson  *string              `json:"contactPerson,omitempty"`
}

func (r UpdateClientRequest) data() entity.UpdateClientData {
	return entity.UpdateClientData{
		StoreFrontName: r.StoreFrontName,
		CNPJ:           r.CNPJ,
		CompanyName:    r.CompanyName,
		CEP:            r.CEP,
		Street:         r.Street,
		Neighborhood:   r.Neighborhood,
		City:           r.City,
		State:          r.State,
		Number:         r.Number,
		Complement:     r.Complement,
		Status:         r.Status,
		Phone:          r.Phone,
		Email:          r.Email,
		ContactPerson:  r.ContactPerson,
	}
}

// @Summary Cadastrar cliente
// @Tags clients
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   request body CreateClientRequest true "Dados do cliente"
// @Success 201 {object} entity.Client
// @Failure 400 {object} ResponseError "Dados inválidos ou CNPJ já está cadastrado"
// @Failure 404 {object} ResponseError "Usuário atribuído não encontrado"
// @Router  /clients [post]
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateClientRequest
	if !bindJSON(ctx, w, r, &req) {
		return
	}

	client, err := h.clients.Create(ctx, req.data())
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusCreated, client)
}

// @Summary Listar clientes
// @Description Usuários comuns veem apenas os clientes atribuídos a eles
// @Tags clients
// @Security BearerAuth
// @Produce  json
// @Param   name query string false "Nome fantasia ou razão social"
// @Param   cnpj query string false "CNPJ"
// @Param   city query string false "Cidade"
// @Param   status query string false "Status" Enums(Ativo, Inativo, Pendente)
// @Param   sortBy query string false "Ordenar por campo" Enums(storeFrontName, companyName, createdAt, status)
// @Param   order query string false "Ordem" Enums(ASC, DESC)
// @Success 200 {array} entity.Client
// @Router  /clients [get]
func (h *Handler) Clients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	f := entity.ClientFilter{
		Name:    optString(q.Get("name")),
		CNPJ:    optString(q.Get("cnpj")),
		City:    optString(q.Get("city")),
		SortBy:  entity.ClientSortCol(q.Get("sortBy")),
		OrderBy: entity.ParseOrder(q.Get("order")),
	}

	if v := q.Get("status"); v != "" {
		status := entity.ClientStatus(v)
		if !status.IsValid() {
			handleServiceErr(ctx, w, fmt.Errorf("%w: status %q", entity.ErrInvalidArgument, v))
			return
		}

		f.Status = &status
	}

	clients, err := h.clients.FindAll(ctx, caller, f)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, clients)
}

// @Summary Buscar cliente por ID
// @Tags clients
// @Security BearerAuth
// @Produce  json
// @Param   id path string true "ID do cliente"
// @Success 200 {object} entity.Client
// @Failure 404 {object} ResponseError "Cliente não encontrado"
// @Router  /clients/{id} [get]
func (h *Handler) Client(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	client, err := h.clients.FindOne(ctx, caller, id)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, client)
}

// @Summary Atualizar cliente
// @Tags clients
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param   id path string true "ID do cliente"
// @Param   request body UpdateClientRequest true "Campos a alterar"
// @Success 200 {object} entity.Client
// @Failure 403 {object} ResponseError "Acesso negado"
// @Failure 404 {object} ResponseError "Cliente não encontrado"
// @Failure 400 {object} ResponseError "CNPJ já está cadastrado"
// @Router  /clients/{id} [patch]
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdateClientRequest
	if !bindJSON(ctx, w, r, &req) {
		return
	}

	client, err := h.clients.Update(ctx, caller, id, req.data())
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, client)
}

// @Summary Excluir cliente (apenas admins)
// @Tags clients
// @Security BearerAuth
// @Produce  json
// @Param   id path string true "ID do cliente"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ResponseError "Acesso negado"
// @Failure 404 {object} ResponseError "Cliente não encontrado"
// @Router  /clients/{id} [delete]
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	err := h.clients.Remove(ctx, caller, id)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Cliente excluído com sucesso"})
}

// @Summary Atribuir usuário ao cliente (apenas admins)
// @Tags clients
// @Security BearerAuth
// @Produce  json
// @Param   clientId path string true "ID do cliente"
// @Param   userId path string true "ID do usuário"
// @Success 200 {object} entity.Client
// @Failure 403 {object} ResponseError "Acesso negado"
// @Failure 404 {object} ResponseError "Cliente ou usuário não encontrado"
// @Router  /clients/{clientId}/assign/{userId} [patch]
func (h *Handler) AssignUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := callerOrAbort(w, r)
	if !ok {
		return
	}

	clientID, ok := idParam(w, r, "clientId")
	if !ok {
		return
	}

	userID, ok := idParam(w, r, "userId")
	if !ok {
		return
	}

	client, err := h.clients.AssignUser(ctx, caller, clientID, userID)
	if err != nil {
		handleServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, client)
}
