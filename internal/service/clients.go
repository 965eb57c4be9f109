package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type ClientService struct {
	clients  ClientRepository
	users    UserRepository
	producer Producer
}

func NewClientService(clients ClientRepository, users UserRepository, producer Producer) *ClientService {
	return &ClientService{
		clients:  clients,
		users:    users,
		producer: producer,
	}
}

func (s *ClientService) Create(ctx context.Context, data entity.CreateClientData) (entity.Client, error) {
	err := s.ensureCNPJFree(ctx, data.CNPJ, uuid.Nil)
	if err != nil {
		return entity.Client{}, err
	}

	status := data.Status
	if status == "" {
		status = entity.ClientStatusActive
	}

	if !status.IsValid() {
		return entity.Client{}, fmt.Errorf("%w: status %q", entity.ErrInvalidArgument, status)
	}

	now := time.Now().UTC()

	client, err := s.clients.CreateClient(ctx, entity.Client{
		ID:             uuid.Must(uuid.NewV4()),
		StoreFrontName: data.StoreFrontName,
		CNPJ:           data.CNPJ,
		CompanyName:    data.CompanyName,
		CEP:            data.CEP,
		Street:         data.Street,
		Neighborhood:   data.Neighborhood,
		City:           data.City,
		State:          data.State,
		Number:         data.Number,
		Complement:     data.Complement,
		Status:         status,
		Phone:          data.Phone,
		Email:          data.Email,
		ContactPerson:  data.ContactPerson,
		AssignedUserID: data.AssignedUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return entity.Client{}, err
	}

	slog.InfoContext(ctx, "client created", "client_id", client.ID)
	s.producer.Publish(ctx, EventClientCreated, client.ID.String(), client)

	return client, nil
}

// FindAll scopes non-admin callers to the clients assigned to them.
func (s *ClientService) FindAll(ctx context.Context, caller entity.Caller, f entity.ClientFilter) ([]entity.Client, error) {
	if !canAccess(caller, anyClient(), actionList) {
		return nil, entity.ErrForbidden
	}

	f.AssignedUserID = nil
	if !caller.IsAdmin() {
		id := caller.ID
		f.AssignedUserID = &id
	}

	if !f.SortBy.IsValid() {
		f.SortBy = entity.ClientSortByCreatedAt
		f.OrderBy = entity.DESC
	} else if !f.OrderBy.IsValid() {
		f.OrderBy = entity.ASC
	}

	return s.clients.Clients(ctx, f)
}

// FindOne reports a client the caller may not see as not found.
func (s *ClientService) FindOne(ctx context.Context, caller entity.Caller, id uuid.UUID) (entity.Client, error) {
	client, err := s.clients.ClientByID(ctx, id)
	if err != nil {
		return entity.Client{}, err
	}

	if !canAccess(caller, clientResource(client), actionRead) {
		return entity.Client{}, entity.ErrClientNotFound
	}

	return client, nil
}

func (s *ClientService) Update(
	ctx context.Context,
	caller entity.Caller,
	id uuid.UUID,
	data entity.UpdateClientData,
) (entity.Client, error) {
	client, err := s.FindOne(ctx, caller, id)
	if err != nil {
		return entity.Client{}, err
	}

	if data.CNPJ != nil && *data.CNPJ != client.CNPJ {
		err = s.ensureCNPJFree(ctx, *data.CNPJ, id)
		if err != nil {
			return entity.Client{}, err
		}
	}

	if !canAccess(caller, clientResource(client), actionUpdate) {
		return entity.Client{}, entity.ErrForbidden
	}

	if data.Status != nil && !data.Status.IsValid() {
		return entity.Client{}, fmt.Errorf("%w: status %q", entity.ErrInvalidArgument, *data.Status)
	}

	data.Apply(&client)
	client.UpdatedAt = time.Now().UTC()

	err = s.clients.UpdateClient(ctx, client)
	if err != nil {
		return entity.Client{}, err
	}

	slog.InfoContext(ctx, "client updated", "client_id", id, "by", caller.ID)

	return s.FindOne(ctx, caller, id)
}

func (s *ClientService) Remove(ctx context.Context, caller entity.Caller, id uuid.UUID) error {
	if !canAccess(caller, anyClient(), actionDelete) {
		return entity.ErrForbidden
	}

	err := s.clients.DeleteClient(ctx, id)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "client deleted", "client_id", id, "by", caller.ID)

	return nil
}

func (s *ClientService) AssignUser(ctx context.Context, caller entity.Caller, clientID, userID uuid.UUID) (entity.Client, error) {
	if !canAccess(caller, anyClient(), actionAssign) {
		return entity.Client{}, entity.ErrForbidden
	}

	_, err := s.clients.ClientByID(ctx, clientID)
	if err != nil {
		return entity.Client{}, err
	}

	_, err = s.users.UserByID(ctx, userID)
	if err != nil {
		return entity.Client{}, err
	}

	err = s.clients.AssignUser(ctx, clientID, userID, time.Now().UTC())
	if err != nil {
		return entity.Client{}, err
	}

	slog.InfoContext(ctx, "client assigned", "client_id", clientID, "user_id", userID, "by", caller.ID)
	s.producer.Publish(ctx, EventClientAssigned, clientID.String(), map[string]any{
		"client_id": clientID,
		"user_id":   userID,
	})

	return s.FindOne(ctx, caller, clientID)
}

// ensureCNPJFree fails with ErrDuplicateCNPJ when cnpj belongs to a client other than self.
func (s *ClientService) ensureCNPJFree(ctx context.Context, cnpj string, self uuid.UUID) error {
	existing, err := s.clients.ClientByCNPJ(ctx, cnpj)
	if err == nil {
		if existing.ID != self {
			return entity.ErrDuplicateCNPJ
		}

		return nil
	}

	if errors.Is(err, entity.ErrClientNotFound) {
		return nil
	}

	return fmt.Errorf("get client by cnpj: %w", err)
}
