package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/internal/mocks"
	"github.com/Matheus-hora48/Teste-Conectar/internal/service"
)

type clientDeps struct {
	clients  *mocks.MockClientRepository
	users    *mocks.MockUserRepository
	producer *mocks.MockProducer
	svc      *service.ClientService
}

func newClientDeps(t *testing.T) clientDeps {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := clientDeps{
		clients:  mocks.NewMockClientRepository(ctrl),
		users:    mocks.NewMockUserRepository(ctrl),
		producer: mocks.NewMockProducer(ctrl),
	}
	d.svc = service.NewClientService(d.clients, d.users, d.producer)

	return d
}

func TestClientService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := entity.CreateClientData{
		StoreFrontName: "Padaria do João",
		CNPJ:           "12.345.678/0001-90",
		CompanyName:    "João Silva Padaria LTDA",
		City:           "São Paulo",
	}

	t.Run("defaults status to active", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByCNPJ(ctx, data.CNPJ).Return(entity.Client{}, entity.ErrClientNotFound)
		d.clients.EXPECT().CreateClient(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c entity.Client) (entity.Client, error) {
			return c, nil
		})
		d.producer.EXPECT().Publish(ctx, service.EventClientCreated, gomock.Any(), gomock.Any())

		client, err := d.svc.Create(ctx, data)
		require.NoError(t, err)
		require.Equal(t, entity.ClientStatusActive, client.Status)
		require.Nil(t, client.AssignedUserID)
	})

	t.Run("duplicate cnpj", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByCNPJ(ctx, data.CNPJ).Return(entity.Client{ID: uuid.Must(uuid.NewV4())}, nil)

		_, err := d.svc.Create(ctx, data)
		require.ErrorIs(t, err, entity.ErrDuplicateCNPJ)
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()

		bad := data
		bad.Status = "Arquivado"

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByCNPJ(ctx, data.CNPJ).Return(entity.Client{}, entity.ErrClientNotFound)

		_, err := d.svc.Create(ctx, bad)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("assigned to unknown user", func(t *testing.T) {
		t.Parallel()

		assigned := data
		id := uuid.Must(uuid.NewV4())
		assigned.AssignedUserID = &id

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByCNPJ(ctx, data.CNPJ).Return(entity.Client{}, entity.ErrClientNotFound)
		d.clients.EXPECT().CreateClient(ctx, gomock.Any()).Return(entity.Client{}, entity.ErrUserNotFound)

		_, err := d.svc.Create(ctx, assigned)
		require.ErrorIs(t, err, entity.ErrUserNotFound)
	})
}

func TestClientService_FindAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	city := "São Paulo"

	t.Run("user is scoped to own clients", func(t *testing.T) {
		t.Parallel()

		caller := newCaller(entity.RoleUser)
		other := uuid.Must(uuid.NewV4())

		d := newClientDeps(t)
		d.clients.EXPECT().Clients(ctx, entity.ClientFilter{
			City:           &city,
			AssignedUserID: &caller.ID,
			SortBy:         entity.ClientSortByCreatedAt,
			OrderBy:        entity.DESC,
		}).Return(nil, nil)

		_, err := d.svc.FindAll(ctx, caller, entity.ClientFilter{City: &city, AssignedUserID: &other})
		require.NoError(t, err)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)
		d.clients.EXPECT().Clients(ctx, entity.ClientFilter{
			SortBy:  entity.ClientSortByStoreFrontName,
			OrderBy: entity.ASC,
		}).Return([]entity.Client{{}, {}}, nil)

		clients, err := d.svc.FindAll(ctx, newCaller(entity.RoleAdmin), entity.ClientFilter{
			SortBy:  entity.ClientSortByStoreFrontName,
			OrderBy: "up",
		})
		require.NoError(t, err)
		require.Len(t, clients, 2)
	})
}

func TestClientService_FindOne(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	caller := newCaller(entity.RoleUser)
	other := uuid.Must(uuid.NewV4())

	tests := []struct {
		name    string
		caller  entity.Caller
		stored  entity.Client
		repoErr error
		wantErr error
	}{
		{
			name:   "own client",
			caller: caller,
			stored: entity.Client{ID: uuid.Must(uuid.NewV4()), AssignedUserID: &caller.ID},
		},
		{
			name:    "foreign client looks missing",
			caller:  caller,
			stored:  entity.Client{ID: uuid.Must(uuid.NewV4()), AssignedUserID: &other},
			wantErr: entity.ErrClientNotFound,
		},
		{
			name:    "unassigned client looks missing",
			caller:  caller,
			stored:  entity.Client{ID: uuid.Must(uuid.NewV4())},
			wantErr: entity.ErrClientNotFound,
		},
		{
			name:   "admin reads any client",
			caller: newCaller(entity.RoleAdmin),
			stored: entity.Client{ID: uuid.Must(uuid.NewV4()), AssignedUserID: &other},
		},
		{
			name:    "missing",
			caller:  caller,
			stored:  entity.Client{ID: uuid.Must(uuid.NewV4())},
			repoErr: entity.ErrClientNotFound,
			wantErr: entity.ErrClientNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newClientDeps(t)
			d.clients.EXPECT().ClientByID(ctx, tt.stored.ID).Return(tt.stored, tt.repoErr)

			client, err := d.svc.FindOne(ctx, tt.caller, tt.stored.ID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.stored, client)
		})
	}
}

func TestClientService_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("assigned user edits client", func(t *testing.T) {
		t.Parallel()

		caller := newCaller(entity.RoleUser)
		stored := entity.Client{
			ID:             uuid.Must(uuid.NewV4()),
			StoreFrontName: "Antigo",
			CNPJ:           "12.345.678/0001-90",
			Status:         entity.ClientStatusActive,
			AssignedUserID: &caller.ID,
		}
		name := "Novo Nome"
		pending := entity.ClientStatusPending

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByID(ctx, stored.ID).Return(stored, nil)
		d.clients.EXPECT().UpdateClient(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c entity.Client) error {
			require.Equal(t, name, c.StoreFrontName)
			require.Equal(t, pending, c.Status)
			require.Equal(t, stored.CNPJ, c.CNPJ)
			return nil
		})
		updated := stored
		updated.StoreFrontName = name
		updated.Status = pending
		d.clients.EXPECT().ClientByID(ctx, stored.ID).Return(updated, nil)

		client, err := d.svc.Update(ctx, caller, stored.ID, entity.UpdateClientData{
			StoreFrontName: &name,
			Status:         &pending,
		})
		require.NoError(t, err)
		require.Equal(t, name, client.StoreFrontName)
	})

	t.Run("cnpj taken by another client", func(t *testing.T) {
		t.Parallel()

		stored := entity.Client{ID: uuid.Must(uuid.NewV4()), CNPJ: "12.345.678/0001-90"}
		cnpj := "98.765.432/0001-10"

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByID(ctx, stored.ID).Return(stored, nil)
		d.clients.EXPECT().ClientByCNPJ(ctx, cnpj).Return(entity.Client{ID: uuid.Must(uuid.NewV4())}, nil)

		_, err := d.svc.Update(ctx, newCaller(entity.RoleAdmin), stored.ID, entity.UpdateClientData{CNPJ: &cnpj})
		require.ErrorIs(t, err, entity.ErrDuplicateCNPJ)
	})

	t.Run("foreign client", func(t *testing.T) {
		t.Parallel()

		other := uuid.Must(uuid.NewV4())
		stored := entity.Client{ID: uuid.Must(uuid.NewV4()), AssignedUserID: &other}
		name := "x"

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByID(ctx, stored.ID).Return(stored, nil)

		_, err := d.svc.Update(ctx, newCaller(entity.RoleUser), stored.ID, entity.UpdateClientData{StoreFrontName: &name})
		require.ErrorIs(t, err, entity.ErrClientNotFound)
	})
}

func TestClientService_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	t.Run("admin", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)
		d.clients.EXPECT().DeleteClient(ctx, id).Return(nil)

		require.NoError(t, d.svc.Remove(ctx, newCaller(entity.RoleAdmin), id))
	})

	t.Run("user", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)

		require.ErrorIs(t, d.svc.Remove(ctx, newCaller(entity.RoleUser), id), entity.ErrForbidden)
	})
}

func TestClientService_AssignUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	t.Run("admin assigns", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByID(ctx, clientID).Return(entity.Client{ID: clientID}, nil)
		d.users.EXPECT().UserByID(ctx, userID).Return(entity.User{ID: userID}, nil)
		d.clients.EXPECT().AssignUser(ctx, clientID, userID, gomock.Any()).Return(nil)
		d.producer.EXPECT().Publish(ctx, service.EventClientAssigned, clientID.String(), gomock.Any())
		d.clients.EXPECT().ClientByID(ctx, clientID).Return(entity.Client{ID: clientID, AssignedUserID: &userID}, nil)

		client, err := d.svc.AssignUser(ctx, newCaller(entity.RoleAdmin), clientID, userID)
		require.NoError(t, err)
		require.True(t, client.IsAssignedTo(userID))
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)
		d.clients.EXPECT().ClientByID(ctx, clientID).Return(entity.Client{ID: clientID}, nil)
		d.users.EXPECT().UserByID(ctx, userID).Return(entity.User{}, entity.ErrUserNotFound)

		_, err := d.svc.AssignUser(ctx, newCaller(entity.RoleAdmin), clientID, userID)
		require.ErrorIs(t, err, entity.ErrUserNotFound)
	})

	t.Run("user cannot assign", func(t *testing.T) {
		t.Parallel()

		d := newClientDeps(t)

		_, err := d.svc.AssignUser(ctx, newCaller(entity.RoleUser), clientID, userID)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})
}
