package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/internal/mocks"
	"github.com/Matheus-hora48/Teste-Conectar/internal/service"
)

func TestSeeder_Run(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("skips populated database", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		users.EXPECT().CountUsers(ctx).Return(3, nil)

		s := service.NewSeeder(nil, nil, users)
		require.NoError(t, s.Run(ctx))
	})

	t.Run("seeds empty database", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		clients := mocks.NewMockClientRepository(ctrl)
		producer := mocks.NewMockProducer(ctrl)

		var created []entity.User
		var seeded []entity.Client

		users.EXPECT().CountUsers(ctx).Return(0, nil)
		users.EXPECT().UserByEmail(ctx, gomock.Any()).Return(entity.User{}, entity.ErrUserNotFound).Times(2)
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
			created = append(created, u)
			return u, nil
		}).Times(2)
		clients.EXPECT().ClientByCNPJ(ctx, gomock.Any()).Return(entity.Client{}, entity.ErrClientNotFound).Times(3)
		clients.EXPECT().CreateClient(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c entity.Client) (entity.Client, error) {
			seeded = append(seeded, c)
			return c, nil
		}).Times(3)
		producer.EXPECT().Publish(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Times(5)

		s := service.NewSeeder(
			service.NewUserService(users, clients, producer),
			service.NewClientService(clients, users, producer),
			users,
		)
		require.NoError(t, s.Run(ctx))

		require.Len(t, created, 2)
		require.Equal(t, entity.RoleAdmin, created[0].Role)
		require.Equal(t, entity.RoleUser, created[1].Role)

		require.Len(t, seeded, 3)
		require.True(t, seeded[0].IsAssignedTo(created[1].ID))
		require.Nil(t, seeded[1].AssignedUserID)
		require.Equal(t, entity.ClientStatusInactive, seeded[2].Status)
	})
}
