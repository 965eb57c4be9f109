package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/internal/repository"
)

func TestStateRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewStateRepository(repository.SetupTestRedis(t), time.Minute)

	state := uuid.Must(uuid.NewV4()).String()

	require.NoError(t, repo.SaveState(ctx, state, entity.ProviderMicrosoft))

	provider, err := repo.ConsumeState(ctx, state)
	require.NoError(t, err)
	require.Equal(t, entity.ProviderMicrosoft, provider)

	_, err = repo.ConsumeState(ctx, state)
	require.ErrorIs(t, err, entity.ErrInvalidOAuthState)
}

func TestStateRepository_Expired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewStateRepository(repository.SetupTestRedis(t), 50*time.Millisecond)

	state := uuid.Must(uuid.NewV4()).String()
	require.NoError(t, repo.SaveState(ctx, state, entity.ProviderGoogle))

	time.Sleep(150 * time.Millisecond)

	_, err := repo.ConsumeState(ctx, state)
	require.ErrorIs(t, err, entity.ErrInvalidOAuthState)
}
