package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

const oauthStatePrefix = "oauth:state:"

// StateRepository keeps single-use OAuth state values in Redis.
type StateRepository struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewStateRepository(rdb *goredis.Client, ttl time.Duration) *StateRepository {
	return &StateRepository{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *StateRepository) SaveState(ctx context.Context, state string, provider entity.Provider) error {
	err := r.rdb.Set(ctx, oauthStatePrefix+state, string(provider), r.ttl).Err()
	if err != nil {
		return fmt.Errorf("save oauth state: %w", err)
	}

	return nil
}

func (r *StateRepository) ConsumeState(ctx context.Context, state string) (entity.Provider, error) {
	v, err := r.rdb.GetDel(ctx, oauthStatePrefix+state).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", entity.ErrInvalidOAuthState
		}

		return "", fmt.Errorf("consume oauth state: %w", err)
	}

	return entity.Provider(v), nil
}
