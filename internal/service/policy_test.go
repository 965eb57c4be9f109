package service

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

func TestCanAccess(t *testing.T) {
	t.Parallel()

	admin := entity.Caller{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin}
	user := entity.Caller{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	other := uuid.Must(uuid.NewV4())

	owned := entity.Client{AssignedUserID: &user.ID}
	foreign := entity.Client{AssignedUserID: &other}
	unassigned := entity.Client{}

	tests := []struct {
		name   string
		caller entity.Caller
		res    resource
		act    action
		want   bool
	}{
		{"admin deletes user", admin, anyUser(), actionDelete, true},
		{"admin changes role", admin, userResource(other), actionChangeRole, true},
		{"admin reads foreign client", admin, clientResource(foreign), actionRead, true},
		{"admin assigns client", admin, anyClient(), actionAssign, true},

		{"user reads self", user, userResource(user.ID), actionRead, true},
		{"user updates self", user, userResource(user.ID), actionUpdate, true},
		{"user reads other user", user, userResource(other), actionRead, false},
		{"user updates other user", user, userResource(other), actionUpdate, false},
		{"user changes own role", user, userResource(user.ID), actionChangeRole, false},
		{"user lists users", user, anyUser(), actionList, false},
		{"user deletes user", user, anyUser(), actionDelete, false},

		{"user creates client", user, anyClient(), actionCreate, true},
		{"user lists clients", user, anyClient(), actionList, true},
		{"user reads own client", user, clientResource(owned), actionRead, true},
		{"user updates own client", user, clientResource(owned), actionUpdate, true},
		{"user reads foreign client", user, clientResource(foreign), actionRead, false},
		{"user reads unassigned client", user, clientResource(unassigned), actionRead, false},
		{"user updates foreign client", user, clientResource(foreign), actionUpdate, false},
		{"user deletes own client", user, clientResource(owned), actionDelete, false},
		{"user assigns client", user, anyClient(), actionAssign, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, canAccess(tt.caller, tt.res, tt.act))
		})
	}
}
