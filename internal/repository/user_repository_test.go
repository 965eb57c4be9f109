package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/internal/repository"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	repo *repository.UserRepository
}

func (ts *UserRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewUserRepository(repository.SetupTestDatabase(ts.T()))
}

func TestUserRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(UserRepositoryTestSuite))
}

func newUser(name, email string, role entity.Role) entity.User {
	now := time.Now().UTC().Truncate(time.Millisecond)

	return entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Email:     email,
		Password:  "$2a$10$hash",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (ts *UserRepositoryTestSuite) create(u entity.User) entity.User {
	u, err := ts.repo.CreateUser(context.Background(), u)
	ts.Require().NoError(err)

	return u
}

func (ts *UserRepositoryTestSuite) TestCreateUser() {
	ctx := context.Background()
	u := newUser("Administrador", "admin@conectar.com", entity.RoleAdmin)
	u.Provider = "google"

	ts.create(u)

	ts.Run("by_id", func() {
		got, err := ts.repo.UserByID(ctx, u.ID)
		ts.Require().NoError(err)
		ts.Require().Equal(u.ID, got.ID)
		ts.Require().Equal(u.Name, got.Name)
		ts.Require().Equal(u.Email, got.Email)
		ts.Require().Equal(u.Password, got.Password)
		ts.Require().Equal(entity.RoleAdmin, got.Role)
		ts.Require().Equal("google", got.Provider)
		ts.Require().Nil(got.LastLoginAt)
		ts.Require().WithinDuration(u.CreatedAt, got.CreatedAt, time.Millisecond)
	})

	ts.Run("by_email", func() {
		got, err := ts.repo.UserByEmail(ctx, "admin@conectar.com")
		ts.Require().NoError(err)
		ts.Require().Equal(u.ID, got.ID)
	})

	ts.Run("not_found", func() {
		_, err := ts.repo.UserByID(ctx, uuid.Must(uuid.NewV4()))
		ts.Require().ErrorIs(err, entity.ErrUserNotFound)

		_, err = ts.repo.UserByEmail(ctx, "nobody@conectar.com")
		ts.Require().ErrorIs(err, entity.ErrUserNotFound)
	})
}

func (ts *UserRepositoryTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()

	ts.create(newUser("First", "same@conectar.com", entity.RoleUser))

	_, err := ts.repo.CreateUser(ctx, newUser("Second", "same@conectar.com", entity.RoleUser))
	ts.Require().ErrorIs(err, entity.ErrDuplicateEmail)

	n, err := ts.repo.CountUsers(ctx)
	ts.Require().NoError(err)
	ts.Require().Equal(1, n)
}

func (ts *UserRepositoryTestSuite) TestUsers() {
	ctx := context.Background()

	ana := ts.create(newUser("Ana", "ana@conectar.com", entity.RoleUser))
	bruno := ts.create(newUser("Bruno", "bruno@empresa.com", entity.RoleAdmin))
	carla := ts.create(newUser("Carla", "carla@conectar.com", entity.RoleUser))

	admin := entity.RoleAdmin
	user := entity.RoleUser
	name := "ar"
	domain := "conectar"

	tests := []struct {
		name   string
		filter entity.UserFilter
		want   []uuid.UUID
	}{
		{
			name:   "role_admin",
			filter: entity.UserFilter{Role: &admin},
			want:   []uuid.UUID{bruno.ID},
		},
		{
			name:   "role_user_sorted_by_name_desc",
			filter: entity.UserFilter{Role: &user, SortBy: entity.UserSortByName, OrderBy: entity.DESC},
			want:   []uuid.UUID{carla.ID, ana.ID},
		},
		{
			name:   "sorted_by_email_asc",
			filter: entity.UserFilter{SortBy: entity.UserSortByEmail, OrderBy: entity.ASC},
			want:   []uuid.UUID{ana.ID, bruno.ID, carla.ID},
		},
		{
			name:   "name_substring",
			filter: entity.UserFilter{Name: &name, SortBy: entity.UserSortByName},
			want:   []uuid.UUID{carla.ID},
		},
		{
			name:   "email_substring",
			filter: entity.UserFilter{Email: &domain, SortBy: entity.UserSortByName},
			want:   []uuid.UUID{ana.ID, carla.ID},
		},
	}

	for _, tt := range tests {
		ts.Run(tt.name, func() {
			users, err := ts.repo.Users(ctx, tt.filter)
			ts.Require().NoError(err)

			got := make([]uuid.UUID, 0, len(users))
			for _, u := range users {
				got = append(got, u.ID)
			}

			ts.Require().Equal(tt.want, got)
		})
	}

	ts.Run("unknown_sort_is_ignored", func() {
		users, err := ts.repo.Users(ctx, entity.UserFilter{SortBy: "password"})
		ts.Require().NoError(err)
		ts.Require().Len(users, 3)
	})
}

func (ts *UserRepositoryTestSuite) TestInactiveUsers() {
	ctx := context.Background()
	now := time.Now().UTC()

	old := ts.create(newUser("Old", "old@conectar.com", entity.RoleUser))
	recent := ts.create(newUser("Recent", "recent@conectar.com", entity.RoleUser))
	never := ts.create(newUser("Never", "never@conectar.com", entity.RoleUser))

	ts.Require().NoError(ts.repo.UpdateLastLogin(ctx, old.ID, now.AddDate(0, 0, -40)))
	ts.Require().NoError(ts.repo.UpdateLastLogin(ctx, recent.ID, now.AddDate(0, 0, -10)))

	users, err := ts.repo.InactiveUsers(ctx, now.AddDate(0, 0, -30))
	ts.Require().NoError(err)

	got := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		got = append(got, u.ID)
	}

	ts.Require().ElementsMatch([]uuid.UUID{old.ID, never.ID}, got)
}

func (ts *UserRepositoryTestSuite) TestUpdateUser() {
	ctx := context.Background()

	u := ts.create(newUser("Ana", "ana@conectar.com", entity.RoleUser))
	other := ts.create(newUser("Bruno", "bruno@conectar.com", entity.RoleUser))

	ts.Run("update_fields", func() {
		u.Name = "Ana Maria"
		u.Email = "ana.maria@conectar.com"
		u.Role = entity.RoleAdmin
		u.UpdatedAt = time.Now().UTC()

		ts.Require().NoError(ts.repo.UpdateUser(ctx, u))

		got, err := ts.repo.UserByID(ctx, u.ID)
		ts.Require().NoError(err)
		ts.Require().Equal("Ana Maria", got.Name)
		ts.Require().Equal("ana.maria@conectar.com", got.Email)
		ts.Require().Equal(entity.RoleAdmin, got.Role)
	})

	ts.Run("duplicate_email", func() {
		other.Email = u.Email
		ts.Require().ErrorIs(ts.repo.UpdateUser(ctx, other), entity.ErrDuplicateEmail)
	})

	ts.Run("missing_user", func() {
		missing := newUser("Missing", "missing@conectar.com", entity.RoleUser)
		ts.Require().ErrorIs(ts.repo.UpdateUser(ctx, missing), entity.ErrUserNotFound)
	})
}

func (ts *UserRepositoryTestSuite) TestUpdatePassword() {
	ctx := context.Background()

	u := ts.create(newUser("Ana", "ana@conectar.com", entity.RoleUser))

	ts.Require().NoError(ts.repo.UpdatePassword(ctx, u.ID, "new-hash", time.Now().UTC()))

	got, err := ts.repo.UserByID(ctx, u.ID)
	ts.Require().NoError(err)
	ts.Require().Equal("new-hash", got.Password)

	err = ts.repo.UpdatePassword(ctx, uuid.Must(uuid.NewV4()), "hash", time.Now())
	ts.Require().ErrorIs(err, entity.ErrUserNotFound)
}

func (ts *UserRepositoryTestSuite) TestDeleteUser() {
	ctx := context.Background()

	u := ts.create(newUser("Ana", "ana@conectar.com", entity.RoleUser))

	ts.Require().NoError(ts.repo.DeleteUser(ctx, u.ID))

	_, err := ts.repo.UserByID(ctx, u.ID)
	ts.Require().ErrorIs(err, entity.ErrUserNotFound)

	ts.Require().ErrorIs(ts.repo.DeleteUser(ctx, u.ID), entity.ErrUserNotFound)
}
