package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

const DefaultInactiveDays = 30

type UserService struct {
	users    UserRepository
	clients  ClientRepository
	producer Producer
}

func NewUserService(users UserRepository, clients ClientRepository, producer Producer) *UserService {
	return &UserService{
		users:    users,
		clients:  clients,
		producer: producer,
	}
}

func (s *UserService) Create(ctx context.Context, data entity.CreateUserData) (entity.User, error) {
	_, err := s.users.UserByEmail(ctx, data.Email)
	if err == nil {
		return entity.User{}, entity.ErrDuplicateEmail
	}

	if !errors.Is(err, entity.ErrUserNotFound) {
		return entity.User{}, fmt.Errorf("get user by email: %w", err)
	}

	user, err := newUser(data)
	if err != nil {
		return entity.User{}, err
	}

	user, err = s.users.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, err
	}

	slog.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role)
	s.producer.Publish(ctx, EventUserCreated, user.ID.String(), user.Summary())

	return user, nil
}

func (s *UserService) FindAll(ctx context.Context, f entity.UserFilter) ([]entity.User, error) {
	if !f.SortBy.IsValid() {
		f.SortBy = ""
	}

	if !f.OrderBy.IsValid() {
		f.OrderBy = entity.ASC
	}

	return s.users.Users(ctx, f)
}

func (s *UserService) FindOne(ctx context.Context, caller entity.Caller, id uuid.UUID) (entity.User, error) {
	if !canAccess(caller, userResource(id), actionRead) {
		return entity.User{}, entity.ErrForbidden
	}

	return s.load(ctx, id)
}

// load returns the user together with the clients assigned to it.
func (s *UserService) load(ctx context.Context, id uuid.UUID) (entity.User, error) {
	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	clients, err := s.clients.ClientsByAssignedUser(ctx, id)
	if err != nil {
		return entity.User{}, fmt.Errorf("assigned clients: %w", err)
	}

	user.AssignedClients = clients

	return user, nil
}

func (s *UserService) Update(
	ctx context.Context,
	caller entity.Caller,
	id uuid.UUID,
	data entity.UpdateUserData,
) (entity.User, error) {
	if !canAccess(caller, userResource(id), actionUpdate) {
		return entity.User{}, entity.ErrForbidden
	}

	if data.Role != nil && !canAccess(caller, userResource(id), actionChangeRole) {
		return entity.User{}, entity.ErrForbidden
	}

	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	if data.Email != nil && *data.Email != user.Email {
		existing, err := s.users.UserByEmail(ctx, *data.Email)
		switch {
		case err == nil && existing.ID != id:
			return entity.User{}, entity.ErrDuplicateEmail
		case err != nil && !errors.Is(err, entity.ErrUserNotFound):
			return entity.User{}, fmt.Errorf("get user by email: %w", err)
		}

		user.Email = *data.Email
	}

	if data.Name != nil {
		user.Name = *data.Name
	}

	if data.Role != nil {
		if !data.Role.IsValid() {
			return entity.User{}, fmt.Errorf("%w: role %q", entity.ErrInvalidArgument, *data.Role)
		}

		user.Role = *data.Role
	}

	user.UpdatedAt = time.Now().UTC()

	err = s.users.UpdateUser(ctx, user)
	if err != nil {
		return entity.User{}, err
	}

	slog.InfoContext(ctx, "user updated", "user_id", id, "by", caller.ID)

	return s.load(ctx, id)
}

func (s *UserService) UpdatePassword(
	ctx context.Context,
	caller entity.Caller,
	id uuid.UUID,
	currentPassword, newPassword string,
) error {
	if !canAccess(caller, userResource(id), actionUpdate) {
		return entity.ErrForbidden
	}

	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return entity.ErrWrongPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.users.UpdatePassword(ctx, id, hash, time.Now().UTC())
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "password updated", "user_id", id, "by", caller.ID)

	return nil
}

func (s *UserService) Remove(ctx context.Context, caller entity.Caller, id uuid.UUID) error {
	if !canAccess(caller, anyUser(), actionDelete) {
		return entity.ErrForbidden
	}

	if caller.ID == id {
		return entity.ErrSelfDelete
	}

	err := s.users.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "user deleted", "user_id", id, "by", caller.ID)
	s.producer.Publish(ctx, EventUserDeleted, id.String(), map[string]any{"id": id, "deleted_by": caller.ID})

	return nil
}

// FindInactiveUsers returns users that never logged in or whose last login is
// older than daysThreshold days. A non-positive threshold means 30 days.
func (s *UserService) FindInactiveUsers(ctx context.Context, daysThreshold int) ([]entity.User, error) {
	if daysThreshold <= 0 {
		daysThreshold = DefaultInactiveDays
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -daysThreshold)

	return s.users.InactiveUsers(ctx, cutoff)
}

func (s *UserService) ReportInactiveUsers(ctx context.Context, daysThreshold int) error {
	users, err := s.FindInactiveUsers(ctx, daysThreshold)
	if err != nil {
		return fmt.Errorf("find inactive users: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	slog.InfoContext(ctx, "inactive users report", "days", daysThreshold, "count", len(ids))
	s.producer.Publish(ctx, EventUsersInactive, fmt.Sprintf("inactive:%d", daysThreshold), map[string]any{
		"days":     daysThreshold,
		"user_ids": ids,
	})

	return nil
}
