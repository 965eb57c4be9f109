package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}

	return false
}

type User struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"-"`
	Role            Role       `json:"role"`
	Provider        string     `json:"provider,omitempty"`
	LastLoginAt     *time.Time `json:"lastLoginAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	AssignedClients []Client   `json:"assignedClients,omitempty"`
}

// UserSummary is the only user shape exposed next to a session token.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type CreateUserData struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type UpdateUserData struct {
	Name  *string
	Email *string
	Role  *Role
}

type UserFilter struct {
	Role    *Role
	Name    *string
	Email   *string
	SortBy  UserSortCol
	OrderBy OrderByCol
}

type UserSortCol string

const (
	UserSortByName      UserSortCol = "name"
	UserSortByCreatedAt UserSortCol = "createdAt"
	UserSortByEmail     UserSortCol = "email"
)

func (c UserSortCol) IsValid() bool {
	switch c {
	case UserSortByName, UserSortByCreatedAt, UserSortByEmail:
		return true
	}

	return false
}

func (c UserSortCol) Column() string {
	switch c {
	case UserSortByName:
		return "name"
	case UserSortByCreatedAt:
		return "created_at"
	case UserSortByEmail:
		return "email"
	}

	return ""
}

type OrderByCol string

const (
	ASC  OrderByCol = "ASC"
	DESC OrderByCol = "DESC"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case ASC, DESC:
		return true
	}

	return false
}

// ParseOrder falls back to ASC for anything that is not a known direction.
func ParseOrder(s string) OrderByCol {
	o := OrderByCol(strings.ToUpper(strings.TrimSpace(s)))
	if !o.IsValid() {
		return ASC
	}

	return o
}
