package entity

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type (
	CtxKeyIP     struct{}
	CtxKeyCaller struct{}
)

// Caller is the identity decoded from a verified session token.
type Caller struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

func CallerFromContext(ctx context.Context) (Caller, error) {
	caller, ok := ctx.Value(CtxKeyCaller{}).(Caller)
	if !ok {
		return Caller{}, ErrUnauthorized
	}

	return caller, nil
}

func SetCallerToContext(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, CtxKeyCaller{}, caller)
}
