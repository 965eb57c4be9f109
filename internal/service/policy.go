package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type resourceKind uint8

const (
	resourceUser resourceKind = iota
	resourceClient
)

type action uint8

const (
	actionCreate action = iota
	actionList
	actionRead
	actionUpdate
	actionDelete
	actionAssign
	actionChangeRole
)

// resource identifies what is being accessed and who owns it: the user
// itself for users, the assigned user for clients.
type resource struct {
	kind  resourceKind
	owner *uuid.UUID
}

func userResource(id uuid.UUID) resource {
	return resource{kind: resourceUser, owner: &id}
}

func clientResource(c entity.Client) resource {
	return resource{kind: resourceClient, owner: c.AssignedUserID}
}

func anyClient() resource {
	return resource{kind: resourceClient}
}

func anyUser() resource {
	return resource{kind: resourceUser}
}

// canAccess is the single access-control policy. Admins may do anything.
func canAccess(caller entity.Caller, res resource, act action) bool {
	if caller.IsAdmin() {
		return true
	}

	owned := res.owner != nil && *res.owner == caller.ID

	switch res.kind {
	case resourceUser:
		switch act {
		case actionRead, actionUpdate:
			return owned
		default:
			return false
		}

	case resourceClient:
		switch act {
		case actionCreate, actionList:
			return true
		case actionRead, actionUpdate:
			return owned
		default:
			return false
		}
	}

	return false
}
