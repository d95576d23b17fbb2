package services

import (
	"github.com/tradecademy/marketplace/models"
)

// Action is an operation an actor wants to perform on a resource
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actor is the authenticated (or anonymous) caller of an operation
type Actor struct {
	ID            string
	Role          models.Role
	Authenticated bool
}

// IsAdmin reports whether the actor holds the admin role
func (a Actor) IsAdmin() bool {
	return a.Authenticated && a.Role == models.RoleAdmin
}

// CanCreateService reports whether the actor may publish services
func (a Actor) CanCreateService() bool {
	return a.Authenticated && (a.Role == models.RoleCreator || a.Role == models.RoleAdmin)
}

// CanAccess is the pure authorization predicate. Precedence:
//  1. unauthenticated actors may only read ACTIVE resources
//  2. the resource owner and admins may do anything
//  3. everyone else is denied
func CanAccess(actor Actor, ownerID string, action Action, status models.ServiceStatus) error {
	if !actor.Authenticated {
		if action == ActionRead && status == models.ServiceStatusActive {
			return nil
		}
		return ErrUnauthenticated
	}

	if actor.ID == ownerID || actor.Role == models.RoleAdmin {
		return nil
	}

	if action == ActionRead && status == models.ServiceStatusActive {
		return nil
	}

	return ErrForbidden
}
