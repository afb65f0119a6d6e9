package service

import (
	"advertisement-api/internal/domain"
)

// Deny reasons surfaced to the transport layer.
const (
	ReasonAuthRequired = "authentication required"
	ReasonNotPermitted = "not enough permissions"
)

// PermissionCheck describes the target of a requested operation.
// Zero values mean "no constraint".
type PermissionCheck struct {
	// TargetUserID requires the actor to be that user
	TargetUserID int64
	// TargetOwnerID requires the actor to own the resource
	TargetOwnerID int64
	// RequiredRole requires the actor to hold that role
	RequiredRole domain.Role
}

// Decision is the outcome of a permission check
type Decision struct {
	Allowed bool
	Reason  string
}

// Decide applies the access policy for an actor against a requested
// operation. It is a pure function over the supplied facts; callers
// provide resource ownership, it never queries storage.
//
// Rules, first match wins: anonymous actors are denied; admins are
// allowed everything; otherwise each present constraint must hold.
func Decide(actor *domain.Claims, check PermissionCheck) Decision {
	if actor == nil {
		return Decision{Reason: ReasonAuthRequired}
	}

	if actor.Role == domain.RoleAdmin {
		return Decision{Allowed: true}
	}

	if check.TargetUserID != 0 && actor.UserID != check.TargetUserID {
		return Decision{Reason: ReasonNotPermitted}
	}

	if check.TargetOwnerID != 0 && actor.UserID != check.TargetOwnerID {
		return Decision{Reason: ReasonNotPermitted}
	}

	if check.RequiredRole != "" && actor.Role != check.RequiredRole {
		return Decision{Reason: ReasonNotPermitted}
	}

	return Decision{Allowed: true}
}
