package service

import (
	"testing"

	"advertisement-api/internal/domain"
)

func TestDecide(t *testing.T) {
	user5 := &domain.Claims{Username: "alice", UserID: 5, Role: domain.RoleUser}
	admin := &domain.Claims{Username: "root", UserID: 1, Role: domain.RoleAdmin}

	tests := []struct {
		name       string
		actor      *domain.Claims
		check      PermissionCheck
		allowed    bool
		wantReason string
	}{
		{
			name:       "anonymous is denied",
			actor:      nil,
			check:      PermissionCheck{},
			wantReason: ReasonAuthRequired,
		},
		{
			name:       "anonymous is denied regardless of target",
			actor:      nil,
			check:      PermissionCheck{TargetUserID: 5},
			wantReason: ReasonAuthRequired,
		},
		{
			name:    "admin bypasses target user check",
			actor:   admin,
			check:   PermissionCheck{TargetUserID: 999},
			allowed: true,
		},
		{
			name:    "admin bypasses owner check",
			actor:   admin,
			check:   PermissionCheck{TargetOwnerID: 999},
			allowed: true,
		},
		{
			name:    "admin bypasses required role",
			actor:   admin,
			check:   PermissionCheck{RequiredRole: domain.RoleUser},
			allowed: true,
		},
		{
			name:    "user may act on own account",
			actor:   user5,
			check:   PermissionCheck{TargetUserID: 5},
			allowed: true,
		},
		{
			name:       "user may not act on another account",
			actor:      user5,
			check:      PermissionCheck{TargetUserID: 6},
			wantReason: ReasonNotPermitted,
		},
		{
			name:    "user may act on own resource",
			actor:   user5,
			check:   PermissionCheck{TargetOwnerID: 5},
			allowed: true,
		},
		{
			name:       "user may not act on another's resource",
			actor:      user5,
			check:      PermissionCheck{TargetOwnerID: 6},
			wantReason: ReasonNotPermitted,
		},
		{
			name:    "matching required role",
			actor:   user5,
			check:   PermissionCheck{RequiredRole: domain.RoleUser},
			allowed: true,
		},
		{
			name:       "mismatched required role",
			actor:      user5,
			check:      PermissionCheck{RequiredRole: domain.RoleAdmin},
			wantReason: ReasonNotPermitted,
		},
		{
			name:    "no constraints allows any authenticated actor",
			actor:   user5,
			check:   PermissionCheck{},
			allowed: true,
		},
		{
			name:       "owner check runs after target user check",
			actor:      user5,
			check:      PermissionCheck{TargetUserID: 6, TargetOwnerID: 5},
			wantReason: ReasonNotPermitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.actor, tt.check)
			if d.Allowed != tt.allowed {
				t.Errorf("Decide() allowed = %v, want %v", d.Allowed, tt.allowed)
			}
			if !tt.allowed && d.Reason != tt.wantReason {
				t.Errorf("Decide() reason = %q, want %q", d.Reason, tt.wantReason)
			}
		})
	}
}
