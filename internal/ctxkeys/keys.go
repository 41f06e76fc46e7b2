// Package ctxkeys defines typed context keys shared between middleware and handlers.
// Both sides import this package so neither has to import the other.
package ctxkeys

import "context"

// Key is a typed string used as context key to prevent collisions.
type Key string

const (
	UserID    Key = "userID"
	UserRole  Key = "userRole"
	UserEmail Key = "userEmail"
	RequestID Key = "requestID"
)

// ValidRoles lists all valid role strings.
var ValidRoles = map[string]bool{
	"operator": true,
	"manager":  true,
	"admin":    true,
}

// RoleLevel maps role names to permission levels.
var RoleLevel = map[string]int{
	"operator": 1,
	"manager":  2,
	"admin":    3,
}

// Role returns the authenticated role, or "" outside an authenticated request.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(UserRole).(string)
	return role
}

// Subject returns the authenticated user id, or "".
func Subject(ctx context.Context) string {
	id, _ := ctx.Value(UserID).(string)
	return id
}

// RequestIDFrom returns the id assigned by the request-id middleware.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(RequestID).(string)
	return id
}
