package repository

import "context"

// UserRepository exposes the raw users node for diagnostics.
type UserRepository interface {
	// FindAllUsers returns the users mapping as stored, or an empty map.
	FindAllUsers(ctx context.Context) (map[string]any, error)
}
