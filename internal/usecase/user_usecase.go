package usecase

import "context"

// UserUsecase exposes stored user records for diagnostics
type UserUsecase interface {
	// ListUsers returns the raw users mapping
	ListUsers(ctx context.Context) (map[string]any, error)
}
