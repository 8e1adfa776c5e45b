package memory

import (
	"context"
	"maps"

	"bootwatcher/internal/domain/repository"
)

type userRepository struct {
	users map[string]any
}

// NewUserRepository creates a read-only users store seeded with users.
func NewUserRepository(users map[string]any) repository.UserRepository {
	return &userRepository{users: maps.Clone(users)}
}

func (repo *userRepository) FindAllUsers(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if repo.users == nil {
		return map[string]any{}, nil
	}

	return maps.Clone(repo.users), nil
}
