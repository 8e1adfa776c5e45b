package rtdb

import (
	"context"

	domainerrors "bootwatcher/internal/domain/errors"
	"bootwatcher/internal/domain/repository"
	"bootwatcher/internal/infra/persistence/model"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"
)

type userRepository struct {
	client *db.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *db.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

// FindAllUsers returns the raw users node. A missing node reads as empty.
func (repo *userRepository) FindAllUsers(ctx context.Context) (map[string]any, error) {
	var users map[string]any
	if err := repo.client.NewRef(model.UsersPath).Get(ctx, &users); err != nil {
		return nil, errors.WithStack(domainerrors.ErrStoreUnavailable.WithDetails(errors.Wrap(err, "read users node").Error()))
	}

	if users == nil {
		users = map[string]any{}
	}

	return users, nil
}
