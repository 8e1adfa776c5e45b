// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "bootwatcher/internal/delivery/context"
	"bootwatcher/internal/domain/repository"
	"bootwatcher/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// ListUsers returns the stored users mapping
func (s *userService) ListUsers(ctx context.Context) (map[string]any, error) {
	users, err := s.userRepo.FindAllUsers(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("failed to fetch users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch users")
	}

	if users == nil {
		users = map[string]any{}
	}

	return users, nil
}
