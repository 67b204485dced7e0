package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *UseCase) Update(ctx context.Context, userID, email string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Email = strings.TrimSpace(email)
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
