package tag

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type UseCase struct {
	tags   repository.TagRepository
	logger *zap.Logger
}

func New(tags repository.TagRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tags:   tags,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.TagFilter) ([]domain.Tag, int, error) {
	return uc.tags.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.Tag, error) {
	return uc.tags.GetByID(ctx, ownerID, id)
}

func (uc *UseCase) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if err := validate(tag); err != nil {
		return nil, err
	}
	return uc.tags.Create(ctx, tag)
}

func (uc *UseCase) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if err := validate(tag); err != nil {
		return nil, err
	}
	if err := uc.tags.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.tags.Delete(ctx, ownerID, id)
}

// BulkDelete removes the owner's tags among ids and reports the count.
// Ids the user does not own are silently skipped.
func (uc *UseCase) BulkDelete(ctx context.Context, ownerID string, ids []string) (int, error) {
	deleted, err := uc.tags.DeleteBatch(ctx, ownerID, ids)
	if err != nil {
		return 0, err
	}
	uc.logger.Info("tags bulk deleted", zap.String("owner_id", ownerID), zap.Int("count", deleted))
	return deleted, nil
}

// Tag names are stored lowercase; uniqueness per owner is case-insensitive.
func validate(tag *domain.Tag) error {
	if tag == nil {
		return domain.ErrInvalidPayload
	}
	tag.Name = strings.ToLower(strings.TrimSpace(tag.Name))
	if tag.Name == "" {
		return domain.NewError(domain.ErrCodeInvalid, "tag name is required")
	}
	tag.Color = strings.TrimSpace(tag.Color)
	return nil
}
