package contract

import (
	"context"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/repository/specification"
)

type PlayHistoryRepository interface {
	Create(ctx context.Context, history *entity.PlayHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlayHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
