package contract

import (
	"context"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SongRepository interface {
	Create(ctx context.Context, song *entity.Song) error
	CreateBulk(ctx context.Context, songs []*entity.Song) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Song, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Song, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchqPrefixes returns distinct searchq values starting with prefix,
	// for autocomplete suggestions. Case-insensitive, limit-bounded.
	SearchqPrefixes(ctx context.Context, prefix string, limit int) ([]string, error)
}
