package contract

import (
	"context"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredSongEmbedding wraps SongEmbedding with its similarity score
type ScoredSongEmbedding struct {
	Embedding  *entity.SongEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type SongEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.SongEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.SongEmbedding) error
	DeleteBySongId(ctx context.Context, songId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SongEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilar runs a cosine nearest-neighbor search, most similar first.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.SongEmbedding, error)
	// SearchSimilarWithScore also returns each hit's cosine similarity.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredSongEmbedding, error)
}
