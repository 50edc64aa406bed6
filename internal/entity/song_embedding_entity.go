package entity

import (
	"time"

	"github.com/google/uuid"
)

type SongEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	SongId         uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
