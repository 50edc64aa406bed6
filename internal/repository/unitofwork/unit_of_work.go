package unitofwork

import (
	"context"

	"vibewise-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SongRepository() contract.SongRepository
	SongEmbeddingRepository() contract.SongEmbeddingRepository
	PlayHistoryRepository() contract.PlayHistoryRepository
}
