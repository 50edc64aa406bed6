package service

import (
	"context"
	"strings"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/repository/contract"
	"vibewise-be/internal/repository/specification"
	"vibewise-be/internal/repository/unitofwork"
	"vibewise-be/pkg/embedding"

	"github.com/google/uuid"
)

// In-memory fakes for the repository layer, enough to exercise the services
// without a database.

type fakeSongRepository struct {
	songs []*entity.Song
	err   error
}

func (r *fakeSongRepository) Create(_ context.Context, song *entity.Song) error {
	if r.err != nil {
		return r.err
	}
	r.songs = append(r.songs, song)
	return nil
}

func (r *fakeSongRepository) CreateBulk(_ context.Context, songs []*entity.Song) error {
	if r.err != nil {
		return r.err
	}
	r.songs = append(r.songs, songs...)
	return nil
}

func (r *fakeSongRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.err
}

func (r *fakeSongRepository) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Song, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			for _, s := range r.songs {
				if s.Id == byID.ID {
					return s, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeSongRepository) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Song, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, spec := range specs {
		if byIDs, ok := spec.(specification.ByIDs); ok {
			wanted := make(map[uuid.UUID]bool, len(byIDs.IDs))
			for _, id := range byIDs.IDs {
				wanted[id] = true
			}
			var out []*entity.Song
			for _, s := range r.songs {
				if wanted[s.Id] {
					out = append(out, s)
				}
			}
			return out, nil
		}
	}
	return r.songs, nil
}

func (r *fakeSongRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.songs)), r.err
}

func (r *fakeSongRepository) SearchqPrefixes(_ context.Context, prefix string, limit int) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	prefix = strings.ToLower(prefix)
	out := []string{}
	for _, s := range r.songs {
		if strings.HasPrefix(s.Searchq, prefix) {
			out = append(out, s.Searchq)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeSongEmbeddingRepository struct {
	scored  []*contract.ScoredSongEmbedding
	created []*entity.SongEmbedding
	deleted []uuid.UUID
	err     error
}

func (r *fakeSongEmbeddingRepository) Create(_ context.Context, e *entity.SongEmbedding) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, e)
	return nil
}

func (r *fakeSongEmbeddingRepository) CreateBulk(_ context.Context, es []*entity.SongEmbedding) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, es...)
	return nil
}

func (r *fakeSongEmbeddingRepository) DeleteBySongId(_ context.Context, songId uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, songId)
	return nil
}

func (r *fakeSongEmbeddingRepository) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.SongEmbedding, error) {
	return nil, r.err
}

func (r *fakeSongEmbeddingRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return 0, r.err
}

func (r *fakeSongEmbeddingRepository) SearchSimilar(_ context.Context, _ []float32, limit int) ([]*entity.SongEmbedding, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.SongEmbedding
	for _, s := range r.scored {
		out = append(out, s.Embedding)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeSongEmbeddingRepository) SearchSimilarWithScore(_ context.Context, _ []float32, limit int) ([]*contract.ScoredSongEmbedding, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.scored) > limit {
		return r.scored[:limit], nil
	}
	return r.scored, nil
}

type fakePlayHistoryRepository struct {
	created []*entity.PlayHistory
	err     error
}

func (r *fakePlayHistoryRepository) Create(_ context.Context, h *entity.PlayHistory) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, h)
	return nil
}

func (r *fakePlayHistoryRepository) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.PlayHistory, error) {
	return r.created, r.err
}

func (r *fakePlayHistoryRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.created)), r.err
}

// fakeUnitOfWork hands out the fake repositories and treats transaction
// boundaries as no-ops.
type fakeUnitOfWork struct {
	songs       *fakeSongRepository
	embeddings  *fakeSongEmbeddingRepository
	playHistory *fakePlayHistoryRepository
}

func (u *fakeUnitOfWork) Begin(_ context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                 { return nil }
func (u *fakeUnitOfWork) Rollback() error               { return nil }

func (u *fakeUnitOfWork) SongRepository() contract.SongRepository {
	return u.songs
}

func (u *fakeUnitOfWork) SongEmbeddingRepository() contract.SongEmbeddingRepository {
	return u.embeddings
}

func (u *fakeUnitOfWork) PlayHistoryRepository() contract.PlayHistoryRepository {
	return u.playHistory
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{
		uow: &fakeUnitOfWork{
			songs:       &fakeSongRepository{},
			embeddings:  &fakeSongEmbeddingRepository{},
			playHistory: &fakePlayHistoryRepository{},
		},
	}
}

func (f *fakeUowFactory) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeEmbeddingProvider struct {
	vector []float32
	err    error
}

func (p *fakeEmbeddingProvider) Generate(_ string, _ string) (*embedding.EmbeddingResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: p.vector},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(_, _ string, _ map[string]interface{}) {}
func (nopLogger) Info(_, _ string, _ map[string]interface{})  {}
func (nopLogger) Warn(_, _ string, _ map[string]interface{})  {}
func (nopLogger) Error(_, _ string, _ map[string]interface{}) {}
func (nopLogger) Sync() error                                 { return nil }
