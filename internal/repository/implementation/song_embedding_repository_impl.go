package implementation

import (
	"context"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/mapper"
	"vibewise-be/internal/model"
	"vibewise-be/internal/repository/contract"
	"vibewise-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SongEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SongEmbeddingMapper
}

func NewSongEmbeddingRepository(db *gorm.DB) contract.SongEmbeddingRepository {
	return &SongEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSongEmbeddingMapper(),
	}
}

func (r *SongEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SongEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.SongEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *SongEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.SongEmbedding) error {
	models := make([]*model.SongEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *SongEmbeddingRepositoryImpl) DeleteBySongId(ctx context.Context, songId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("song_id = ?", songId).Delete(&model.SongEmbedding{}).Error
}

func (r *SongEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SongEmbedding, error) {
	var models []*model.SongEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SongEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SongEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.SongEmbedding{}).Count(&count).Error
	return count, err
}

func (r *SongEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.SongEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.SongEmbedding

	// pgvector cosine distance: embedding_value <=> vector, nearest first.
	// Soft-deleted embeddings and songs must not surface in results.
	err := r.db.WithContext(ctx).
		Joins("JOIN songs ON songs.id = song_embeddings.song_id").
		Where("song_embeddings.deleted_at IS NULL").
		Where("songs.deleted_at IS NULL").
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	entities := make([]*entity.SongEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

// SearchSimilarWithScore returns embeddings with similarity scores.
// Cosine distance in pgvector is 1 - cosine_similarity, so we select
// 1 - (embedding_value <=> query_vector) as the similarity.
func (r *SongEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredSongEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.SongEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("song_embeddings").
		Select("song_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN songs ON songs.id = song_embeddings.song_id").
		Where("song_embeddings.deleted_at IS NULL").
		Where("songs.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredSongEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredSongEmbedding{
			Embedding:  r.mapper.ToEntity(&res.SongEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
