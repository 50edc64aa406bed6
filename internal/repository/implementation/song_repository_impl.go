package implementation

import (
	"context"
	"errors"
	"strings"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/mapper"
	"vibewise-be/internal/model"
	"vibewise-be/internal/repository/contract"
	"vibewise-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SongRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SongMapper
}

func NewSongRepository(db *gorm.DB) contract.SongRepository {
	return &SongRepositoryImpl{
		db:     db,
		mapper: mapper.NewSongMapper(),
	}
}

func (r *SongRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SongRepositoryImpl) Create(ctx context.Context, song *entity.Song) error {
	m := r.mapper.ToModel(song)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*song = *r.mapper.ToEntity(m)
	return nil
}

func (r *SongRepositoryImpl) CreateBulk(ctx context.Context, songs []*entity.Song) error {
	models := make([]*model.Song, len(songs))
	for i, s := range songs {
		models[i] = r.mapper.ToModel(s)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*songs[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *SongRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Song{}, id).Error
}

func (r *SongRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Song, error) {
	var m model.Song
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SongRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Song, error) {
	var models []*model.Song
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SongRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Song{}).Count(&count).Error
	return count, err
}

func (r *SongRepositoryImpl) SearchqPrefixes(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	var values []string
	err := r.applySpecifications(
		r.db.WithContext(ctx).Model(&model.Song{}),
		specification.SearchqPrefix{Prefix: strings.ToLower(prefix)},
	).
		Distinct("searchq").
		Order("searchq ASC").
		Limit(limit).
		Pluck("searchq", &values).Error

	if err != nil {
		return nil, err
	}
	return values, nil
}
