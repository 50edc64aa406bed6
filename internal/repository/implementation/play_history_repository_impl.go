package implementation

import (
	"context"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/mapper"
	"vibewise-be/internal/model"
	"vibewise-be/internal/repository/contract"
	"vibewise-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PlayHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlayHistoryMapper
}

func NewPlayHistoryRepository(db *gorm.DB) contract.PlayHistoryRepository {
	return &PlayHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlayHistoryMapper(),
	}
}

func (r *PlayHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlayHistoryRepositoryImpl) Create(ctx context.Context, history *entity.PlayHistory) error {
	m := r.mapper.ToModel(history)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*history = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlayHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PlayHistory, error) {
	var models []*model.PlayHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PlayHistory, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PlayHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.PlayHistory{}).Count(&count).Error
	return count, err
}
