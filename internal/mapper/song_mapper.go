package mapper

import (
	"time"

	"vibewise-be/internal/entity"
	"vibewise-be/internal/model"

	"gorm.io/gorm"
)

type SongMapper struct{}

func NewSongMapper() *SongMapper {
	return &SongMapper{}
}

func (m *SongMapper) ToEntity(s *model.Song) *entity.Song {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Song{
		Id:        s.Id,
		Song:      s.Song,
		Artist:    s.Artist,
		Text:      s.Text,
		Searchq:   s.Searchq,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: s.DeletedAt.Valid,
	}
}

func (m *SongMapper) ToModel(s *entity.Song) *model.Song {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Song{
		Id:        s.Id,
		Song:      s.Song,
		Artist:    s.Artist,
		Text:      s.Text,
		Searchq:   s.Searchq,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *SongMapper) ToEntities(songs []*model.Song) []*entity.Song {
	entities := make([]*entity.Song, len(songs))
	for i, s := range songs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
