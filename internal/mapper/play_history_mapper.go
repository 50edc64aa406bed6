package mapper

import (
	"vibewise-be/internal/entity"
	"vibewise-be/internal/model"

	"gorm.io/datatypes"
)

type PlayHistoryMapper struct{}

func NewPlayHistoryMapper() *PlayHistoryMapper {
	return &PlayHistoryMapper{}
}

func (m *PlayHistoryMapper) ToEntity(p *model.PlayHistory) *entity.PlayHistory {
	if p == nil {
		return nil
	}
	return &entity.PlayHistory{
		Id:        p.Id,
		SessionId: p.SessionId,
		Song:      p.Song,
		Artist:    p.Artist,
		VideoLink: p.VideoLink,
		Payload:   []byte(p.Payload),
		CreatedAt: p.CreatedAt,
	}
}

func (m *PlayHistoryMapper) ToModel(p *entity.PlayHistory) *model.PlayHistory {
	if p == nil {
		return nil
	}
	return &model.PlayHistory{
		Id:        p.Id,
		SessionId: p.SessionId,
		Song:      p.Song,
		Artist:    p.Artist,
		VideoLink: p.VideoLink,
		Payload:   datatypes.JSON(p.Payload),
		CreatedAt: p.CreatedAt,
	}
}
