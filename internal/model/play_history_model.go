package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlayHistory records each "watch" selection. Best-effort analytics data;
// writes never block or fail the user action.
type PlayHistory struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string         `gorm:"type:text;index"`
	Song      string         `gorm:"type:text"`
	Artist    string         `gorm:"type:text"`
	VideoLink string         `gorm:"type:text"`
	Payload   datatypes.JSON `gorm:"type:jsonb"` // full display record at selection time
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (PlayHistory) TableName() string {
	return "play_history"
}
