package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Song struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Song      string         `gorm:"type:text;not null"`
	Artist    string         `gorm:"type:text"`
	Text      string         `gorm:"type:text"` // lyrics/description used for embedding
	Searchq   string         `gorm:"type:text;index"` // lowercased "song artist", autocomplete key
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Song) TableName() string {
	return "songs"
}
