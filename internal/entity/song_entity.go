package entity

import (
	"time"

	"github.com/google/uuid"
)

type Song struct {
	Id        uuid.UUID
	Song      string
	Artist    string
	Text      string
	Searchq   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
