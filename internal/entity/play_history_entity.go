package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlayHistory struct {
	Id        uuid.UUID
	SessionId string
	Song      string
	Artist    string
	VideoLink string
	Payload   []byte // raw JSON snapshot of the selected display record
	CreatedAt time.Time
}
