package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchqPrefix matches songs whose searchq column starts with the given
// (case-insensitive) prefix. Backs the autocomplete suggestions.
type SearchqPrefix struct {
	Prefix string
}

func (s SearchqPrefix) Apply(db *gorm.DB) *gorm.DB {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(s.Prefix))
	return db.Where("searchq LIKE ?", escaped+"%")
}

// BySongId filters embeddings by owning song
type BySongId struct {
	SongId uuid.UUID
}

func (s BySongId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("song_id = ?", s.SongId)
}

// BySessionId filters play history rows by session
type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}
