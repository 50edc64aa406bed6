package dto

import "github.com/google/uuid"

// PublishEmbedSongMessage is the payload of an EMBED_SONG job on the
// internal event bus. The consumer loads the song and (re)builds its
// embedding row.
type PublishEmbedSongMessage struct {
	SongId uuid.UUID `json:"song_id"`
}
