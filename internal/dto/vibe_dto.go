package dto

import (
	"vibewise-be/pkg/store"

	"github.com/google/uuid"
)

type CreateSongRequest struct {
	Song   string `json:"song" validate:"required"`
	Artist string `json:"artist"`
	Text   string `json:"text" validate:"required"`
}

type CreateSongResponse struct {
	Id uuid.UUID `json:"id"`
}

type RecommendRequest struct {
	Query string `json:"query" validate:"required"`
	TopK  int    `json:"top_k" validate:"omitempty,min=1,max=25"`
}

type RecommendResponse struct {
	Mode    string                `json:"mode"`
	Query   string                `json:"query"`
	Results []store.DisplayRecord `json:"results"`
}

type AutocompleteResponse struct {
	Suggestions []string `json:"suggestions"`
}

type WatchRequest struct {
	Index int `json:"index" validate:"min=0"`
}

// NavigationResponse reports the session's screen after a transition.
// Warning is set when the transition was refused or degraded (e.g. asking
// for the Song screen with no selected video).
type NavigationResponse struct {
	Mode              string `json:"mode"`
	SelectedVideoLink string `json:"selected_video_link,omitempty"`
	Warning           string `json:"warning,omitempty"`
}

type SessionStateResponse struct {
	Mode              string                `json:"mode"`
	Results           []store.DisplayRecord `json:"results"`
	SelectedVideoLink string                `json:"selected_video_link,omitempty"`
	LastQuery         string                `json:"last_query,omitempty"`
}
