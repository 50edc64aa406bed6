package store

// CandidateRow is one metadata record returned by the nearest-neighbor
// search, before enrichment. Immutable for the duration of a query cycle.
type CandidateRow struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
	Text   string `json:"text"`
}

// DisplayRecord is an enriched recommendation result, ready for the frontend grid.
type DisplayRecord struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
	Text   string `json:"text"`
	Cover  string `json:"cover,omitempty"` // artwork URL, may be empty when both lookups failed
	Link   string `json:"link,omitempty"`  // playable video link, may be empty
}

// Session represents the active UI session state in memory.
// Mode decides which screen the frontend renders.
type Session struct {
	ID      string          `json:"id"`
	Mode    string          `json:"mode"` // "SET_VIBE" | "SONG"
	Results []DisplayRecord `json:"results"`

	// SelectedVideoLink is set by the Watch action. It may legitimately be
	// empty (the video lookup failed for that result); the Song screen then
	// renders its own warning instead of a player.
	SelectedVideoLink string `json:"selected_video_link"`

	// LastQuery remembers the query that produced Results.
	LastQuery string `json:"last_query"`
}

const (
	ModeSetVibe = "SET_VIBE"
	ModeSong    = "SONG"
)

// NewSession returns a session in its initial state: the search screen,
// no results, nothing selected.
func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Mode:    ModeSetVibe,
		Results: []DisplayRecord{},
	}
}
