package memory

import (
	"time"

	"vibewise-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps UI session state in process memory. Sessions idle
// for over an hour are purged; the frontend simply starts over on SET_VIBE.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// GetOrCreate returns the existing session or a fresh one in its initial state.
func (r *SessionRepository) GetOrCreate(sessionID string) *store.Session {
	if s, found := r.Get(sessionID); found {
		return s
	}
	s := store.NewSession(sessionID)
	r.Save(s)
	return s
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
