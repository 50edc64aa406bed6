package service

import (
	"context"
	"encoding/json"
	"time"

	"vibewise-be/internal/dto"
	"vibewise-be/internal/entity"
	"vibewise-be/internal/pkg/logger"
	"vibewise-be/internal/repository/memory"
	"vibewise-be/internal/repository/unitofwork"
	"vibewise-be/pkg/events"
	pktNats "vibewise-be/pkg/nats"
	"vibewise-be/pkg/store"

	"github.com/google/uuid"
)

// WarningNoVideoSelected is surfaced when the Song screen is requested (or
// entered) without a playable link.
const WarningNoVideoSelected = "No video selected!"

type ISessionService interface {
	State(sessionID string) *dto.SessionStateResponse
	RequestSongView(sessionID string) *dto.NavigationResponse
	BackToSetVibe(sessionID string) *dto.NavigationResponse
	Watch(ctx context.Context, sessionID string, index int) (*dto.NavigationResponse, error)
}

type sessionService struct {
	sessionRepo    *memory.SessionRepository
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewSessionService(
	sessionRepo *memory.SessionRepository,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

func (s *sessionService) State(sessionID string) *dto.SessionStateResponse {
	session := s.sessionRepo.GetOrCreate(sessionID)
	return &dto.SessionStateResponse{
		Mode:              session.Mode,
		Results:           session.Results,
		SelectedVideoLink: session.SelectedVideoLink,
		LastQuery:         session.LastQuery,
	}
}

// RequestSongView handles the sidebar "Song" action: only switches screens
// when a video has been selected, otherwise stays put and warns.
func (s *sessionService) RequestSongView(sessionID string) *dto.NavigationResponse {
	session := s.sessionRepo.GetOrCreate(sessionID)

	if session.SelectedVideoLink == "" {
		return &dto.NavigationResponse{
			Mode:    session.Mode,
			Warning: WarningNoVideoSelected,
		}
	}

	session.Mode = store.ModeSong
	s.sessionRepo.Save(session)

	return &dto.NavigationResponse{
		Mode:              session.Mode,
		SelectedVideoLink: session.SelectedVideoLink,
	}
}

// BackToSetVibe returns to the search screen. Results and the selected link
// persist so the next visit to the Song screen resumes where it left off.
func (s *sessionService) BackToSetVibe(sessionID string) *dto.NavigationResponse {
	session := s.sessionRepo.GetOrCreate(sessionID)
	session.Mode = store.ModeSetVibe
	s.sessionRepo.Save(session)

	return &dto.NavigationResponse{
		Mode:              session.Mode,
		SelectedVideoLink: session.SelectedVideoLink,
	}
}

// Watch selects a result for playback and switches to the Song screen. The
// selected link may be empty (its video lookup failed); the transition still
// happens and the response carries the warning the Song screen shows.
func (s *sessionService) Watch(ctx context.Context, sessionID string, index int) (*dto.NavigationResponse, error) {
	session := s.sessionRepo.GetOrCreate(sessionID)

	if index < 0 || index >= len(session.Results) {
		return nil, ErrResultIndexOutOfRange
	}

	record := session.Results[index]
	session.SelectedVideoLink = record.Link
	session.Mode = store.ModeSong
	s.sessionRepo.Save(session)

	s.recordPlayHistory(ctx, sessionID, record)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "VIDEO_SELECTED",
			Data: map[string]interface{}{
				"session_id": sessionID,
				"song":       record.Song,
				"artist":     record.Artist,
				"link":       record.Link,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("session", "Failed to publish VIDEO_SELECTED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	res := &dto.NavigationResponse{
		Mode:              session.Mode,
		SelectedVideoLink: session.SelectedVideoLink,
	}
	if record.Link == "" {
		res.Warning = WarningNoVideoSelected
	}
	return res, nil
}

// recordPlayHistory is best effort: the watch action must never fail because
// analytics could not be written.
func (s *sessionService) recordPlayHistory(ctx context.Context, sessionID string, record store.DisplayRecord) {
	payload, err := json.Marshal(record)
	if err != nil {
		payload = nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	history := &entity.PlayHistory{
		Id:        uuid.New(),
		SessionId: sessionID,
		Song:      record.Song,
		Artist:    record.Artist,
		VideoLink: record.Link,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	if err := uow.PlayHistoryRepository().Create(ctx, history); err != nil {
		s.logger.Warn("session", "Failed to record play history", map[string]interface{}{
			"error": err.Error(),
			"song":  record.Song,
		})
	}
}
