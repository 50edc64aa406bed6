package service

import (
	"context"
	"strings"
	"time"

	"vibewise-be/internal/dto"
	"vibewise-be/internal/pkg/logger"
	"vibewise-be/internal/repository/memory"
	"vibewise-be/internal/repository/specification"
	"vibewise-be/internal/repository/unitofwork"
	"vibewise-be/pkg/embedding"
	"vibewise-be/pkg/enrich"
	"vibewise-be/pkg/events"
	pktNats "vibewise-be/pkg/nats"
	"vibewise-be/pkg/store"

	"github.com/google/uuid"
)

// AutocompleteMinLength gates suggestions: the input must be strictly longer
// than this before any prefix matching happens.
const AutocompleteMinLength = 3

const defaultTopK = 5

type IVibeService interface {
	Autocomplete(ctx context.Context, query string) ([]string, error)
	Recommend(ctx context.Context, sessionID, query string, topK int) (*dto.RecommendResponse, error)
}

type vibeService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	enricher          *enrich.Enricher
	sessionRepo       *memory.SessionRepository
	eventPublisher    *pktNats.Publisher
	logger            logger.ILogger
}

func NewVibeService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	enricher *enrich.Enricher,
	sessionRepo *memory.SessionRepository,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IVibeService {
	return &vibeService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		enricher:          enricher,
		sessionRepo:       sessionRepo,
		eventPublisher:    eventPublisher,
		logger:            sysLogger,
	}
}

func (s *vibeService) Autocomplete(ctx context.Context, query string) ([]string, error) {
	if len(query) <= AutocompleteMinLength {
		return []string{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	suggestions, err := uow.SongRepository().SearchqPrefixes(ctx, query, 10)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *vibeService) Recommend(ctx context.Context, sessionID, query string, topK int) (*dto.RecommendResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = defaultTopK
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Embed the query. Providers return unit vectors, so the pgvector cosine
	// search ranks by cosine similarity.
	embeddingRes, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, err
	}

	scoredResults, err := uow.SongEmbeddingRepository().SearchSimilarWithScore(ctx, embeddingRes.Embedding.Values, topK)
	if err != nil {
		return nil, err
	}

	// Resolve embeddings to songs, deduplicated, preserving similarity order.
	ids := make([]uuid.UUID, 0, len(scoredResults))
	seen := make(map[uuid.UUID]bool)
	for _, sr := range scoredResults {
		if !seen[sr.Embedding.SongId] {
			ids = append(ids, sr.Embedding.SongId)
			seen[sr.Embedding.SongId] = true
		}
	}

	rows := make([]store.CandidateRow, 0, len(ids))
	if len(ids) > 0 {
		songs, err := uow.SongRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
		if err != nil {
			return nil, err
		}

		byID := make(map[uuid.UUID]int, len(songs))
		for i, song := range songs {
			byID[song.Id] = i
		}
		for _, id := range ids {
			if i, ok := byID[id]; ok {
				rows = append(rows, store.CandidateRow{
					Song:   songs[i].Song,
					Artist: songs[i].Artist,
					Text:   songs[i].Text,
				})
			}
		}
	}

	records := s.enricher.Enrich(ctx, rows)

	session := s.sessionRepo.GetOrCreate(sessionID)
	session.Results = records
	session.LastQuery = query
	s.sessionRepo.Save(session)

	// Event emission is auxiliary; failures are logged, never surfaced.
	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "RECOMMENDATION_SERVED",
			Data: map[string]interface{}{
				"session_id": sessionID,
				"query":      query,
				"results":    len(records),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("vibe", "Failed to publish RECOMMENDATION_SERVED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.RecommendResponse{
		Mode:    session.Mode,
		Query:   query,
		Results: records,
	}, nil
}
