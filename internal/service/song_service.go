package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"vibewise-be/internal/dto"
	"vibewise-be/internal/entity"
	"vibewise-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISongService interface {
	Create(ctx context.Context, req *dto.CreateSongRequest) (*dto.CreateSongResponse, error)
}

type songService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewSongService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ISongService {
	return &songService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *songService) Create(ctx context.Context, req *dto.CreateSongRequest) (*dto.CreateSongResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	song := entity.Song{
		Id:        uuid.New(),
		Song:      req.Song,
		Artist:    req.Artist,
		Text:      req.Text,
		Searchq:   Searchq(req.Song, req.Artist),
		CreatedAt: time.Now(),
	}

	if err := uow.SongRepository().Create(ctx, &song); err != nil {
		return nil, err
	}

	msgPayload := dto.PublishEmbedSongMessage{
		SongId: song.Id,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.CreateSongResponse{
		Id: song.Id,
	}, nil
}

// Searchq derives the lowercase autocomplete key: "song artist", trimmed.
// Matches the derived column of the catalog export.
func Searchq(song, artist string) string {
	return strings.ToLower(strings.TrimSpace(song + " " + artist))
}
