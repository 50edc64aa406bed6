package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"vibewise-be/internal/dto"
	"vibewise-be/internal/entity"
	"vibewise-be/internal/repository/specification"
	"vibewise-be/internal/repository/unitofwork"
	"vibewise-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedSongMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing embedding for SongId: %s", payload.SongId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	song, err := uow.SongRepository().FindOne(ctx, specification.ByID{ID: payload.SongId})
	if err != nil {
		log.Printf("[ERROR] Failed to get song %s: %v", payload.SongId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if song == nil {
		log.Printf("[ERROR] Song not found: %s", payload.SongId)
		msg.Ack() // Song deleted in the meantime? Ack.
		return
	}

	document := BuildEmbeddingDocument(song.Song, song.Artist, song.Text)

	embeddingRes, err := cs.embeddingProvider.Generate(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for song %s: %v", song.Id, err)
		msg.Nack()
		return
	}

	// Replace any stale embedding rows for this song
	if err := uow.SongEmbeddingRepository().DeleteBySongId(ctx, song.Id); err != nil {
		log.Printf("[ERROR] Failed to clear old embeddings for song %s: %v", song.Id, err)
		msg.Nack()
		return
	}

	songEmbedding := &entity.SongEmbedding{
		Id:             uuid.New(),
		Document:       document,
		EmbeddingValue: embeddingRes.Embedding.Values,
		SongId:         song.Id,
	}
	if err := uow.SongEmbeddingRepository().Create(ctx, songEmbedding); err != nil {
		log.Printf("[ERROR] Failed to store embedding for song %s: %v", song.Id, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Stored embedding for song %s (%s)", song.Id, song.Song)
	msg.Ack()
}

// BuildEmbeddingDocument formats the text handed to the embedding model.
// The song and artist headers anchor title/artist queries; the body carries
// the lyrical content used for vibe matching.
func BuildEmbeddingDocument(song, artist, text string) string {
	return fmt.Sprintf("Song: %s\nArtist: %s\n\n%s", song, artist, text)
}
