package bootstrap

import (
	"log"
	"time"

	"vibewise-be/internal/config"
	"vibewise-be/internal/controller"
	"vibewise-be/internal/pkg/logger"
	"vibewise-be/internal/repository/memory"
	"vibewise-be/internal/repository/unitofwork"
	"vibewise-be/internal/service"
	"vibewise-be/pkg/embedding"
	"vibewise-be/pkg/enrich"
	"vibewise-be/pkg/lookup"

	pktNats "vibewise-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	VibeController controller.IVibeController
	SongController controller.ISongController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure (Exposed for shutdown)
	Enricher *enrich.Enricher
	Logger   logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Services
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "gemini" {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	}

	// Lookup clients + enrichment pipeline
	coverClient := lookup.NewCoverClient(
		cfg.Lookup.ITunesBaseURL,
		time.Duration(cfg.Lookup.ITunesTimeoutSecs)*time.Second,
	)
	videoClient := lookup.NewVideoClient(
		cfg.Lookup.VideoSearchBaseURL,
		time.Duration(cfg.Lookup.VideoTimeoutSecs)*time.Second,
	)
	enricher, err := enrich.NewEnricher(
		coverClient,
		videoClient,
		enrich.WithPoolSize(cfg.Lookup.EnrichPoolSize),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize enrichment pool: %v", err)
	}

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 3.5 Infrastructure
	// NATS (optional: the app runs fine without a broker)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	publisherService := service.NewPublisherService(pubSub, cfg.Topics.EmbedSong)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.EmbedSong,
		uowFactory,
		embeddingProvider, // Injected
	)

	songService := service.NewSongService(uowFactory, publisherService)
	vibeService := service.NewVibeService(
		uowFactory,
		embeddingProvider, // Injected
		enricher,
		sessionRepo,
		natsPub,
		sysLogger,
	)
	sessionService := service.NewSessionService(
		sessionRepo,
		uowFactory,
		natsPub,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		VibeController: controller.NewVibeController(vibeService, sessionService),
		SongController: controller.NewSongController(songService),

		ConsumerService: consumerService,

		Enricher: enricher,
		Logger:   sysLogger,
	}
}
