package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Lookup   LookupConfig
	Ai       AIConfig
	Topics   TopicConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type LookupConfig struct {
	ITunesBaseURL       string
	ITunesTimeoutSecs   int
	VideoSearchBaseURL  string
	VideoTimeoutSecs    int
	EnrichPoolSize      int
	RecommendTopK       int
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	GeminiApiKey      string
}

type TopicConfig struct {
	EmbedSong string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Lookup: LookupConfig{
			ITunesBaseURL:      getEnv("ITUNES_SEARCH_URL", "https://itunes.apple.com/search"),
			ITunesTimeoutSecs:  getEnvAsInt("ITUNES_TIMEOUT_SECONDS", 2),
			VideoSearchBaseURL: getEnv("VIDEO_SEARCH_URL", "http://localhost:8008"),
			VideoTimeoutSecs:   getEnvAsInt("VIDEO_TIMEOUT_SECONDS", 5),
			EnrichPoolSize:     getEnvAsInt("ENRICH_POOL_SIZE", 5),
			RecommendTopK:      getEnvAsInt("RECOMMEND_TOP_K", 5),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			GeminiApiKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Topics: TopicConfig{
			EmbedSong: getEnv("EMBED_SONG_TOPIC_NAME", "EMBED_SONG"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
