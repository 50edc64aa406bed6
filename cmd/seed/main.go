package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"

	"vibewise-be/internal/config"
	"vibewise-be/internal/model"
	"vibewise-be/internal/service"
	"vibewise-be/pkg/database"
	"vibewise-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/pgvector/pgvector-go"
)

// Seeds the song catalog from a CSV export with columns: song, artist, text.
// Embeddings are generated inline so a fresh database is immediately
// searchable without waiting on the background consumer.
func main() {
	csvPath := flag.String("csv", "data/songdata.csv", "path to the song catalog CSV")
	withEmbeddings := flag.Bool("embed", true, "generate embeddings while seeding")
	flag.Parse()

	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var provider embedding.EmbeddingProvider
	if *withEmbeddings {
		if cfg.Ai.EmbeddingProvider == "gemini" {
			provider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		} else {
			provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
		}
	}

	file, err := os.Open(*csvPath)
	if err != nil {
		color.Red("Failed to open catalog: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	color.Cyan("🎵 Seeding song catalog from %s\n", *csvPath)

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		color.Red("Failed to read CSV header: %v", err)
		os.Exit(1)
	}
	cols := columnIndex(header)

	created, skipped, failed := 0, 0, 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			color.Red("Bad CSV row: %v", err)
			failed++
			continue
		}

		song := field(record, cols, "song")
		artist := field(record, cols, "artist")
		text := field(record, cols, "text")
		if song == "" {
			failed++
			continue
		}

		searchq := service.Searchq(song, artist)

		var existing model.Song
		if err := db.Where("searchq = ?", searchq).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		row := model.Song{
			Song:    song,
			Artist:  artist,
			Text:    text,
			Searchq: searchq,
		}
		if err := db.Create(&row).Error; err != nil {
			color.Red("Failed to create song '%s': %v", song, err)
			failed++
			continue
		}

		if provider != nil {
			document := service.BuildEmbeddingDocument(song, artist, text)
			res, err := provider.Generate(document, "RETRIEVAL_DOCUMENT")
			if err != nil {
				color.Yellow("No embedding for '%s': %v", song, err)
			} else {
				emb := model.SongEmbedding{
					Document:       document,
					EmbeddingValue: pgvector.NewVector(res.Embedding.Values),
					SongId:         row.Id,
				}
				if err := db.Create(&emb).Error; err != nil {
					color.Yellow("Failed to store embedding for '%s': %v", song, err)
				}
			}
		}

		created++
		if created%100 == 0 {
			color.Green("  ... %d songs seeded", created)
		}
	}

	color.Green("✅ Done: %d created, %d skipped, %d failed", created, skipped, failed)
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
