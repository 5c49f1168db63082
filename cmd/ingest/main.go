package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"legal-ai-be/internal/config"
	"legal-ai-be/internal/entity"
	"legal-ai-be/internal/repository/unitofwork"
	"legal-ai-be/pkg/database"
	"legal-ai-be/pkg/embedding"
	"legal-ai-be/pkg/embedding/openrouter"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// corpusEntry mirrors the JSON corpus file produced by the document pipeline.
type corpusEntry struct {
	ArticleNumber string `json:"article_number"`
	ArticleText   string `json:"article_text"`
	ChapterNumber int    `json:"chapter_number"`
	ChapterTitle  string `json:"chapter_title"`
}

const ingestBatchSize = 50

func main() {
	corpusPath := flag.String("corpus", "corpus.json", "path to the corpus JSON file")
	country := flag.String("country", "", "country tag for the corpus (defaults to CORPUS_COUNTRY)")
	flag.Parse()

	cfg := config.Load()
	if *country == "" {
		*country = cfg.App.DefaultCountry
	}

	db, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	raw, err := os.ReadFile(*corpusPath)
	if err != nil {
		log.Fatalf("Error: Failed to read corpus file %s: %v", *corpusPath, err)
	}
	var entries []corpusEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Error: Failed to parse corpus file: %v", err)
	}

	color.Cyan("Ingesting %d provisions for country %q...", len(entries), *country)

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = openrouter.NewOpenRouterProvider(cfg.Ai.OpenRouterAPIKey)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	batch := make([]*entity.Article, 0, ingestBatchSize)
	ingested := 0
	for i, e := range entries {
		vector, err := provider.Embed(ctx, e.ArticleText)
		if err != nil {
			color.Red("Failed to embed article %s: %v", e.ArticleNumber, err)
			os.Exit(1)
		}

		batch = append(batch, &entity.Article{
			Id:            uuid.New(),
			Country:       *country,
			ArticleNumber: e.ArticleNumber,
			ArticleText:   e.ArticleText,
			ChapterNumber: e.ChapterNumber,
			ChapterTitle:  e.ChapterTitle,
			Embedding:     vector,
			CreatedAt:     time.Now(),
		})

		if len(batch) == ingestBatchSize || i == len(entries)-1 {
			if err := uow.ArticleRepository().CreateBatch(ctx, batch); err != nil {
				color.Red("Failed to insert batch: %v", err)
				os.Exit(1)
			}
			ingested += len(batch)
			color.Yellow("  %d/%d provisions ingested", ingested, len(entries))
			batch = batch[:0]
		}
	}

	total, err := uow.ArticleRepository().Count(ctx, *country)
	if err == nil {
		color.Green("Done. Corpus for %q now holds %d provisions.", *country, total)
	} else {
		color.Green("Done.")
	}
}
