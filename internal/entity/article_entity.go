package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article is one constitutional provision with its embedding, as written
// during corpus ingest. Reads in the chat path use Source instead.
type Article struct {
	Id            uuid.UUID
	Country       string
	ArticleNumber string
	ArticleText   string
	ChapterNumber int
	ChapterTitle  string
	Embedding     []float32
	CreatedAt     time.Time
}
