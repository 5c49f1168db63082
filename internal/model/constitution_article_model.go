package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// ConstitutionArticle is one row of the pre-built vector index. The corpus is
// ingested out of band; this service only reads it.
type ConstitutionArticle struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Country       string          `gorm:"type:varchar(100);not null;index"`
	ArticleNumber string          `gorm:"type:varchar(50);not null"`
	ArticleText   string          `gorm:"type:text;not null"`
	ChapterNumber int             `gorm:"not null"`
	ChapterTitle  string          `gorm:"type:text;not null"`
	Embedding     pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}

func (ConstitutionArticle) TableName() string {
	return "constitution_articles"
}
