package dto

import "legal-ai-be/internal/entity"

type SearchRequest struct {
	Query      string `json:"query" validate:"required"`
	Country    string `json:"country,omitempty"`
	MatchCount int    `json:"match_count,omitempty" validate:"omitempty,min=1,max=20"`
}

type SearchResponse struct {
	Results []entity.Source `json:"results"`
}
