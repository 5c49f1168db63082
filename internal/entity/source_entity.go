package entity

// Source is a cited constitutional passage returned by vector search.
// Immutable once attached to a message.
type Source struct {
	ArticleNumber string  `json:"article_number"`
	ArticleText   string  `json:"article_text"`
	ChapterNumber int     `json:"chapter_number"`
	ChapterTitle  string  `json:"chapter_title"`
	Similarity    float64 `json:"similarity"`
}
