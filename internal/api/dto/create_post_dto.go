package dto

type CreatePostDTO struct {
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	AuthorName     *string  `json:"authorName"`
	AuthorUsername *string  `json:"authorUsername"`
	Tags           []string `json:"tags"`
}
