package dto

// AuthorDTO 帖子作者
type AuthorDTO struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// PostDTO 帖子对外结构
type PostDTO struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Author        *AuthorDTO `json:"author" copier:"-"`
	LikesCount    int        `json:"likesCount"`
	UserLiked     bool       `json:"userLiked"`
	CreatedAt     string     `json:"createdAt" copier:"-"`
	Views         int        `json:"views"`
	CommentsCount int        `json:"commentsCount"`
	ReadTime      string     `json:"readTime"`
	Tags          []string   `json:"tags" copier:"-"`
	IsBookmarked  bool       `json:"isBookmarked"`
	Trending      bool       `json:"trending"`
	Timestamp     string     `json:"timestamp"`
}
