package model

import (
	"time"
)

// Post is the single feed entity. UserLiked is one global flag per post, not per viewer.
type Post struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"type:varchar(100);not null" json:"title"`
	Body           string    `gorm:"type:text;not null" json:"body"`
	AuthorName     string    `gorm:"type:varchar(255);default:Anonymous" json:"author_name"`
	AuthorUsername string    `gorm:"type:varchar(255);default:anonymous" json:"author_username"`
	AuthorAvatar   *string   `gorm:"type:varchar(512)" json:"author_avatar"`
	LikesCount     int       `gorm:"not null;default:0" json:"likes_count"`
	UserLiked      bool      `gorm:"not null;default:false" json:"user_liked"`
	Views          int       `gorm:"not null;default:0" json:"views"`
	CommentsCount  int       `gorm:"not null;default:0" json:"comments_count"`
	ReadTime       string    `gorm:"type:varchar(32);not null;default:'1 min'" json:"read_time"`
	Tags           Tags      `gorm:"type:text" json:"tags"`
	IsBookmarked   bool      `gorm:"not null;default:false" json:"is_bookmarked"`
	Trending       bool      `gorm:"not null;default:false" json:"trending"`
	CreatedAt      time.Time `gorm:"index:idx_created_at" json:"created_at"`
}

func (Post) TableName() string {
	return "posts"
}
