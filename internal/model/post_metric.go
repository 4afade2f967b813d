package model

import (
	"time"
)

// PostMetric is one day's snapshot of a post's counters.
type PostMetric struct {
	ID            uint64    `gorm:"primaryKey"`
	PostID        uint64    `gorm:"not null;uniqueIndex:idx_post_date"`
	MetricDate    time.Time `gorm:"not null;uniqueIndex:idx_post_date;column:metric_date"`
	TotalLikes    int       `gorm:"not null;default:0"`
	TotalViews    int       `gorm:"not null;default:0"`
	TotalComments int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (PostMetric) TableName() string {
	return "post_daily_metrics"
}
