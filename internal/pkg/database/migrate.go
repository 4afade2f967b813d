package database

import (
	"fmt"

	"newsfeed/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the posts and metric tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Post{}, &model.PostMetric{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
