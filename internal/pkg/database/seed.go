package database

import (
	"context"
	"fmt"
	log "log/slog"

	"newsfeed/internal/model"
	"newsfeed/internal/pkg/util"

	"gorm.io/gorm"
)

func samplePosts() []*model.Post {
	avatar := func(name string) *string {
		s := util.AvatarURL(name)
		return &s
	}
	return []*model.Post{
		{
			Title:          "Welcome to NewsFeed!",
			Body:           "This is your first post. Start sharing your thoughts with the world! Explore all the amazing features we have built for you.",
			AuthorName:     "NewsFeed Team",
			AuthorUsername: "newsfeed",
			AuthorAvatar:   avatar("NewsFeed Team"),
			LikesCount:     25,
			Views:          156,
			CommentsCount:  8,
			ReadTime:       "2 min",
			Tags:           model.Tags{"welcome", "newsfeed"},
			Trending:       true,
		},
		{
			Title:          "Learning GraphQL",
			Body:           "GraphQL is amazing! You can query exactly the data you need. This revolutionary approach to API design has changed how we think about data fetching.",
			AuthorName:     "Developer",
			AuthorUsername: "developer",
			AuthorAvatar:   avatar("Developer"),
			LikesCount:     42,
			Views:          289,
			CommentsCount:  15,
			ReadTime:       "4 min",
			Tags:           model.Tags{"graphql", "api", "development"},
			Trending:       true,
		},
		{
			Title:          "React + Fastify",
			Body:           "Building modern web apps with React frontend and Fastify backend. The perfect combination for high-performance applications.",
			AuthorName:     "Full Stack Dev",
			AuthorUsername: "fullstackdev",
			AuthorAvatar:   avatar("Full Stack Dev"),
			LikesCount:     18,
			Views:          134,
			CommentsCount:  6,
			ReadTime:       "3 min",
			Tags:           model.Tags{"react", "fastify", "fullstack"},
		},
	}
}

// Seed 表为空时写入示例帖子，返回写入条数
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	posts := samplePosts()
	if err := db.WithContext(ctx).Create(&posts).Error; err != nil {
		return 0, fmt.Errorf("insert sample posts: %w", err)
	}
	log.InfoContext(ctx, "Sample posts inserted", "count", len(posts))
	return len(posts), nil
}
