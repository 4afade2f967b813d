package service

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"newsfeed/internal/api/config"
	"newsfeed/internal/api/dto"
	"newsfeed/internal/model"
	"newsfeed/internal/pkg/database"
	"newsfeed/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errStore = errors.New("disk I/O error")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGormDB(&config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// failingPostRepo fails every call with errStore.
type failingPostRepo struct {
	repository.PostRepo
}

func (failingPostRepo) ListPosts(context.Context, int, int) ([]*model.Post, error) {
	return nil, errStore
}

func (failingPostRepo) GetPost(context.Context, uint64) (*model.Post, error) {
	return nil, errStore
}

func (failingPostRepo) CountPosts(context.Context) (int64, error) {
	return 0, errStore
}

func (failingPostRepo) CreatePost(context.Context, string, string, string, string, []string) (*model.Post, error) {
	return nil, errStore
}

func (failingPostRepo) LikePost(context.Context, uint64) (*model.Post, error) {
	return nil, errStore
}

func (failingPostRepo) UnlikePost(context.Context, uint64) (*model.Post, error) {
	return nil, errStore
}

func (failingPostRepo) IncrementViews(context.Context, uint64) (*model.Post, error) {
	return nil, errStore
}

func (failingPostRepo) ToggleBookmark(context.Context, uint64) (*model.Post, error) {
	return nil, errStore
}

func idString(p *dto.PostDTO) string {
	return strconv.FormatUint(p.ID, 10)
}
