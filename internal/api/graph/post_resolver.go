package graph

import (
	"strconv"

	"newsfeed/internal/api/dto"

	"github.com/graph-gophers/graphql-go"
)

type PostResolver struct {
	post *dto.PostDTO
}

func (r *PostResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatUint(r.post.ID, 10))
}

func (r *PostResolver) Title() string { return r.post.Title }

func (r *PostResolver) Body() string { return r.post.Body }

func (r *PostResolver) Author() *AuthorResolver {
	return &AuthorResolver{author: r.post.Author}
}

func (r *PostResolver) LikesCount() int32 { return int32(r.post.LikesCount) }

func (r *PostResolver) UserLiked() bool { return r.post.UserLiked }

func (r *PostResolver) CreatedAt() string { return r.post.CreatedAt }

func (r *PostResolver) Views() int32 { return int32(r.post.Views) }

func (r *PostResolver) CommentsCount() int32 { return int32(r.post.CommentsCount) }

func (r *PostResolver) ReadTime() string { return r.post.ReadTime }

func (r *PostResolver) Tags() []string {
	if r.post.Tags == nil {
		return []string{}
	}
	return r.post.Tags
}

func (r *PostResolver) IsBookmarked() bool { return r.post.IsBookmarked }

func (r *PostResolver) Trending() bool { return r.post.Trending }

func (r *PostResolver) Timestamp() string { return r.post.Timestamp }

type AuthorResolver struct {
	author *dto.AuthorDTO
}

func (r *AuthorResolver) Name() string { return r.author.Name }

func (r *AuthorResolver) Username() string { return r.author.Username }

func (r *AuthorResolver) Avatar() *string {
	if r.author.Avatar == "" {
		return nil
	}
	return &r.author.Avatar
}
