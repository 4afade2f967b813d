package service

import (
	"time"

	"newsfeed/internal/api/dto"
	"newsfeed/internal/model"
	"newsfeed/internal/pkg/util"

	"github.com/jinzhu/copier"
)

// ToPostDTO 将数据库行转换为对外结构，作者信息缺失时按名称推导
func ToPostDTO(post *model.Post, now time.Time) *dto.PostDTO {
	if post == nil {
		return nil
	}

	res := &dto.PostDTO{}
	_ = copier.Copy(res, post)

	res.Author = toAuthorDTO(post)
	res.CreatedAt = post.CreatedAt.UTC().Format(time.RFC3339)
	res.Timestamp = util.RelativeTime(post.CreatedAt, now)
	res.Tags = []string(post.Tags)
	if res.Tags == nil {
		res.Tags = []string{}
	}
	return res
}

func toAuthorDTO(post *model.Post) *dto.AuthorDTO {
	name := post.AuthorName
	if name == "" {
		name = util.DefaultAuthorName
	}

	username := post.AuthorUsername
	if username == "" {
		username = util.Username(name)
	}

	avatar := util.StringOr(post.AuthorAvatar, "")
	if avatar == "" {
		avatar = util.AvatarURL(name)
	}

	return &dto.AuthorDTO{
		Name:     name,
		Username: username,
		Avatar:   avatar,
	}
}

// ToPostDTOs 批量转换
func ToPostDTOs(posts []*model.Post, now time.Time) []*dto.PostDTO {
	res := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		res = append(res, ToPostDTO(p, now))
	}
	return res
}
