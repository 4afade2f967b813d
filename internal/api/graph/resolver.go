package graph

import (
	"context"

	"newsfeed/internal/api/dto"
	"newsfeed/internal/pkg/response"
	"newsfeed/internal/service"

	"github.com/graph-gophers/graphql-go"
)

// Resolver is the root for Query, Mutation and Subscription fields.
type Resolver struct {
	postService service.PostService
}

func NewResolver(postService service.PostService) *Resolver {
	return &Resolver{postService: postService}
}

// Query

func (r *Resolver) Posts(ctx context.Context, args struct {
	Limit  int32
	Offset int32
}) ([]*PostResolver, error) {
	limit, offset := int(args.Limit), int(args.Offset)
	posts, err := r.postService.ListPosts(ctx, &limit, &offset)
	if err != nil {
		return nil, response.WrapResolverError(err)
	}
	res := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		res = append(res, &PostResolver{post: p})
	}
	return res, nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	return r.wrap(r.postService.GetPost(ctx, string(args.ID)))
}

func (r *Resolver) PostsCount(ctx context.Context) (int32, error) {
	count, err := r.postService.CountPosts(ctx)
	if err != nil {
		return 0, response.WrapResolverError(err)
	}
	return int32(count), nil
}

// Mutation

type createPostArgs struct {
	Title          string
	Body           string
	AuthorName     string
	AuthorUsername *string
	Tags           *[]string
}

func (r *Resolver) CreatePost(ctx context.Context, args createPostArgs) (*PostResolver, error) {
	in := &dto.CreatePostDTO{
		Title:          args.Title,
		Body:           args.Body,
		AuthorName:     &args.AuthorName,
		AuthorUsername: args.AuthorUsername,
	}
	if args.Tags != nil {
		in.Tags = *args.Tags
	}
	return r.wrap(r.postService.CreatePost(ctx, in))
}

func (r *Resolver) LikePost(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	return r.wrap(r.postService.LikePost(ctx, string(args.ID)))
}

func (r *Resolver) UnlikePost(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	return r.wrap(r.postService.UnlikePost(ctx, string(args.ID)))
}

func (r *Resolver) IncrementViews(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	return r.wrap(r.postService.IncrementViews(ctx, string(args.ID)))
}

func (r *Resolver) ToggleBookmark(ctx context.Context, args struct{ ID graphql.ID }) (*PostResolver, error) {
	return r.wrap(r.postService.ToggleBookmark(ctx, string(args.ID)))
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	ok, err := r.postService.DeletePost(ctx, string(args.ID))
	if err != nil {
		return false, response.WrapResolverError(err)
	}
	return ok, nil
}

// Subscription
//
// No event source feeds these. The channels close with the request context,
// or immediately when the context can never be cancelled.

func (r *Resolver) PostCreated(ctx context.Context) <-chan *PostResolver {
	return idle(ctx)
}

func (r *Resolver) PostLiked(ctx context.Context, args struct{ PostID graphql.ID }) <-chan *PostResolver {
	return idle(ctx)
}

func idle(ctx context.Context) <-chan *PostResolver {
	ch := make(chan *PostResolver)
	if ctx.Done() == nil {
		close(ch)
		return ch
	}
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

func (r *Resolver) wrap(post *dto.PostDTO, err error) (*PostResolver, error) {
	if err != nil {
		return nil, response.WrapResolverError(err)
	}
	return &PostResolver{post: post}, nil
}
