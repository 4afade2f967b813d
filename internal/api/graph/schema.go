package graph

import (
	_ "embed"

	"newsfeed/internal/service"

	"github.com/graph-gophers/graphql-go"
)

// DefaultMaxDepth bounds query nesting when no depth is configured.
const DefaultMaxDepth = 10

//go:embed schema.graphql
var SchemaSDL string

// NewSchema parses the SDL against the root resolver.
func NewSchema(postService service.PostService, maxDepth int) (*graphql.Schema, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return graphql.ParseSchema(SchemaSDL, NewResolver(postService), graphql.MaxDepth(maxDepth))
}
