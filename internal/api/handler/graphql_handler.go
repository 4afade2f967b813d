package handler

import (
	"bytes"
	"context"
	"io"
	log "log/slog"
	"net/http"
	"time"

	"newsfeed/internal/api/dto"
	"newsfeed/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/graph-gophers/graphql-go"
	"golang.org/x/sync/errgroup"
)

// maxBatchConcurrency bounds how many operations of one batch run at once.
const maxBatchConcurrency = 4

type GraphQLHandler struct {
	schema *graphql.Schema
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// Post 处理 POST /graphql，支持单个请求或批量数组
func (h *GraphQLHandler) Post(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, "Failed to read request body")
		return
	}
	body = bytes.TrimSpace(body)

	if len(body) > 0 && body[0] == '[' {
		var reqs []*dto.GraphQLRequest
		if err = json.Unmarshal(body, &reqs); err != nil {
			log.WarnContext(ctx, "Invalid batched GraphQL request", "err", err)
			h.fail(c, "Invalid JSON body")
			return
		}
		h.render(c, h.execBatch(ctx, reqs))
		return
	}

	var req dto.GraphQLRequest
	if err = json.Unmarshal(body, &req); err != nil {
		log.WarnContext(ctx, "Invalid GraphQL request", "err", err)
		h.fail(c, "Invalid JSON body")
		return
	}
	h.render(c, h.exec(ctx, &req))
}

// Get 处理 GET /graphql?query=...&variables=...
func (h *GraphQLHandler) Get(c *gin.Context) {
	req := dto.GraphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			h.fail(c, "Variables are invalid JSON")
			return
		}
	}
	h.render(c, h.exec(c.Request.Context(), &req))
}

func (h *GraphQLHandler) exec(ctx context.Context, req *dto.GraphQLRequest) *dto.GraphQLResponse {
	if req == nil || req.Query == "" {
		return &dto.GraphQLResponse{
			Errors: []*dto.GraphQLError{response.NewGraphQLError("Must provide query string", response.CodeInternal, time.Now())},
		}
	}

	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	for _, e := range resp.Errors {
		log.WarnContext(ctx, "GraphQL Error", "message", e.Message, "path", e.Path)
	}
	return &dto.GraphQLResponse{
		Data:   json.RawMessage(resp.Data),
		Errors: response.GraphQLErrors(resp.Errors, time.Now()),
	}
}

// execBatch 并发执行批量请求，结果顺序与请求一致
func (h *GraphQLHandler) execBatch(ctx context.Context, reqs []*dto.GraphQLRequest) []*dto.GraphQLResponse {
	results := make([]*dto.GraphQLResponse, len(reqs))

	var g errgroup.Group
	g.SetLimit(maxBatchConcurrency)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			results[i] = h.exec(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (h *GraphQLHandler) fail(c *gin.Context, message string) {
	h.render(c, &dto.GraphQLResponse{
		Errors: []*dto.GraphQLError{response.NewGraphQLError(message, response.CodeInternal, time.Now())},
	})
}

// render 始终返回 200，错误放在 errors 字段
func (h *GraphQLHandler) render(c *gin.Context, payload interface{}) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "Failed to encode GraphQL response", "err", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}
