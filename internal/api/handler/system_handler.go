package handler

import (
	_ "embed"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"newsfeed/internal/api/graph"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "NewsFeed GraphQL API"
	Version     = "1.0.0"
)

//go:embed static/test_graphql.html
var testerPage []byte

type SystemHandler struct {
	startedAt time.Time
}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{startedAt: time.Now()}
}

// Index API 说明
func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "NewsFeed Go + GraphQL API",
		"version": Version,
		"endpoints": gin.H{
			"graphql":   "/graphql",
			"health":    "/health",
			"schema":    "/schema",
			"testQuery": "/test-graphql",
		},
		"stack": []string{
			"Gin",
			"graph-gophers/graphql-go",
			"GORM",
			"Go " + runtime.Version(),
		},
		"docs": "Use POST /graphql with GraphQL queries, or visit /test-graphql for examples",
		"sampleQueries": gin.H{
			"getAllPosts": `POST /graphql with body: {"query": "{ posts { id title author { name } likesCount } }"}`,
			"createPost":  `POST /graphql with body: {"query": "mutation { createPost(title: \"Test\", body: \"Content\", authorName: \"User\") { id title } }"}`,
		},
	})
}

// Health 健康检查
func (h *SystemHandler) Health(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		"uptime":    int64(time.Since(h.startedAt).Seconds()),
		"memory":    itoaMB(mem.HeapAlloc),
		"version":   runtime.Version(),
	})
}

// Schema 返回 SDL 文本
func (h *SystemHandler) Schema(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(graph.SchemaSDL))
}

// TestGraphQL 简易 HTML 调试页
func (h *SystemHandler) TestGraphQL(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", testerPage)
}

func itoaMB(bytes uint64) string {
	return strconv.FormatUint((bytes+(1<<19))>>20, 10) + "MB"
}
