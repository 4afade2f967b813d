package api

import (
	"net/http"

	"newsfeed/internal/api/middleware"
	"newsfeed/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, allowOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(allowOrigins))
	logger.SetupGin(r)

	r.GET("/", group.SystemHandler.Index)
	r.GET("/health", group.SystemHandler.Health)
	r.GET("/schema", group.SystemHandler.Schema)
	r.GET("/test-graphql", group.SystemHandler.TestGraphQL)

	r.POST("/graphql", group.GraphQLHandler.Post)
	r.GET("/graphql", group.GraphQLHandler.Get)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		metricsGroup := apiGroup.Group("/metrics")
		{
			metricsGroup.GET("/post/7d/:post_id", group.PostMetricHandler.GetMetrics7Days)
			metricsGroup.GET("/post/30d/:post_id", group.PostMetricHandler.GetMetrics30Days)
		}
	}

	return r
}
