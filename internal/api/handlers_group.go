package api

import "newsfeed/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	GraphQLHandler    *handler.GraphQLHandler
	SystemHandler     *handler.SystemHandler
	PostMetricHandler *handler.PostMetricHandler
}
