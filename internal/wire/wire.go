package wire

import (
	"newsfeed/internal/api"
	"newsfeed/internal/api/config"
	"newsfeed/internal/api/graph"
	"newsfeed/internal/api/handler"
	"newsfeed/internal/job"
	"newsfeed/internal/pkg/cron"
	"newsfeed/internal/repository"
	"newsfeed/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	postMetricRepo := repository.NewPostMetricRepository(db)

	postService := service.NewPostService(postRepo)
	postMetricService := service.NewPostMetricService(postMetricRepo, postRepo)

	schema, err := graph.NewSchema(postService, cfg.GraphQL.MaxDepth)
	if err != nil {
		return nil, err
	}

	handlers := &api.HandlersGroup{
		GraphQLHandler:    handler.NewGraphQLHandler(schema),
		SystemHandler:     handler.NewSystemHandler(),
		PostMetricHandler: handler.NewPostMetricHandler(postMetricService),
	}

	router := api.SetupRouter(handlers, cfg.CORS.AllowOrigins)

	postMetricsJob := job.NewPostMetricsJob(postRepo, postMetricService)
	cronMgr := cron.NewCronManager(cfg.Cron.PostMetrics, postMetricsJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
