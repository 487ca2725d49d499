package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-client/internal/handler"
	"kanban-board-client/internal/metrics"
	"kanban-board-client/internal/middleware"
)

// Config carries the dependencies the router wires into the handlers.
type Config struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	BasePath string
}

// Setup builds the devserver's gin engine with all routes and middleware.
func Setup(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/api"
	}
	api := r.Group(basePath)

	boardHandler := handler.NewBoardHandler(cfg.DB, cfg.Logger)
	boards := api.Group("/boards")
	{
		boards.GET("", boardHandler.List)
		boards.POST("", boardHandler.Create)
		boards.GET("/:id", boardHandler.Get)
		boards.PUT("/:id", boardHandler.Update)
		boards.DELETE("/:id", boardHandler.Delete)
	}

	columnHandler := handler.NewColumnHandler(cfg.DB, cfg.Logger)
	columns := api.Group("/columns")
	{
		columns.GET("", columnHandler.List)
		columns.POST("", columnHandler.Create)
		columns.GET("/:id", columnHandler.Get)
		columns.PUT("/:id", columnHandler.Update)
		columns.PATCH("/:id", columnHandler.Update)
		columns.DELETE("/:id", columnHandler.Delete)
	}

	taskHandler := handler.NewTaskHandler(cfg.DB, cfg.Logger)
	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskHandler.List)
		tasks.POST("", taskHandler.Create)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.PATCH("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	return r
}
