package router

import (
	"net/http"

	_ "student-api/docs"
	"student-api/internal/adapters/kafka"
	"student-api/internal/adapters/storage"
	"student-api/internal/api/middleware"
	"student-api/internal/config"
	"student-api/internal/database"
	"student-api/internal/handler"
	"student-api/internal/models"
	"student-api/internal/repository"
	"student-api/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the HTTP surface is built from.
// Redis, Events and Images are optional.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *database.RedisClient
	Events kafka.Publisher
	Images storage.ImageStore
	Log    *zap.Logger
}

// New wires repositories, services and handlers into a gin engine.
func New(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Log
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repository
	subjectRepo := repository.NewSubjectRepository(deps.DB)
	studentRepo := repository.NewStudentRepository(deps.DB)
	completedRepo := repository.NewCompletedTopicRepository(deps.DB)

	// Service
	subjectService := service.NewSubjectService(subjectRepo, deps.Images, log)
	studentService := service.NewStudentService(studentRepo, completedRepo, deps.Events, log)

	// Handler
	lectureHandler := handler.NewLectureHandler(subjectService, log)
	studentHandler := handler.NewStudentHandler(studentService, log)
	subjectHandler := handler.NewSubjectHandler(subjectService, deps.Images != nil, log)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.LogApi(log),
		gin.Recovery(),
		middleware.CORS(cfg.Origins, cfg.IsProduction()),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{Status: "UP"})
	})

	api := router.Group("/api")
	if deps.Redis != nil {
		limiter := middleware.NewRateLimitMiddleware(deps.Redis, log)
		api.Use(limiter.RateLimitIP(cfg.Redis.RateLimitRequests, cfg.Redis.RateLimitWindow))
	}
	{
		lectureHandler.RegisterRoutes(api)
		studentHandler.RegisterRoutes(api)
		subjectHandler.RegisterRoutes(api)
	}

	return router
}
