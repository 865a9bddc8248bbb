// internal/app/server.go
package app

import (
	"log"

	"knowledgepulse-web/internal/api"
	"knowledgepulse-web/internal/config"
	"knowledgepulse-web/internal/db"
	adminHandler "knowledgepulse-web/internal/handlers/admin"
	authHandler "knowledgepulse-web/internal/handlers/auth"
	courseHandler "knowledgepulse-web/internal/handlers/courses"
	pagesHandler "knowledgepulse-web/internal/handlers/pages"
	studentHandler "knowledgepulse-web/internal/handlers/student"
	"knowledgepulse-web/internal/middleware"
	"knowledgepulse-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Redis -----
	redisCfg := db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	}

	redisClient, err := db.NewRedisClient(redisCfg)
	if err != nil {
		log.Fatalf("[REDIS] ❌ Failed to connect to Redis: %v", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Backend API Client -----
	client := api.NewClient(s.cfg.APIBaseURL, logger)

	// ----- Session Service -----
	store := session.NewRedisStore(redisClient, s.cfg.SessionTTL)
	sessions := session.NewService(store, client, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(sessions, logger)
	courseHandlerInst := courseHandler.NewCourseHandler(client, logger)
	studentHandlerInst := studentHandler.NewStudentHandler(client, sessions, logger)
	adminHandlerInst := adminHandler.NewAdminHandler(client, logger)
	pagesHandlerInst := pagesHandler.NewPagesHandler(client, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(sessions, s.cfg)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		authMiddleware.LoadSession(),
	)

	// ----- Templates & Static Assets -----
	s.engine.LoadHTMLGlob("web/templates/*.tmpl")
	s.engine.Static("/static", "web/static")

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		CourseHandler:  courseHandlerInst,
		StudentHandler: studentHandlerInst,
		AdminHandler:   adminHandlerInst,
		PagesHandler:   pagesHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
