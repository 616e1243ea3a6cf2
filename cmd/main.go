package main

import (
	"content-vault/config"
	_ "content-vault/docs"
	"content-vault/internal/handler"
	"content-vault/internal/repository"
	"content-vault/internal/security"
	"content-vault/internal/service"
	"context"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// @title Content-vault
// @version 1.0
// @description REST API для защищённого доступа к контенту по временным ссылкам

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	contentRepo := repository.NewContentRepository(db)
	linkRepo := repository.NewShareLinkRepository(db)
	logRepo := repository.NewAccessLogRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.Cache)*time.Second)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	contentService := service.NewContentService(contentRepo, logRepo, cacheRepo, s3Service, time.Duration(cfg.TTL.UploadURL)*time.Second)
	linkService := service.NewShareLinkService(linkRepo, contentRepo, logRepo, cacheRepo, s3Service)
	logService := service.NewAccessLogService(logRepo)

	jwtService := security.NewJWTService(&cfg.JWT)

	contentHandler := handler.NewContentHandler(contentService)
	shareHandler := handler.NewShareHandler(linkService)
	logHandler := handler.NewLogHandler(logService)

	router.Use(config.DBMiddleware(db))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupContentRoutes(router, contentHandler, jwtService, cfg)
	setupShareRoutes(router, shareHandler, jwtService, cfg)
	setupLogRoutes(router, logHandler, jwtService, cfg)

	runServer(ctx, srv)
}

func setupContentRoutes(r chi.Router, h *handler.ContentHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/contents", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Get("/", h.ListContents)
		r.Post("/", h.CreateUpload)

		r.Route("/{content_id}", func(r chi.Router) {
			r.Get("/signed-url", h.OwnerSignedURL)
			r.Delete("/", h.DeleteContent)
		})
	})
}

func setupShareRoutes(r chi.Router, h *handler.ShareHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/links", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Get("/", h.ListShareLinks)
		r.Post("/", h.CreateShareLink)
		r.Post("/{link_id}/deactivate", h.DeactivateLink)
	})

	// доступ по share-токену: требует аутентификации, но не владения контентом
	r.Route("/api/access", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Post("/", h.AccessSharedContent)
	})
}

func setupLogRoutes(r chi.Router, h *handler.LogHandler, jwtService *security.JWTService, cfg *config.AppConfig) {
	r.Route("/api/logs", func(r chi.Router) {
		r.Use(security.JWTMiddleware([]byte(cfg.JWT.SecretKey), jwtService))
		r.Get("/", h.ListAccessLogs)
		r.Post("/suspicious", h.ReportSuspicious)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
