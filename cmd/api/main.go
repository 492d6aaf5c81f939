package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskapp/internal/adapter/db"
	httpadapter "taskapp/internal/adapter/http"
	"taskapp/internal/adapter/http/handlers"
	httpmiddleware "taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/token"
	appservice "taskapp/internal/app/service"
	"taskapp/internal/config"
	"taskapp/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	tokenManager := token.NewJWTManager(token.Config{
		SecretKey: cfg.JWTSecret,
		TTL:       cfg.JWTTTL,
		Issuer:    "taskapp",
	})

	taskRepository := dbadapter.NewTaskRepository(db)
	taskService := appservice.NewTaskService(taskRepository)
	authService := appservice.NewAuthService(appservice.Credentials{
		Username: cfg.AuthUsername,
		Password: cfg.AuthPassword,
	}, tokenManager)

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.RouterConfig{
		AuthRequired:  cfg.AuthRequired,
		TokenVerifier: tokenManager,
	}, healthHandler, authHandler, taskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
