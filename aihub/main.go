package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aihub/aihub/auth"
	"aihub/aihub/catalog"
	"aihub/aihub/config"
	"aihub/aihub/controllers"
	"aihub/aihub/routes"
	"aihub/aihub/services/llm"
	"aihub/aihub/session"
	"aihub/aihub/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	cat, err := catalog.NewFromFile(cfg.DefaultLocale, cfg.AgentsFile)
	if err != nil {
		logging.ErrorLogger.Error("catalog load error", zap.Error(err))
		os.Exit(1)
	}

	chain := llm.NewChain(
		llm.NewBackendClient(cfg.BackendURL, cfg.BackendAPIKey),
		llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL),
		llm.NewMockClient(),
	)
	manager := session.NewManager(cat, chain, cfg.Model, cfg.DefaultLocale)

	authSvc := auth.NewService(cfg.JWTSecret)
	authCtrl := controllers.NewAuthController(authSvc)
	agentsCtrl := controllers.NewAgentsController(cat)
	chatCtrl := controllers.NewChatController(manager)
	healthCtrl := controllers.NewHealthController()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/agents", routes.AgentRoutes(agentsCtrl, cfg))
	r.Mount("/chat", routes.ChatRoutes(chatCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	logging.AppLogger.Info("server started", zap.String("addr", cfg.Addr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
