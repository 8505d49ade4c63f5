package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"recruiting-intake/config"
	"recruiting-intake/infrastructure"
	"recruiting-intake/interfaces"
	"recruiting-intake/services"
)

func main() {
	// Load .env
	_ = godotenv.Load()

	cfg := config.Load()

	store, err := infrastructure.NewAirtableClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("record store not configured")
	}
	notifier := infrastructure.NewWebhookNotifier(cfg)
	extractor := infrastructure.NewPDFExtractor()

	intake := services.NewIntakeService(store, extractor)
	results := services.NewResultsService(store)
	decision := services.NewDecisionService(store)
	trigger := services.NewTriggerService(store, notifier)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = cfg.AllowAllOrigins
	corsConfig.AllowCredentials = cfg.AllowCredentials
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	router.Use(cors.New(corsConfig))

	interfaces.NewHTTPHandler(router, intake, results, decision, trigger)

	if cfg.Debug {
		router.GET("/debug/config", interfaces.DebugConfig(cfg))
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("server shutdown")
	}
}
