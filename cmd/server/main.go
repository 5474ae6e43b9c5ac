package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/config"
	"github.com/pranathi988/Kamadhenu-app/internal/repository/sqlite"
	"github.com/pranathi988/Kamadhenu-app/internal/scheduler"
	"github.com/pranathi988/Kamadhenu-app/internal/server/handlers"
	"github.com/pranathi988/Kamadhenu-app/internal/server/router"
	breedingsvc "github.com/pranathi988/Kamadhenu-app/internal/service/breeding"
	catalogsvc "github.com/pranathi988/Kamadhenu-app/internal/service/catalog"
	chatsvc "github.com/pranathi988/Kamadhenu-app/internal/service/chat"
	diagnosissvc "github.com/pranathi988/Kamadhenu-app/internal/service/diagnosis"
	identifysvc "github.com/pranathi988/Kamadhenu-app/internal/service/identify"
	sustainabilitysvc "github.com/pranathi988/Kamadhenu-app/internal/service/sustainability"
	valuationsvc "github.com/pranathi988/Kamadhenu-app/internal/service/valuation"
	"github.com/pranathi988/Kamadhenu-app/pkg/clients/gemini"
	"github.com/pranathi988/Kamadhenu-app/pkg/clients/roboflow"
	"github.com/pranathi988/Kamadhenu-app/pkg/clients/translate"
	"github.com/pranathi988/Kamadhenu-app/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, err := sqlite.Open(cfg.Database.Path, baseLogger.Named("repo.sqlite"))
	if err != nil {
		baseLogger.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			baseLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	diagnosisSvc := diagnosissvc.NewService(store, nil, baseLogger.Named("svc.diagnosis"))
	valuationSvc := valuationsvc.NewService(store, nil, baseLogger.Named("svc.valuation"))
	breedingSvc := breedingsvc.NewService(store, nil, baseLogger.Named("svc.breeding"))
	catalogSvc := catalogsvc.NewService(store, baseLogger.Named("svc.catalog"))
	sustainabilitySvc := sustainabilitysvc.NewService(baseLogger)

	// AI-backed services degrade to unavailable instead of blocking startup
	// when their keys are absent.
	var chatService *chatsvc.Service
	if cfg.AI.GeminiKey != "" {
		var translator chatsvc.Translator
		if cfg.Translate.APIKey != "" && cfg.Translate.ProjectID != "" {
			tc, err := translate.NewClient(context.Background(), cfg.Translate.APIKey, cfg.Translate.ProjectID)
			if err != nil {
				baseLogger.Fatal("failed to init translate client", zap.Error(err))
			}
			translator = tc
		} else {
			baseLogger.Warn("translate credentials missing, chat limited to English")
		}

		generator := gemini.NewClient(cfg.AI.GeminiKey, cfg.AI.GeminiModel)
		chatService = chatsvc.NewService(generator, translator, store, cfg.AI.GeminiModel, baseLogger)
		baseLogger.Info("chat assistant enabled", zap.String("model", cfg.AI.GeminiModel))
	} else {
		baseLogger.Warn("gemini api key missing, chat assistant disabled")
	}

	var identifyService *identifysvc.Service
	if cfg.Roboflow.APIKey != "" {
		detector := roboflow.NewClient(roboflow.Config{
			APIKey:     cfg.Roboflow.APIKey,
			ProjectID:  cfg.Roboflow.ProjectID,
			Version:    cfg.Roboflow.Version,
			Confidence: cfg.Roboflow.Confidence,
			Overlap:    cfg.Roboflow.Overlap,
		})
		backend := cfg.Roboflow.ProjectID
		identifyService = identifysvc.NewService(detector, store, backend, baseLogger)
		baseLogger.Info("breed identification enabled",
			zap.String("project", cfg.Roboflow.ProjectID),
			zap.Int("version", cfg.Roboflow.Version))
	} else {
		baseLogger.Warn("roboflow api key missing, breed identification disabled")
	}

	catalogHandler := handlers.NewCatalogHandler(catalogSvc, baseLogger.Named("handlers.catalog"))
	advisoryHandler := handlers.NewAdvisoryHandler(diagnosisSvc, valuationSvc, breedingSvc, sustainabilitySvc, baseLogger.Named("handlers.advisory"))
	assistantHandler := handlers.NewAssistantHandler(chatService, identifyService, baseLogger.Named("handlers.assistant"))
	engine := router.New(catalogHandler, advisoryHandler, assistantHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Digest, store, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
