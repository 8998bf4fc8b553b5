package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	_ "github.com/QuotelyAi/cheapestcarinsurancetulsa/docs"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
	transporthttp "github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/http"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/http/handlers"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/http/health"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/jobs"
	appmw "github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/middleware"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/platform/config"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/platform/logging"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/store/dynamo"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/store/memory"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/store/mongo"
)

// noopPinger reports ready when there is no external store to check.
type noopPinger struct{}

func (noopPinger) Ping(context.Context) error { return nil }

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting premium estimator API", "env", cfg.Env, "db_type", cfg.DBType)

	// Sessions always live in process memory; only estimate snapshots go to
	// the configured store.
	sessions := memory.NewSessionRepo()

	var estimates core.EstimateRepo
	var pinger health.Pinger = noopPinger{}

	switch cfg.DBType {
	case "mongo":
		client, err := mongo.NewClient(cfg)
		if err != nil {
			log.Error("failed to connect to MongoDB", "err", err)
			os.Exit(1)
		}
		defer client.Close(context.Background())
		if err := client.EnsureIndexes(ctx); err != nil {
			log.Error("failed to ensure indexes", "err", err)
			os.Exit(1)
		}
		estimates = mongo.NewEstimateRepo(client, time.Duration(cfg.MongoOpTimeoutMs)*time.Millisecond)
		pinger = client
		log.Info("connected to MongoDB", "db", cfg.MongoDB)

	case "dynamodb":
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to DynamoDB", "err", err)
			os.Exit(1)
		}
		if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
			log.Error("failed to ensure tables", "err", err)
			os.Exit(1)
		}
		estimates = dynamo.NewEstimateRepo(client.DB)
		pinger = client
		log.Info("connected to DynamoDB", "region", cfg.AWSRegion)

	default:
		estimates = memory.NewEstimateRepo()
		log.Info("using in-memory estimate store")
	}

	// Core wiring
	engine := core.MustPricingEngine()
	qn := core.NewQuestionnaire(engine.Catalog())
	sessionSvc := core.NewSessionService(sessions, qn, engine)
	estimateSvc := core.NewEstimateService(engine, estimates)

	// Background workers
	interval := time.Duration(cfg.WorkerIntervalSec) * time.Second
	expiry := jobs.NewEstimateExpiryWorker(estimates, interval, log)
	sweeper := jobs.NewSessionSweeper(sessions, time.Duration(cfg.SessionTTLMin)*time.Minute, interval, log)
	go expiry.Start(ctx)
	go sweeper.Start(ctx)

	// Rate limiter with background cleanup
	limiter := appmw.NewRateLimiter(cfg.RateLimitRPM, time.Minute)
	limiter.StartWithContext(ctx)

	// HTTP surface
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second))
	r.Use(appmw.SecurityHeaders)
	r.Use(appmw.CORS(cfg.AllowedOrigins))
	r.Use(appmw.LimitRequestBody(appmw.MaxBodySize))
	r.Use(limiter.Middleware)

	r.Mount("/", health.New(log, pinger, 2*time.Second))

	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "doc unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(doc))
	})

	api := transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewSessionHandler(sessionSvc, log),
			handlers.NewEstimateHandler(sessionSvc, estimateSvc, appmw.RequireAPIKey(cfg.APIKey), log),
			handlers.NewCatalogHandler(engine.Catalog(), engine.Carriers(), log),
		},
	})
	r.Mount("/api/v1", api)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
	log.Info("server stopped")
}
