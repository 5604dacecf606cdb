package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"gqlug/graph"
	"gqlug/internal/auth"
	"gqlug/internal/config"
	"gqlug/internal/db"
	"gqlug/internal/graphql"
	"gqlug/internal/ingestion"
	"gqlug/internal/metrics"
	"gqlug/internal/middleware"
	"gqlug/internal/repository"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(".", log)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer conn.Close()

	if err := db.RunMigrations(cfg.Database); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	userRepo := repository.NewUserRepository(conn.Pool)
	groupRepo := repository.NewGroupRepository(conn.Pool)
	groupTypeRepo := repository.NewGroupTypeRepository(conn.Pool)
	membershipRepo := repository.NewMembershipRepository(conn.Pool)

	resolver := graphql.NewResolver(userRepo, groupRepo, groupTypeRepo, membershipRepo, log)

	srv := handler.NewDefaultServer(graph.NewExecutableSchema(graph.Config{Resolvers: resolver}))
	srv.Use(&middleware.ResolverLoggerExtension{Log: log})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	graphqlHandler := middleware.LoggingMiddleware(log,
		auth.Middleware(
			middleware.DataLoaderMiddleware(userRepo, groupRepo, groupTypeRepo, membershipRepo)(srv),
		),
	)

	ingestHandler := middleware.LoggingMiddleware(log,
		auth.Middleware(
			ingestion.NewHTTPHandler(ingestion.NewService(userRepo, log)),
		),
	)

	mux := http.NewServeMux()
	mux.Handle("/query", corsHandler.Handler(middleware.PrometheusMiddleware("/query", graphqlHandler)))
	mux.Handle("/ingest/users", corsHandler.Handler(middleware.PrometheusMiddleware("/ingest/users", ingestHandler)))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", corsHandler.Handler(middleware.LoggingMiddleware(log, playground.Handler("GraphQL playground", "/query"))))

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("starting GraphQL server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
