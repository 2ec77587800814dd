package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/draftroomhq/draftroom/internal/config"
	"github.com/draftroomhq/draftroom/internal/gateway"
	"github.com/draftroomhq/draftroom/internal/outbox"
	"github.com/draftroomhq/draftroom/internal/players"
	"github.com/draftroomhq/draftroom/internal/room"
	"github.com/draftroomhq/draftroom/internal/timer"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	setupLogging()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := setupDatabase(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage and application layer.
	roomRepo := room.NewRepository(db)
	playerRepo := players.NewRepository(db)
	app := room.NewApp(roomRepo, playerRepo)

	// Timer driver.
	driver := timer.NewDriver(roomRepo, app, cfg.Timer.BatchSize)
	app.SetWaker(driver.Wake)

	// Outbox relay: committed events -> JetStream.
	jsCfg := outbox.DefaultJetStreamConfig()
	jsCfg.URL = cfg.NATS.URL
	publisher, err := outbox.NewJetStreamPublisher(jsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create JetStream publisher")
	}
	defer publisher.Close()

	listenerCfg := outbox.DefaultListenerConfig()
	listenerCfg.DatabaseURL = cfg.Database.DSN()
	listener, err := outbox.NewListener(outbox.NewRepository(db), publisher, listenerCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create outbox listener")
	}

	// Gateway: JetStream -> WebSocket fan-out, plus the HTTP API.
	svc := gateway.NewService(app)
	cm := gateway.NewConnectionManager(gateway.DefaultConnectionConfig(), svc)
	wsHandler := gateway.NewWebSocketHandler(cm)
	httpHandler := gateway.NewHTTPHandler(app)

	consumerCfg := gateway.DefaultJetStreamConsumerConfig()
	consumerCfg.URL = cfg.NATS.URL
	consumer, err := gateway.NewEventConsumer(cm, consumerCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create event consumer")
	}
	defer consumer.Stop()

	server := setupServer(cfg.Server, httpHandler, wsHandler)

	go cm.Start(ctx)
	go func() {
		if err := consumer.Start(ctx); err != nil {
			log.Error().Err(err).Msg("event consumer stopped")
		}
	}()
	go func() {
		if err := listener.Start(ctx); err != nil {
			log.Error().Err(err).Msg("outbox listener stopped")
		}
	}()
	go func() {
		if err := driver.Run(ctx); err != nil {
			log.Error().Err(err).Msg("timer driver stopped")
		}
	}()
	go func() {
		log.Info().Str("addr", server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

func setupLogging() {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if os.Getenv("LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

func setupDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")
	return db, nil
}

func setupServer(cfg config.ServerConfig, httpHandler *gateway.HTTPHandler, wsHandler *gateway.WebSocketHandler) *http.Server {
	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)
	wsHandler.RegisterRoutes(mux)

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: h2c.NewHandler(c.Handler(mux), &http2.Server{}),
	}
}
