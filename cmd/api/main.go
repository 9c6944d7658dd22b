package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/marketradar-pl/marketradar/cmd/api/config"
	"github.com/marketradar-pl/marketradar/internal/api"
	"github.com/marketradar-pl/marketradar/internal/fetcher"
	"github.com/marketradar-pl/marketradar/internal/platform/rabbitmq"
	"github.com/marketradar-pl/marketradar/internal/platform/storage"
	"github.com/marketradar-pl/marketradar/internal/scraper"
	"github.com/marketradar-pl/marketradar/internal/scraper/gumtree"
	"github.com/marketradar-pl/marketradar/internal/scraper/otodom"
	"github.com/marketradar-pl/marketradar/pkg/v1/commander"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found")
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	// declared on both sides so enqueued checks survive until a worker is up
	if err := conn.DeclareCommandQueue(cfg.RabbitMQ.Queue, cfg.RabbitMQ.RoutingKey); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't declare command queue")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	pages := newFetcher(cfg, &logger)
	registry := scraper.NewRegistry(
		otodom.New(pages, &logger),
		gumtree.New(pages, &logger),
	)

	cmndr := commander.NewCheckCommander(commander.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey))

	server := api.NewServer(registry, storage.NewPostgres(pgDB), cmndr, &logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("API up and running")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().
				Err(err).
				Msg("can't run HTTP server")
		}
	}()

	// handle graceful shutdown
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	<-termChan

	logger.Info().Msg("graceful shutdown start")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shut down HTTP server")
	}

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}

// newFetcher builds the page fetcher shared by all scrapers, routing requests
// through the configured proxy ring when one is set.
func newFetcher(cfg config.Config, logger *zerolog.Logger) *fetcher.Fetcher {
	var transport http.RoundTripper = http.DefaultTransport

	if len(cfg.ScraperProxies) > 0 {
		ring, err := fetcher.NewProxyRing(cfg.ScraperProxies)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't parse scraper proxies")
		}
		transport = fetcher.ProxyTransport(ring)
	}

	client := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: transport,
	}

	return fetcher.NewFetcher(client, logger)
}
