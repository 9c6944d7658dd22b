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

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/marketradar-pl/marketradar/cmd/worker/config"
	"github.com/marketradar-pl/marketradar/internal/fetcher"
	"github.com/marketradar-pl/marketradar/internal/handler"
	"github.com/marketradar-pl/marketradar/internal/monitor"
	"github.com/marketradar-pl/marketradar/internal/notifier"
	"github.com/marketradar-pl/marketradar/internal/platform/models"
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
	ctx, cancel := context.WithCancel(context.Background())

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

	pg := storage.NewPostgres(pgDB)

	pages := newFetcher(cfg, &logger)
	registry := scraper.NewRegistry(
		otodom.New(pages, &logger),
		gumtree.New(pages, &logger),
	)

	runner := monitor.NewRunner(registry, pg, newNotifier(cfg, &logger), &logger)

	han := handler.NewHandler(conn, runner, &logger)

	// start consuming and handling check commands
	if err := han.Start(ctx, cfg.RabbitMQ.Queue); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	// the scheduler feeds the same queue the consumer reads from
	cmndr := commander.NewCheckCommander(commander.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey))
	scheduler := monitor.NewScheduler(pg, cmndr, cfg.SchedulerInterval, &logger)

	go func() {
		if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().
				Err(err).
				Msg("scheduler stopped")
		}
	}()

	logger.Info().Msg("monitor worker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

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

// newNotifier wires the notification channels. Without a bot token telegram
// notifications fall back to the log channel.
func newNotifier(cfg config.Config, logger *zerolog.Logger) *notifier.Router {
	router := notifier.NewRouter(notifier.NewLog(logger))

	if cfg.Telegram.BotToken == "" {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN not set, telegram notifications are logged only")
		return router
	}

	telegram, err := notifier.NewTelegram(cfg.Telegram.BotToken)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't create telegram notifier")
	}

	router.Register(models.ChannelTelegram, telegram)

	return router
}
