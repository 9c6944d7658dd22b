package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string        `env:"DATABASE_URL"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT" envDefault:"20s"`
	SchedulerInterval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"1m"`
	ScraperProxies    []string      `env:"SCRAPER_PROXIES" envSeparator:","`

	RabbitMQ RabbitMQ
	Telegram Telegram
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"marketradar-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"marketradar.check-commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"monitor.check"`
}

// Telegram holds Telegram notifier configuration.
type Telegram struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
}
