package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"20s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ScraperProxies  []string      `env:"SCRAPER_PROXIES" envSeparator:","`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"marketradar-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"marketradar.check-commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"monitor.check"`
}
