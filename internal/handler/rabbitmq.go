package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marketradar-pl/marketradar/internal/platform/rabbitmq"
	"github.com/marketradar-pl/marketradar/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Runner checks monitors against their marketplaces.
type Runner interface {
	CheckMonitor(ctx context.Context, monitorID int) error
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq    *rabbitmq.RabbitMQ
	runner Runner
	logger *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, runner Runner, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:    rmq,
		runner: runner,
		logger: logger,
	}
}

// Start starts consuming and handling monitor check commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Int("monitorId", cmd.MonitorID).
			Str("correlationId", cmd.CorrelationID).
			Msg("monitor check started")

		err = h.runner.CheckMonitor(ctx, cmd.MonitorID)
		if err != nil {
			return fmt.Errorf("monitor check failed: %w", err)
		}

		h.logger.Debug().
			Int("monitorId", cmd.MonitorID).
			Str("correlationId", cmd.CorrelationID).
			Msg("monitor check finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.CheckCommand, error) {
	var cmd commander.CheckCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode check command: %w", err)
	}

	return &cmd, err
}
