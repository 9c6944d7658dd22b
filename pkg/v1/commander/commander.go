package commander

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// CheckCommander sends monitor check commands.
type CheckCommander struct {
	sender Sender
}

// NewCheckCommander returns new CheckCommander using provided sender for sending messages.
func NewCheckCommander(sender Sender) CheckCommander {
	return CheckCommander{
		sender: sender,
	}
}

// SendCheckCommand sends check command for monitor with provided ID.
func (c CheckCommander) SendCheckCommand(ctx context.Context, monitorID int) error {
	correlationID, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("can't create correlation ID: %w", err)
	}

	cmd := CheckCommand{
		MonitorID:     monitorID,
		CorrelationID: correlationID.String(),
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal check command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
