package platform

import (
	"errors"
)

// ErrUnknownMarketplace is an error returned when no scraper is registered under the requested name.
var ErrUnknownMarketplace = errors.New("unknown marketplace")

// ErrMonitorNotFound is an error returned when a monitor ID does not exist in storage.
var ErrMonitorNotFound = errors.New("monitor not found")
