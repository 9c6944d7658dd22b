package commander

// CheckCommand orders the worker to check a single monitor against its
// marketplaces. CorrelationID ties worker logs back to the enqueueing call.
type CheckCommand struct {
	MonitorID     int    `json:"monitorId"`
	CorrelationID string `json:"correlationId,omitempty"`
}
