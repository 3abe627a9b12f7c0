package models

import "time"

// Database connectivity states reported by the health endpoint.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthStatus is the payload of GET /api/health.
type HealthStatus struct {
	Service     string    `json:"service"`
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Version     string    `json:"version"`
}

// IsDatabaseConnected reports whether the datastore answered the last ping.
func (h HealthStatus) IsDatabaseConnected() bool {
	return h.Database == DatabaseConnected
}
