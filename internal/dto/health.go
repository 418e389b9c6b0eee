package dto

// HealthResponse reports service and dependency status
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version,omitempty"`
	Uptime  string            `json:"uptime,omitempty"`
}
