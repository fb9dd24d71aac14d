// model/health.go
package model

// HealthResponse reports collaborator liveness for the health endpoint.
type HealthResponse struct {
	Status       string                 `json:"status"`
	Version      string                 `json:"version"`
	Services     map[string]interface{} `json:"services"`
	ContractInfo map[string]string      `json:"contract_info"`
	Timestamp    string                 `json:"timestamp"`
}
