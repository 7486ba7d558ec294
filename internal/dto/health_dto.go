package dto

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type IndexResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
