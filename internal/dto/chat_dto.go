package dto

type ChatRequest struct {
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Type     string `json:"type"`
}
