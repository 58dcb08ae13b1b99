package dto

type MessageResponseDTO struct {
	Message string `json:"message"`
}
