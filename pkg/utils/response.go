package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the error envelope every failed request returns.
type Response struct {
	Error string `json:"error"`
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, message string) {
	RespondWithJSON(w, status, Response{Error: message})
}
