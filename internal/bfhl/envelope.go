package bfhl

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response shape for every endpoint. Data and Message are
// mutually exclusive; both are absent on /health.
type Envelope struct {
	IsSuccess     bool   `json:"is_success"`
	OfficialEmail string `json:"official_email"`
	Data          any    `json:"data,omitempty"`
	Message       string `json:"message,omitempty"`
}

func envelopeFor(email string, res Result) (int, Envelope) {
	if res.OK() {
		return http.StatusOK, Envelope{
			IsSuccess:     true,
			OfficialEmail: email,
			Data:          res.Data(),
		}
	}
	return http.StatusBadRequest, Envelope{
		IsSuccess:     false,
		OfficialEmail: email,
		Message:       res.Message(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
