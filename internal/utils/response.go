package utils

import (
	"encoding/json"
	"net/http"
)

// Payload is the body of every failed request.
type Payload struct {
	Message string `json:"message"`
}

// JSONResponse sends body as JSON with the given status.
func JSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ErrorResponse sends {"message": message} with the given status.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Payload{Message: message})
}
