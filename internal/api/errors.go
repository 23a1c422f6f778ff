package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// Error codes carried in the "error" field of every failure response.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

// Error is a request-scoped failure with a declared HTTP status and a
// machine-readable code. Handlers return these for expected failures;
// anything else surfaces through the recoverer as CodeInternal.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// ValidationError builds the 400 error used for missing/malformed input.
func ValidationError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[api] response encode: %v", err)
	}
}

// respondError writes the JSON error contract for an *Error.
func respondError(w http.ResponseWriter, e *Error) {
	respondJSON(w, e.Status, e)
}
