package api

import (
	"encoding/json"
	"net/http"
)

// envelope is the standard success response body.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// fieldError is a single entry in a validation failure response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeSuccess writes a success envelope with the given status and data.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// writeValidationErrors writes a 422 with field-level validation errors.
func writeValidationErrors(w http.ResponseWriter, errs []fieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"errors": errs,
	})
}

// writeAuthFailed writes the 401 body returned when credentials do not match.
// The same body covers unknown email and wrong password so the response
// does not reveal which accounts exist.
func writeAuthFailed(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"status":     "Bad request",
		"message":    "Authentication failed",
		"statusCode": http.StatusUnauthorized,
	})
}

// writeInternalError writes the generic 500 body. Internal detail stays in
// the server log, never in the response.
func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"status":  "error",
		"message": "Internal server error",
	})
}

// writeMessage writes a bare {"message": ...} body with the given status.
// Used by the token gate, whose clients expect this minimal shape.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
