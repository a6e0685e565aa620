package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Success responses carry {"success":true,"data":...}; failures carry
// {"success":false,"error":"..."}. The data key is always present so a
// null payload is distinguishable from a missing one.

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON sends a success envelope with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data}); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a failure envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: message}); err != nil {
		slog.Error("write JSON error response", "error", err)
	}
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
