package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// WriteJSON marshals data and writes it with statusCode and a JSON content
// type. When marshaling fails a plain 500 is written instead and the error
// is returned.
//
// Example usage:
//
//	utils.WriteJSON(w, info, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a ledger error body {"code","message"}.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, models.ErrorResponse{Code: code, Message: message}, statusCode)
}
