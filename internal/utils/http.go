// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/titanic-identity/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and an
// application/json content type. If marshaling fails the client receives
// 500 and the error is returned.
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

// WriteError writes the {"detail": ...} error body. 401 responses also
// carry the WWW-Authenticate challenge.
func WriteError(w http.ResponseWriter, statusCode int, detail string) {
	if statusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	_, _ = WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
