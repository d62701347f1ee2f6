package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"legal-summarizer/internal/middleware"
	"legal-summarizer/internal/models"
	"legal-summarizer/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get(middleware.RequestIDHeader),
		},
	}
}

var errNoFile = errors.New("Please choose a file to import")

// readUpload reads the "file" part of a multipart form, bounded by MaxImportSize.
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxImportSize+1<<20)
	if err := r.ParseMultipartForm(services.MaxImportSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", nil, fmt.Errorf("File is too large (limit %d MB)", services.MaxImportSize>>20)
		}
		return "", nil, errNoFile
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, errNoFile
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, services.MaxImportSize+1))
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	if len(content) > services.MaxImportSize {
		return "", nil, fmt.Errorf("File is too large (limit %d MB)", services.MaxImportSize>>20)
	}
	return header.Filename, content, nil
}
