package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"legal-summarizer/internal/middleware"
	"legal-summarizer/internal/models"
	"legal-summarizer/internal/services"
)

// APIHandler exposes the same flow as the page for JSON clients.
type APIHandler struct {
	runner    summaryRunner
	extractor textExtractor
	log       *zap.Logger
}

func NewAPIHandler(runner summaryRunner, extractor textExtractor, log *zap.Logger) *APIHandler {
	return &APIHandler{
		runner:    runner,
		extractor: extractor,
		log:       log,
	}
}

func (h *APIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	outcome := h.runner.Run(r.Context(), middleware.GetSessionID(r.Context()), req.Text)
	switch outcome.Kind {
	case services.OutcomeEmptyInput:
		writeJSON(w, http.StatusBadRequest, errorResp("EMPTY_INPUT", services.EmptyInputWarning, r))
		return
	case services.OutcomeBusy:
		writeJSON(w, http.StatusConflict, errorResp("IN_PROGRESS", services.BusyWarning, r))
		return
	}

	switch res := outcome.Result.(type) {
	case services.Success:
		writeJSON(w, http.StatusOK, models.SummaryResponse{
			Summary:  res.Summary,
			Filename: DownloadFilename,
		})
	case services.Failure:
		h.log.Warn("summarize request failed",
			zap.String("request_id", r.Header.Get(middleware.RequestIDHeader)),
			zap.String("error", res.Message))
		writeJSON(w, http.StatusBadGateway, errorResp("AI_ERROR", services.ErrorMessage(res), r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}

func (h *APIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	writeJSON(w, http.StatusOK, services.CountText(req.Text))
}

func (h *APIHandler) Extract(w http.ResponseWriter, r *http.Request) {
	filename, content, err := readUpload(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	text, err := h.extractor.ExtractText(filename, content)
	if err != nil {
		code := "EXTRACTION_FAILED"
		if errors.Is(err, services.ErrUnsupportedFormat) {
			code = "UNSUPPORTED_FORMAT"
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResp(code, err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, models.ExtractResponse{
		Filename: filename,
		Text:     text,
		Stats:    services.CountText(text),
	})
}

func (h *APIHandler) SupportedFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"formats":        services.SupportedImportFormats,
		"max_size_bytes": services.MaxImportSize,
	})
}
