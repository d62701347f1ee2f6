package handlers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"legal-summarizer/internal/middleware"
	"legal-summarizer/internal/models"
	"legal-summarizer/internal/services"
)

const (
	DownloadFilename = "legal_summary.txt"
	DownloadMIME     = "text/plain"

	downloadURLPrefix = "data:" + DownloadMIME + ";charset=utf-8,"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type summaryRunner interface {
	Run(ctx context.Context, session, text string) services.Outcome
}

type textExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

type pageData struct {
	ConfigError string
	Formats     string

	Text  string
	Stats models.TextStats

	Warning string
	Error   string

	HasSummary  bool
	Summary     string
	DownloadURL template.URL
	Success     string
}

// PageHandler serves the single-page form. When configErr is set the page
// shows only the configuration error and none of the input controls.
type PageHandler struct {
	runner    summaryRunner
	extractor textExtractor
	configErr error
	log       *zap.Logger
}

func NewPageHandler(runner summaryRunner, extractor textExtractor, configErr error, log *zap.Logger) *PageHandler {
	return &PageHandler{
		runner:    runner,
		extractor: extractor,
		configErr: configErr,
		log:       log,
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageData{})
}

func (h *PageHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, pageData{Error: "Invalid form submission"})
		return
	}

	text := r.PostForm.Get("text")
	data := pageData{Text: text}

	outcome := h.runner.Run(r.Context(), middleware.GetSessionID(r.Context()), text)
	switch outcome.Kind {
	case services.OutcomeEmptyInput:
		data.Warning = services.EmptyInputWarning
	case services.OutcomeBusy:
		data.Warning = services.BusyWarning
	case services.OutcomeCompleted:
		switch res := outcome.Result.(type) {
		case services.Success:
			data.HasSummary = true
			data.Summary = res.Summary
			data.DownloadURL = downloadURL(res.Summary)
			data.Success = services.SuccessNotice
		case services.Failure:
			h.log.Warn("summary failed",
				zap.String("error", res.Message),
				zap.String("request_id", r.Header.Get(middleware.RequestIDHeader)))
			data.Error = services.ErrorMessage(res)
		}
	}

	h.render(w, r, http.StatusOK, data)
}

// Extract fills the text area from an uploaded document.
func (h *PageHandler) Extract(w http.ResponseWriter, r *http.Request) {
	filename, content, err := readUpload(w, r)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, pageData{Error: err.Error()})
		return
	}

	text, err := h.extractor.ExtractText(filename, content)
	if err != nil {
		h.log.Info("document import failed", zap.String("filename", filename), zap.Error(err))
		h.render(w, r, http.StatusUnprocessableEntity, pageData{Error: "Could not import document: " + err.Error()})
		return
	}

	h.render(w, r, http.StatusOK, pageData{Text: text})
}

// downloadURL percent-encodes every byte of the summary so the browser saves
// it unchanged. Form fields would rewrite CR and LF on the way back.
func downloadURL(summary string) template.URL {
	return template.URL(downloadURLPrefix + url.PathEscape(summary))
}

// Download returns the posted summary byte-for-byte as a text file. The page
// itself links a data URL; this route serves form and API clients.
func (h *PageHandler) Download(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid form submission", r))
		return
	}

	summary, ok := r.PostForm["summary"]
	if !ok || len(summary) == 0 || summary[0] == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Nothing to download", r))
		return
	}

	w.Header().Set("Content-Type", DownloadMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="`+DownloadFilename+`"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, summary[0])
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	if h.configErr != nil {
		data = pageData{ConfigError: h.configErr.Error()}
		status = http.StatusServiceUnavailable
	}
	data.Formats = strings.Join(services.SupportedImportFormats, ",")
	if data.Text != "" {
		data.Stats = services.CountText(data.Text)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.log.Error("failed to render page", zap.Error(err), zap.String("request_id", r.Header.Get(middleware.RequestIDHeader)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
