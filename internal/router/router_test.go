package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"legal-summarizer/internal/handlers"
	"legal-summarizer/internal/middleware"
	"legal-summarizer/internal/services"
)

type stubCompleter struct {
	result services.Result
	calls  int
}

func (s *stubCompleter) Summarize(ctx context.Context, payload string) services.Result {
	s.calls++
	return s.result
}

func newTestRouter(t *testing.T, client services.Completer, limit int, configErr error) http.Handler {
	t.Helper()

	log := zap.NewNop()
	runner := services.NewSummarizer(client, services.NewMemoryGuard(), log)
	extractor := services.NewFileExtractService()
	limiter := middleware.NewRateLimiter(limit, time.Minute)
	t.Cleanup(limiter.Stop)

	return New(
		log,
		handlers.NewPageHandler(runner, extractor, configErr, log),
		handlers.NewAPIHandler(runner, extractor, log),
		limiter,
		configErr,
	)
}

func TestRouter_SummarizeThroughPage(t *testing.T) {
	client := &stubCompleter{result: services.Success{Summary: "Plain summary."}}
	r := newTestRouter(t, client, 10, nil)

	form := url.Values{"text": {"The Licensee may not sublicense."}}
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Plain summary.") {
		t.Fatal("expected summary in the page")
	}
	if rr.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected a request id header")
	}
}

func TestRouter_RateLimitsSummarize(t *testing.T) {
	client := &stubCompleter{result: services.Success{Summary: "ok"}}
	r := newTestRouter(t, client, 1, nil)

	codes := []int{}
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries", strings.NewReader(`{"text":"clause"}`))
		req.RemoteAddr = "203.0.113.9:1234"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
	if client.calls != 1 {
		t.Fatalf("expected one provider call, got %d", client.calls)
	}
}

func TestRouter_ConfigErrorHaltsInteraction(t *testing.T) {
	client := &stubCompleter{result: services.Success{Summary: "unused"}}
	r := newTestRouter(t, client, 10, errors.New("GROQ_API_KEY is not set in your environment. Please add it to your .env file."))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rr.Body.String()
	if !strings.Contains(body, "GROQ_API_KEY is not set") || strings.Contains(body, "<textarea") {
		t.Fatalf("expected config error page without input controls, got:\n%s", body)
	}

	for _, path := range []string{"/summarize", "/download", "/extract", "/api/v1/summaries", "/api/v1/stats"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"text":"x"}`)))
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusServiceUnavailable, rr.Code)
		}
	}

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected unhealthy status, got %d", rr.Code)
	}

	if client.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", client.calls)
	}
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, &stubCompleter{}, 10, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health response %d %s", rr.Code, rr.Body.String())
	}
}
