package jobqueue

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Keegs21/Bunkered/internal/platform/logging"
	"github.com/Keegs21/Bunkered/internal/platform/resilience"
)

func TestQStashPublisher_Enqueue_PublishesJob(t *testing.T) {
	var gotPath, gotAuth, gotDedup, gotForward, gotMethodHeader string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotDedup = r.Header.Get("Upstash-Deduplication-Id")
		gotForward = r.Header.Get("Upstash-Forward-X-Internal-Job-Token")
		gotMethodHeader = r.Header.Get("Upstash-Method")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:          server.URL,
		Token:            "qs-token",
		TargetBaseURL:    "https://api.example.com",
		Retries:          3,
		InternalJobToken: "job-secret",
	}, logging.NewNop())

	err := publisher.Enqueue(t.Context(), "/v1/internal/jobs/settle-tournament", map[string]any{
		"tournament_id": "att-pebble-beach-2026",
	}, 0, "settle-tournament-att-pebble-beach-2026-20260202T020000Z")
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	if !strings.HasPrefix(gotPath, "/v2/publish/https://api.example.com/v1/internal/jobs/settle-tournament") {
		t.Fatalf("unexpected publish path: %s", gotPath)
	}
	if gotAuth != "Bearer qs-token" {
		t.Fatalf("unexpected authorization header: %q", gotAuth)
	}
	if gotDedup != "settle-tournament-att-pebble-beach-2026-20260202T020000Z" {
		t.Fatalf("unexpected dedup header: %q", gotDedup)
	}
	if gotForward != "job-secret" {
		t.Fatalf("internal job token not forwarded: %q", gotForward)
	}
	if gotMethodHeader != http.MethodPost {
		t.Fatalf("unexpected upstash method: %q", gotMethodHeader)
	}
	if !strings.Contains(string(gotBody), "att-pebble-beach-2026") {
		t.Fatalf("payload not serialized: %s", gotBody)
	}
}

func TestQStashPublisher_Enqueue_NonRetryableStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       server.URL,
		Token:         "qs-token",
		TargetBaseURL: "https://api.example.com",
	}, logging.NewNop())

	err := publisher.Enqueue(t.Context(), "/v1/internal/jobs/settle-tournament", nil, 0, "dedup-1")
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "status=400") {
		t.Fatalf("error should carry status, got %v", err)
	}
}

func TestQStashPublisher_Enqueue_CircuitOpensOnRepeatedTransientFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:       server.URL,
		Token:         "qs-token",
		TargetBaseURL: "https://api.example.com",
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop())

	for i := 0; i < 2; i++ {
		if err := publisher.Enqueue(t.Context(), "/v1/internal/jobs/settle-tournament", nil, 0, ""); err == nil {
			t.Fatalf("attempt %d: expected transient failure", i+1)
		}
	}

	err := publisher.Enqueue(t.Context(), "/v1/internal/jobs/settle-tournament", nil, 0, "")
	if err == nil {
		t.Fatal("expected circuit breaker rejection")
	}
	if !strings.Contains(err.Error(), "temporarily unavailable") {
		t.Fatalf("expected circuit rejection, got %v", err)
	}
}

func TestValidateHTTPBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := validateHTTPBaseURL("ftp://queue.example.com"); err == nil {
		t.Fatal("expected unsupported scheme error")
	}
	if _, err := validateHTTPBaseURL(""); err == nil {
		t.Fatal("expected empty value error")
	}
	got, err := validateHTTPBaseURL("https://qstash.upstash.io/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://qstash.upstash.io" {
		t.Fatalf("expected trailing slash trimmed, got %q", got)
	}
}

func TestNormalizeDelay(t *testing.T) {
	t.Parallel()

	if got := normalizeDelay(0); got != "0s" {
		t.Fatalf("unexpected zero delay: %q", got)
	}
	if got := normalizeDelay(90 * time.Second); got != "90s" {
		t.Fatalf("unexpected delay: %q", got)
	}
}
