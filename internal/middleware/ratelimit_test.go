package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitInvalidFormat(t *testing.T) {
	t.Parallel()

	if _, err := RateLimit("not-a-rate", ""); err == nil {
		t.Error("Expected error for invalid rate format")
	}
}

func TestRateLimitMemoryStore(t *testing.T) {
	t.Parallel()

	// 3 requests per minute from one IP, in-process store.
	mw, err := RateLimit("3-M", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doRequest := func(ip string) int {
		req := httptest.NewRequest("GET", "/api/summary", nil)
		req.Header.Set("X-Real-IP", ip)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Result().StatusCode
	}

	for i := 0; i < 3; i++ {
		if status := doRequest("10.0.0.1"); status != http.StatusOK {
			t.Fatalf("Request %d: expected status 200, got %d", i+1, status)
		}
	}

	if status := doRequest("10.0.0.1"); status != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 after exceeding the limit, got %d", status)
	}

	// A different client IP has its own budget.
	if status := doRequest("10.0.0.2"); status != http.StatusOK {
		t.Errorf("Expected status 200 for a fresh IP, got %d", status)
	}
}

func TestRateLimitDefaultsRate(t *testing.T) {
	t.Parallel()

	mw, err := RateLimit("", "")
	if err != nil {
		t.Fatalf("Unexpected error for empty rate format: %v", err)
	}

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/summary", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 under the default rate, got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-RateLimit-Limit") == "" {
		t.Error("Expected X-RateLimit-Limit header to be set")
	}
}

func TestRateLimitRejectsBadRedisURL(t *testing.T) {
	t.Parallel()

	if _, err := RateLimit("20-S", "://not-a-url"); err == nil {
		t.Error("Expected error for malformed Redis URL")
	}
}

func TestRateLimitSeparateKeysViaForwardedFor(t *testing.T) {
	t.Parallel()

	mw, err := RateLimit("2-M", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 4; i++ {
		req := httptest.NewRequest("GET", "/api/summary", nil)
		// Each request presents itself as a distinct forwarded client.
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("172.16.0.%d, 10.0.0.1", i))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("Request %d: expected status 200 for distinct client, got %d", i+1, w.Result().StatusCode)
		}
	}
}
