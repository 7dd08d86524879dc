package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"worklink-aggregator/internal/config"
	"worklink-aggregator/pkg/models"
)

func testConfig(baseURL, apiKey string) *config.Config {
	cfg := &config.Config{}
	cfg.Providers.SerpAPI.APIKey = apiKey
	cfg.Providers.SerpAPI.BaseURL = baseURL
	cfg.Providers.SerpAPI.Timeout = 5 * time.Second
	cfg.Providers.SerpAPI.RateLimit = 600
	return cfg
}

func TestSearchSuccess(t *testing.T) {
	payload := `{
		"jobs_results": [
			{
				"job_id": "g-778",
				"title": "Part-Time Library Assistant",
				"company_name": "City Library",
				"location": "Portland, OR",
				"description": "Flexible schedule in a quiet environment with reasonable accommodation on request.",
				"detected_extensions": {
					"posted_at": "3 days ago",
					"schedule_type": "Part-time",
					"salary": "$18 an hour"
				},
				"apply_options": [
					{"title": "City Careers", "link": "https://example.com/apply/778"},
					{"title": "LinkedIn", "link": "https://linkedin.example.com/778"}
				]
			},
			{
				"title": "Support Engineer",
				"company_name": "RemoteFirst Inc",
				"description": "Help customers by email.",
				"detected_extensions": {"work_from_home": true}
			}
		]
	}`

	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL, "serp-key"))
	a.now = func() time.Time { return time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC) }

	listings, err := a.Search(context.Background(), "library assistant", "Portland")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery.Get("engine") != "google_jobs" {
		t.Errorf("engine = %q", gotQuery.Get("engine"))
	}
	if gotQuery.Get("api_key") != "serp-key" {
		t.Errorf("api_key = %q", gotQuery.Get("api_key"))
	}
	if gotQuery.Get("q") != "library assistant" {
		t.Errorf("q = %q", gotQuery.Get("q"))
	}
	if gotQuery.Get("location") != "Portland" {
		t.Errorf("location = %q", gotQuery.Get("location"))
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	l := listings[0]
	if l.ID != "ext_google_g-778" {
		t.Errorf("ID = %q", l.ID)
	}
	if l.Type != models.JobTypePartTime {
		t.Errorf("Type = %q, want part-time from schedule_type", l.Type)
	}
	if l.Salary != "$18 an hour" {
		t.Errorf("Salary = %q", l.Salary)
	}
	if l.PostedAt != "2024-12-07" {
		t.Errorf("PostedAt = %q, want three days before reference", l.PostedAt)
	}
	if l.ApplyURL != "https://example.com/apply/778" {
		t.Errorf("ApplyURL = %q, want first apply option", l.ApplyURL)
	}
	if l.Source != "google" {
		t.Errorf("Source = %q", l.Source)
	}
	if len(l.AccessibilityTags) == 0 {
		t.Error("expected tags inferred from flexible/quiet/accommodation text")
	}

	l2 := listings[1]
	if l2.Type != models.JobTypeRemote {
		t.Errorf("Type = %q, want remote from work_from_home", l2.Type)
	}
	if l2.Location != "Location not specified" {
		t.Errorf("Location placeholder missing: %q", l2.Location)
	}
	if l2.PostedAt != "2024-12-10" {
		t.Errorf("PostedAt = %q, want reference date for missing value", l2.PostedAt)
	}
	if l2.AccessibilityTags == nil {
		t.Error("tags must never be nil")
	}
}

func TestSearchDisabledWithoutCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("disabled adapter must not reach the network")
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL, ""))
	if a.Enabled() {
		t.Error("adapter without API key must be disabled")
	}
	if _, err := a.Search(context.Background(), "x", ""); err == nil {
		t.Error("expected unavailable error")
	}
}

func TestSearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL, "k"))
	if _, err := a.Search(context.Background(), "x", ""); err == nil {
		t.Error("expected error for HTTP 429")
	}
}

func TestSearchMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL, "k"))
	if _, err := a.Search(context.Background(), "x", ""); err == nil {
		t.Error("expected error for malformed payload")
	}
}
