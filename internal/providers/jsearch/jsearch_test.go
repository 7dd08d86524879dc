package jsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"worklink-aggregator/internal/config"
	"worklink-aggregator/pkg/models"
)

func testConfig(baseURL, apiKey string) *config.Config {
	cfg := &config.Config{}
	cfg.Providers.JSearch.APIKey = apiKey
	cfg.Providers.JSearch.BaseURL = baseURL
	cfg.Providers.JSearch.Timeout = 5 * time.Second
	cfg.Providers.JSearch.RateLimit = 600
	return cfg
}

func TestSearchSuccess(t *testing.T) {
	payload := `{
		"data": [
			{
				"job_id": "abc123",
				"job_title": "Remote Customer Advocate",
				"employer_name": "Acme Corp",
				"job_city": "Denver",
				"job_state": "CO",
				"job_country": "US",
				"job_description": "Remote role with flexible hours and workplace accommodations.",
				"job_employment_type": "FULLTIME",
				"job_is_remote": true,
				"job_min_salary": 40000,
				"job_max_salary": 52000,
				"job_posted_at_datetime_utc": "2024-12-01T08:00:00Z",
				"job_apply_link": "https://example.com/apply/abc123",
				"job_highlights": {"Qualifications": ["2 years support experience", "Empathy"]}
			},
			{
				"job_title": "Accountant",
				"employer_name": "Beta LLC",
				"job_description": "Prepare statements."
			}
		]
	}`

	var gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") == "" {
			t.Error("expected a query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL, "test-key"))
	a.now = func() time.Time { return time.Date(2024, 12, 10, 12, 0, 0, 0, time.UTC) }

	listings, err := a.Search(context.Background(), "customer support", "Denver")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("X-RapidAPI-Key = %q", gotKey)
	}
	if gotHost == "" {
		t.Error("expected X-RapidAPI-Host header")
	}
	if len(listings) != 2 {
		t.Fatalf("got %d listings, want 2", len(listings))
	}

	l := listings[0]
	if l.ID != "ext_jsearch_abc123" {
		t.Errorf("ID = %q", l.ID)
	}
	if l.Company != "Acme Corp" {
		t.Errorf("Company = %q", l.Company)
	}
	if l.Location != "Denver, CO, US" {
		t.Errorf("Location = %q", l.Location)
	}
	if l.Type != models.JobTypeRemote {
		t.Errorf("Type = %q, want remote", l.Type)
	}
	if l.Salary != "$40000 - $52000" {
		t.Errorf("Salary = %q", l.Salary)
	}
	if l.PostedAt != "2024-12-01" {
		t.Errorf("PostedAt = %q", l.PostedAt)
	}
	if l.Requirements != "2 years support experience; Empathy" {
		t.Errorf("Requirements = %q", l.Requirements)
	}
	if l.Source != "jsearch" {
		t.Errorf("Source = %q", l.Source)
	}
	if len(l.AccessibilityTags) == 0 {
		t.Error("expected inferred tags for remote/flexible/accommodations text")
	}

	// The second record has no ID or optional fields; placeholders and a
	// random ID suffix fill in
	l2 := listings[1]
	if l2.ID == "ext_jsearch_" {
		t.Error("expected random suffix for missing provider ID")
	}
	if l2.Location != "Location not specified" {
		t.Errorf("Location placeholder missing: %q", l2.Location)
	}
	if l2.Type != models.JobTypeFullTime {
		t.Errorf("Type = %q, want full-time default", l2.Type)
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
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL, "k"))
	if _, err := a.Search(context.Background(), "x", ""); err == nil {
		t.Error("expected error for HTTP 500")
	}
}

func TestSearchMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	a := New(testConfig(srv.URL, "k"))
	if _, err := a.Search(context.Background(), "x", ""); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestBuildQueryDefaults(t *testing.T) {
	if got := buildQuery("", ""); got != defaultQuery {
		t.Errorf("buildQuery = %q, want default", got)
	}
	if got := buildQuery("nurse", "Boston"); got != "nurse in Boston" {
		t.Errorf("buildQuery = %q", got)
	}
	if got := buildQuery("", "Boston"); got != defaultQuery+" in Boston" {
		t.Errorf("buildQuery = %q", got)
	}
}
