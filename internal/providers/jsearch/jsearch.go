// Package jsearch adapts the RapidAPI JSearch job search API, which
// indexes Indeed, LinkedIn and other major boards.
package jsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"worklink-aggregator/internal/config"
	"worklink-aggregator/internal/logging"
	"worklink-aggregator/internal/normalize"
	"worklink-aggregator/pkg/models"
	"worklink-aggregator/pkg/utils"
)

const sourceName = "jsearch"

// defaultQuery is used when the caller supplies no search phrase
const defaultQuery = "inclusive accessible jobs"

// Adapter implements the providers.Adapter interface for JSearch
type Adapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  logging.Logger
	now     func() time.Time
}

// New creates a JSearch adapter from the application config
func New(cfg *config.Config) *Adapter {
	perMinute := cfg.Providers.JSearch.RateLimit
	if perMinute <= 0 {
		perMinute = 60
	}

	return &Adapter{
		apiKey:  cfg.Providers.JSearch.APIKey,
		baseURL: strings.TrimRight(cfg.Providers.JSearch.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Providers.JSearch.Timeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		logger:  logging.GetGlobalLogger(),
		now:     time.Now,
	}
}

// Name returns the source identifier stamped on normalized listings
func (a *Adapter) Name() string {
	return sourceName
}

// Enabled reports whether the RapidAPI key is configured
func (a *Adapter) Enabled() bool {
	return a.apiKey != ""
}

// searchResponse mirrors the top-level JSearch payload
type searchResponse struct {
	Data []rawJob `json:"data"`
}

// rawJob mirrors a single JSearch result
type rawJob struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"job_title"`
	Employer       string   `json:"employer_name"`
	City           string   `json:"job_city"`
	State          string   `json:"job_state"`
	Country        string   `json:"job_country"`
	Description    string   `json:"job_description"`
	EmploymentType string   `json:"job_employment_type"`
	IsRemote       bool     `json:"job_is_remote"`
	MinSalary      float64  `json:"job_min_salary"`
	MaxSalary      float64  `json:"job_max_salary"`
	PostedAt       string   `json:"job_posted_at_datetime_utc"`
	ApplyLink      string   `json:"job_apply_link"`
	Highlights     struct {
		Qualifications []string `json:"Qualifications"`
	} `json:"job_highlights"`
}

// Search performs one JSearch request and normalizes the results
func (a *Adapter) Search(ctx context.Context, query, location string) ([]models.Listing, error) {
	if !a.Enabled() {
		return nil, utils.NewProviderUnavailableError(sourceName)
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, utils.NewProviderError(sourceName, err.Error())
	}

	params := url.Values{}
	params.Set("query", buildQuery(query, location))
	params.Set("num_pages", "1")

	endpoint := a.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.NewProviderError(sourceName, err.Error())
	}
	req.Header.Set("X-RapidAPI-Key", a.apiKey)
	req.Header.Set("X-RapidAPI-Host", hostOf(a.baseURL))

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, utils.NewProviderError(sourceName, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, utils.NewProviderError(sourceName, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, utils.NewProviderError(sourceName, err.Error())
	}

	listings := make([]models.Listing, 0, len(payload.Data))
	for _, raw := range payload.Data {
		listings = append(listings, a.normalizeJob(raw))
	}

	a.logger.Debug("JSearch search completed", map[string]interface{}{
		"query":   query,
		"results": len(listings),
	})
	return listings, nil
}

// normalizeJob maps a raw JSearch record to the canonical listing shape
func (a *Adapter) normalizeJob(raw rawJob) models.Listing {
	description := normalize.CleanDescription(utils.GetStringOrDefault(raw.Description, normalize.PlaceholderDescription))
	title := utils.GetStringOrDefault(raw.Title, normalize.PlaceholderTitle)

	jobType := normalize.ClassifyType(title, description)
	if raw.IsRemote {
		jobType = models.JobTypeRemote
	}

	requirements := normalize.PlaceholderRequirements
	if len(raw.Highlights.Qualifications) > 0 {
		requirements = strings.Join(raw.Highlights.Qualifications, "; ")
	}

	return models.Listing{
		ID:                normalize.BuildID(sourceName, raw.JobID),
		Title:             title,
		Company:           utils.GetStringOrDefault(raw.Employer, normalize.PlaceholderCompany),
		Location:          utils.GetStringOrDefault(joinLocation(raw.City, raw.State, raw.Country), normalize.PlaceholderLocation),
		Description:       description,
		Requirements:      requirements,
		Type:              jobType,
		Salary:            normalize.FormatSalary(raw.MinSalary, raw.MaxSalary, "$"),
		AccessibilityTags: normalize.InferTags(description),
		PostedAt:          normalize.ParsePostedDate(raw.PostedAt, a.now()),
		SourceID:          raw.JobID,
		Source:            sourceName,
		ApplyURL:          raw.ApplyLink,
	}
}

// buildQuery composes the provider search phrase from the optional
// caller query and location
func buildQuery(query, location string) string {
	q := utils.GetStringOrDefault(query, defaultQuery)
	if strings.TrimSpace(location) != "" {
		q = q + " in " + location
	}
	return q
}

// joinLocation joins the non-empty location parts with commas
func joinLocation(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// hostOf extracts the RapidAPI host header value from the base URL
func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return "jsearch.p.rapidapi.com"
	}
	return u.Host
}
