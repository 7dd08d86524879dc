// Package serpapi adapts the SerpAPI Google Jobs engine.
package serpapi

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

const sourceName = "google"

// defaultQuery is used when the caller supplies no search phrase
const defaultQuery = "jobs for people with disabilities"

// Adapter implements the providers.Adapter interface for SerpAPI
type Adapter struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  logging.Logger
	now     func() time.Time
}

// New creates a SerpAPI adapter from the application config
func New(cfg *config.Config) *Adapter {
	perMinute := cfg.Providers.SerpAPI.RateLimit
	if perMinute <= 0 {
		perMinute = 60
	}

	return &Adapter{
		apiKey:  cfg.Providers.SerpAPI.APIKey,
		baseURL: cfg.Providers.SerpAPI.BaseURL,
		client:  &http.Client{Timeout: cfg.Providers.SerpAPI.Timeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		logger:  logging.GetGlobalLogger(),
		now:     time.Now,
	}
}

// Name returns the source identifier stamped on normalized listings
func (a *Adapter) Name() string {
	return sourceName
}

// Enabled reports whether the SerpAPI key is configured
func (a *Adapter) Enabled() bool {
	return a.apiKey != ""
}

// searchResponse mirrors the SerpAPI google_jobs payload
type searchResponse struct {
	JobsResults []rawJob `json:"jobs_results"`
}

// rawJob mirrors a single Google Jobs result
type rawJob struct {
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Extensions  struct {
		PostedAt     string `json:"posted_at"`
		ScheduleType string `json:"schedule_type"`
		Salary       string `json:"salary"`
		WorkFromHome bool   `json:"work_from_home"`
	} `json:"detected_extensions"`
	ApplyOptions []struct {
		Title string `json:"title"`
		Link  string `json:"link"`
	} `json:"apply_options"`
}

// Search performs one Google Jobs request and normalizes the results
func (a *Adapter) Search(ctx context.Context, query, location string) ([]models.Listing, error) {
	if !a.Enabled() {
		return nil, utils.NewProviderUnavailableError(sourceName)
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, utils.NewProviderError(sourceName, err.Error())
	}

	params := url.Values{}
	params.Set("engine", "google_jobs")
	params.Set("q", utils.GetStringOrDefault(query, defaultQuery))
	params.Set("api_key", a.apiKey)
	if strings.TrimSpace(location) != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, utils.NewProviderError(sourceName, err.Error())
	}

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

	listings := make([]models.Listing, 0, len(payload.JobsResults))
	for _, raw := range payload.JobsResults {
		listings = append(listings, a.normalizeJob(raw))
	}

	a.logger.Debug("Google Jobs search completed", map[string]interface{}{
		"query":   query,
		"results": len(listings),
	})
	return listings, nil
}

// normalizeJob maps a raw Google Jobs record to the canonical listing
// shape. Google's type signal comes from title, description and the
// detected schedule_type extension, so all three feed classification.
func (a *Adapter) normalizeJob(raw rawJob) models.Listing {
	description := normalize.CleanDescription(utils.GetStringOrDefault(raw.Description, normalize.PlaceholderDescription))
	title := utils.GetStringOrDefault(raw.Title, normalize.PlaceholderTitle)

	jobType := normalize.ClassifyType(title+" "+raw.Extensions.ScheduleType, description)
	if raw.Extensions.WorkFromHome {
		jobType = models.JobTypeRemote
	}

	var applyURL string
	if len(raw.ApplyOptions) > 0 {
		applyURL = raw.ApplyOptions[0].Link
	}

	// Google descriptions are terse; scan the title as well so tags like
	// "Remote Work" are not missed.
	tags := normalize.InferTags(title + " " + description)

	return models.Listing{
		ID:                normalize.BuildID(sourceName, raw.JobID),
		Title:             title,
		Company:           utils.GetStringOrDefault(raw.CompanyName, normalize.PlaceholderCompany),
		Location:          utils.GetStringOrDefault(raw.Location, normalize.PlaceholderLocation),
		Description:       description,
		Requirements:      normalize.PlaceholderRequirements,
		Type:              jobType,
		Salary:            raw.Extensions.Salary,
		AccessibilityTags: tags,
		PostedAt:          normalize.ParsePostedDate(raw.Extensions.PostedAt, a.now()),
		SourceID:          raw.JobID,
		Source:            sourceName,
		ApplyURL:          applyURL,
	}
}
