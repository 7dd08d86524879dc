package aggregator

import (
	"strings"
	"time"

	"worklink-aggregator/internal/normalize"
	"worklink-aggregator/pkg/models"
)

// seed is the static template a fallback listing is built from
type seed struct {
	id          string
	title       string
	company     string
	location    string
	description string
	salary      string
	applyURL    string
}

// seeds keep the result set non-empty when every provider is disabled
// or returns nothing. Illustrative data only; listings derive their
// type and tags through the same normalizer as real records.
var seeds = []seed{
	{
		id:          "seed-1",
		title:       "Customer Support Specialist (Remote)",
		company:     "BrightPath Software",
		location:    "Remote",
		description: "Fully remote customer support role with flexible hours. We provide screen reader compatible tooling and welcome applicants with disabilities. Equal opportunity employer.",
		salary:      "$38,000 - $48,000",
		applyURL:    "https://example.com/jobs/customer-support-specialist",
	},
	{
		id:          "seed-2",
		title:       "Accessibility QA Tester",
		company:     "Inclusive Labs",
		location:    "Portland, OR",
		description: "Test web applications with assistive technology. Quiet workspace available on request and workplace accommodations are standard. Hybrid schedule after onboarding.",
		salary:      "$52,000 - $65,000",
		applyURL:    "https://example.com/jobs/accessibility-qa-tester",
	},
	{
		id:          "seed-3",
		title:       "Data Entry Clerk",
		company:     "Meridian Health Partners",
		location:    "Columbus, OH",
		description: "Part-time data entry position with flexible scheduling. Our office is wheelchair accessible and we offer a comprehensive employee assistance program with mental health support.",
		salary:      "$17/hr",
		applyURL:    "https://example.com/jobs/data-entry-clerk",
	},
	{
		id:          "seed-4",
		title:       "Content Writer",
		company:     "Clearwater Media",
		location:    "Remote",
		description: "Work from home content writer producing articles on workplace inclusion. Flexible hours, wellness stipend, and a disability inclusive hiring process.",
		salary:      "$45,000 - $58,000",
		applyURL:    "https://example.com/jobs/content-writer",
	},
	{
		id:          "seed-5",
		title:       "Warehouse Associate",
		company:     "Summit Distribution",
		location:    "Reno, NV",
		description: "Full-time warehouse role. Accommodations available for lifting requirements; on-site occupational health team and quiet break areas.",
		salary:      "$19/hr",
		applyURL:    "https://example.com/jobs/warehouse-associate",
	},
	{
		id:          "seed-6",
		title:       "Software Engineer (Contract)",
		company:     "Harbor Analytics",
		location:    "Austin, TX",
		description: "Six month contract building accessibility tooling. Hybrid office with screen reader compatible internal systems and flexible working arrangements.",
		salary:      "$60/hr",
		applyURL:    "https://example.com/jobs/software-engineer-contract",
	},
}

// seedSource marks fallback listings so they are distinguishable from
// provider results
const seedSource = "internal"

// seedListings returns the static fallback records matching the query
// and location. With neither given, everything matches, which keeps the
// fully-degraded case non-empty.
func seedListings(query, location string, now time.Time) []models.Listing {
	listings := make([]models.Listing, 0, len(seeds))
	for _, s := range seeds {
		if !seedMatches(s, query, location) {
			continue
		}

		listings = append(listings, models.Listing{
			ID:                normalize.BuildID(seedSource, s.id),
			Title:             s.title,
			Company:           s.company,
			Location:          s.location,
			Description:       s.description,
			Requirements:      normalize.PlaceholderRequirements,
			Type:              normalize.ClassifyType(s.title, s.description),
			Salary:            s.salary,
			AccessibilityTags: normalize.InferTags(s.description),
			PostedAt:          now.Format("2006-01-02"),
			SourceID:          s.id,
			Source:            seedSource,
			ApplyURL:          s.applyURL,
		})
	}
	return listings
}

// seedMatches applies the same query/location substring predicate real
// records would face from the caller
func seedMatches(s seed, query, location string) bool {
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		haystack := strings.ToLower(s.title + " " + s.company + " " + s.description)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	if loc := strings.ToLower(strings.TrimSpace(location)); loc != "" {
		haystack := strings.ToLower(s.location + " " + s.description)
		if !strings.Contains(haystack, loc) {
			return false
		}
	}
	return true
}
