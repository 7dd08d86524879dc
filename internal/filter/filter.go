// Package filter narrows aggregated listings to those matching a set of
// accessibility criteria. It is a pure post-processing step: nothing
// here touches the network or the cache.
package filter

import (
	"strings"

	"worklink-aggregator/pkg/models"
)

// Criterion describes one entry of the accessibility filter taxonomy.
// A listing satisfies a criterion when its type equals JobType, any of
// its tags contains one of TagSubstrings (case-insensitive), or its
// description/salary text contains one of Phrases.
type Criterion struct {
	ID            string
	Label         string
	JobType       string
	TagSubstrings []string
	Phrases       []string
}

// Taxonomy is the fixed set of supported accessibility filters, in the
// order they are presented to callers.
var Taxonomy = []Criterion{
	{
		ID:            "remote",
		Label:         "Remote Work",
		JobType:       models.JobTypeRemote,
		TagSubstrings: []string{"remote"},
		Phrases:       []string{"remote", "work from home"},
	},
	{
		ID:            "flexible-hours",
		Label:         "Flexible Hours",
		TagSubstrings: []string{"flexible"},
		Phrases:       []string{"flexible hours", "flexible schedule", "flextime"},
	},
	{
		ID:            "wheelchair-accessible",
		Label:         "Wheelchair Accessible",
		TagSubstrings: []string{"accommodations"},
		Phrases:       []string{"wheelchair", "accessible office", "accessible workplace", "physical accessibility"},
	},
	{
		ID:            "screen-reader-compatible",
		Label:         "Screen Reader Compatible",
		TagSubstrings: []string{"accommodations"},
		Phrases:       []string{"screen reader", "assistive technology", "visual impairment"},
	},
	{
		ID:            "mental-health-support",
		Label:         "Mental Health Support",
		TagSubstrings: []string{"mental health"},
		Phrases:       []string{"mental health", "wellness program", "employee assistance"},
	},
	{
		ID:            "quiet-workspace",
		Label:         "Quiet Workspace",
		TagSubstrings: []string{"quiet"},
		Phrases:       []string{"quiet", "low-stress", "calm environment"},
	},
}

// criteriaByID indexes the taxonomy for lookup during matching
var criteriaByID = func() map[string]Criterion {
	m := make(map[string]Criterion, len(Taxonomy))
	for _, c := range Taxonomy {
		m[c.ID] = c
	}
	return m
}()

// Matches reports whether the listing satisfies every filter in
// filterIDs (logical AND). An empty filter set matches everything.
func Matches(listing models.Listing, filterIDs []string) bool {
	for _, id := range filterIDs {
		if !matchesOne(listing, id) {
			return false
		}
	}
	return true
}

// matchesOne evaluates a single filter ID against a listing.
//
// Unrecognized IDs match unconditionally. This keeps callers that ship
// new filter IDs ahead of server support working, at the cost of the
// filter silently becoming a no-op; see the matching test case before
// tightening this.
func matchesOne(listing models.Listing, id string) bool {
	criterion, ok := criteriaByID[id]
	if !ok {
		return true
	}

	if criterion.JobType != "" && listing.Type == criterion.JobType {
		return true
	}

	for _, tag := range listing.AccessibilityTags {
		tagLower := strings.ToLower(tag)
		for _, sub := range criterion.TagSubstrings {
			if strings.Contains(tagLower, sub) {
				return true
			}
		}
	}

	text := strings.ToLower(listing.Description + " " + listing.Salary)
	for _, phrase := range criterion.Phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	return false
}
