// Package normalize maps raw provider records into the canonical listing
// shape. Every function here is pure and total: absent or malformed
// input degrades to placeholder values, never to an error.
package normalize

import (
	"fmt"
	"strings"

	"worklink-aggregator/pkg/models"
	"worklink-aggregator/pkg/utils"
)

// Placeholder values used when a provider omits a required field
const (
	PlaceholderTitle        = "Position Available"
	PlaceholderCompany      = "Company"
	PlaceholderLocation     = "Location not specified"
	PlaceholderDescription  = "No description provided"
	PlaceholderRequirements = "See job description"
)

// keywordRule pairs a set of trigger keywords with the label to emit.
// Rules are evaluated in declaration order so precedence stays explicit.
type keywordRule struct {
	keywords []string
	label    string
}

// typeRules classify a listing into one of the five job types. First
// match wins; no match falls through to full-time.
var typeRules = []keywordRule{
	{[]string{"remote", "work from home"}, models.JobTypeRemote},
	{[]string{"part-time", "part time"}, models.JobTypePartTime},
	{[]string{"contract"}, models.JobTypeContract},
	{[]string{"hybrid"}, models.JobTypeHybrid},
}

// tagRules are the accessibility keyword families. Unlike typeRules,
// every matching rule contributes a tag.
var tagRules = []keywordRule{
	{[]string{"remote", "work from home", "telecommute"}, "Remote Work"},
	{[]string{"flexible hours", "flexible schedule", "flextime", "flexible working"}, "Flexible Hours"},
	{[]string{"accommodation", "accommodations", "accessible workplace"}, "Accommodations Available"},
	{[]string{"disability", "inclusive", "diversity", "equal opportunity"}, "Disability Inclusive"},
	{[]string{"quiet", "low-stress", "calm environment"}, "Quiet Workspace"},
	{[]string{"mental health", "wellness", "wellbeing"}, "Mental Health Support"},
}

// ClassifyType derives the job type from a listing's title and
// description. The result is always one of the five fixed type values;
// input with no matching keyword classifies as full-time.
func ClassifyType(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.label
			}
		}
	}
	return models.JobTypeFullTime
}

// InferTags scans free text for the accessibility keyword families and
// returns every matching label in rule order. The result is heuristic,
// not provider-authoritative, and is never nil: an empty slice means
// "nothing detected", not "no accessibility features".
func InferTags(text string) []string {
	lower := strings.ToLower(text)
	tags := make([]string, 0, len(tagRules))
	for _, rule := range tagRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.label)
				break
			}
		}
	}
	return tags
}

// BuildID constructs a globally unique listing ID. Provider IDs are used
// verbatim when present; otherwise a random 9-character suffix keeps the
// ID unique within the current cache epoch.
func BuildID(source, providerID string) string {
	if providerID == "" {
		providerID = utils.RandomAlphanumeric(9)
	}
	return fmt.Sprintf("ext_%s_%s", source, providerID)
}

// FormatSalary synthesizes a display string from numeric salary bounds.
// Either bound may be absent; both absent yields an empty string so the
// caller can fall back to provider-formatted text or omit the field.
func FormatSalary(min, max float64, currency string) string {
	if min <= 0 && max <= 0 {
		return ""
	}
	if currency == "" {
		currency = "$"
	}
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("%s%s - %s%s", currency, formatAmount(min), currency, formatAmount(max))
	case min > 0:
		return fmt.Sprintf("From %s%s", currency, formatAmount(min))
	default:
		return fmt.Sprintf("Up to %s%s", currency, formatAmount(max))
	}
}

// formatAmount renders a salary amount without decimals for whole values
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
