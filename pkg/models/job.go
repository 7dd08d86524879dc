package models

// Job type values produced by the normalizer. A listing always carries
// exactly one of these, never raw provider text.
const (
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
	JobTypeRemote   = "remote"
	JobTypeHybrid   = "hybrid"
	JobTypeContract = "contract"
)

// JobTypes lists every valid listing type in a fixed order.
var JobTypes = []string{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeRemote,
	JobTypeHybrid,
	JobTypeContract,
}

// Listing represents a normalized job listing aggregated from an external
// search provider.
//
// ID is unique across all listings returned by a single aggregation call
// (the source name is baked into the prefix). For providers that do not
// supply a stable identifier the suffix is random, so the same remote
// record fetched in two different cache epochs gets two different IDs.
// Callers must not rely on ID stability across cache refreshes.
type Listing struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Location          string   `json:"location"`
	Description       string   `json:"description"`
	Requirements      string   `json:"requirements"`
	Type              string   `json:"type"`
	Salary            string   `json:"salary,omitempty"`
	AccessibilityTags []string `json:"accessibility_tags"`
	PostedAt          string   `json:"posted_at"`
	SourceID          string   `json:"source_id,omitempty"`
	Source            string   `json:"source"`
	ApplyURL          string   `json:"apply_url,omitempty"`
}

// IsValidJobType reports whether t is one of the five fixed listing types.
func IsValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if t == jt {
			return true
		}
	}
	return false
}
