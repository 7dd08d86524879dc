package models

// SearchRequest represents the query parameters for a job search request
type SearchRequest struct {
	Query    string `query:"query" validate:"omitempty,max=200"`
	Location string `query:"location" validate:"omitempty,max=200"`
	Type     string `query:"type" validate:"omitempty,oneof=all full-time part-time remote hybrid contract"`
	Filters  string `query:"filters" validate:"omitempty,max=500"` // comma-separated filter IDs
}
