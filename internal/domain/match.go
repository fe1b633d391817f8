package domain

import "context"

// ============================================================================
// Job Matching
// ============================================================================

// JobListing is a raw posting as returned by the external search provider.
type JobListing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Salary      string `json:"salary,omitempty"`
	PostedDate  string `json:"posted_date,omitempty"`
}

// JobMatch is a scored posting. Computed fresh on every request, never
// persisted.
type JobMatch struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	PostedDate   string   `json:"posted_date"`
	MatchScore   int      `json:"match_score"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

// JobSearcher is the external posting source (Tavily-backed in production).
type JobSearcher interface {
	SearchJobs(ctx context.Context, profession, location string, keywords []string) ([]JobListing, error)
}

type MatchUsecase interface {
	// GetMatches scores postings at the caller's preferred companies against
	// their profile and returns the ranked top matches.
	GetMatches(ctx context.Context, userID string) ([]JobMatch, error)
}
