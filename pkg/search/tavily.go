// Package search wraps the Tavily web-search API as a job posting source.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jobbuddy/backend/internal/domain"
)

const defaultBaseURL = "https://api.tavily.com/search"

// jobBoards are appended to every query so results skew toward postings.
var jobBoards = []string{"linkedin.com", "indeed.com", "glassdoor.com", "monster.com", "ziprecruiter.com"}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type searchRequest struct {
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	MaxResults        int      `json:"max_results"`
	IncludeDomains    []string `json:"include_domains"`
}

type searchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// SearchJobs queries Tavily for postings matching the profession and parses
// the hits into structured listings. Errors propagate; the caller decides
// whether to fall back.
func (c *Client) SearchJobs(ctx context.Context, profession, location string, keywords []string) ([]domain.JobListing, error) {
	query := profession + " jobs"
	if location != "" {
		query += " in " + location
	}
	if len(keywords) > 0 {
		query += " " + strings.Join(keywords, " ")
	}
	query += " site:linkedin.com OR site:indeed.com OR site:glassdoor.com OR site:monster.com"

	body, err := json.Marshal(searchRequest{
		Query:             query,
		SearchDepth:       "advanced",
		IncludeAnswer:     false,
		IncludeRawContent: false,
		MaxResults:        20,
		IncludeDomains:    jobBoards,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily API error: %s", resp.Status)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("tavily decode failed: %w", err)
	}

	return parseListings(data.Results), nil
}

// ============================================================================
// Result Parsing
// ============================================================================

var (
	boardSuffixRe  = regexp.MustCompile(`(?i)\s*-\s*(LinkedIn|Indeed|Glassdoor|Monster).*$`)
	pipeSuffixRe   = regexp.MustCompile(`\s*\|\s*.*$`)
	titleCompanyRe = regexp.MustCompile(`(?i)at\s+([^-|]+)`)
	companyLabelRe = regexp.MustCompile(`(?i)Company:\s*([^\n]+)`)
	employerRe     = regexp.MustCompile(`(?i)Employer:\s*([^\n]+)`)
	contentAtRe    = regexp.MustCompile(`at\s+([A-Z][a-zA-Z\s&]+)`)
	locationRe     = regexp.MustCompile(`(?i)Location:\s*([^\n]+)`)
	cityStateRe    = regexp.MustCompile(`([A-Z][a-z]+,\s*[A-Z]{2})`)
	remoteRe       = regexp.MustCompile(`(?i)(Remote|Hybrid)`)
)

func parseListings(results []searchResult) []domain.JobListing {
	listings := []domain.JobListing{}
	for _, r := range results {
		title := extractTitle(r.Title)
		if title == "" {
			continue
		}
		listings = append(listings, domain.JobListing{
			Title:       title,
			Company:     extractCompany(r.Title, r.Content),
			Location:    extractLocation(r.Content),
			URL:         r.URL,
			Description: extractDescription(r.Content),
		})
	}
	return listings
}

// extractTitle strips job board suffixes from the hit title.
func extractTitle(title string) string {
	title = boardSuffixRe.ReplaceAllString(title, "")
	title = pipeSuffixRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}

func extractCompany(title, content string) string {
	if m := titleCompanyRe.FindStringSubmatch(title); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, re := range []*regexp.Regexp{companyLabelRe, employerRe, contentAtRe} {
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return "Company Name"
}

func extractLocation(content string) string {
	for _, re := range []*regexp.Regexp{locationRe, cityStateRe, remoteRe} {
		if m := re.FindStringSubmatch(content); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return "Location Not Specified"
}

// extractDescription keeps the first 200 characters of the hit content.
// Truncation counts runes so a multi-byte character is never split.
func extractDescription(content string) string {
	if runes := []rune(content); len(runes) > 200 {
		content = string(runes[:200])
	}
	return strings.TrimSpace(content) + "..."
}

// ============================================================================
// Resume Keywords
// ============================================================================

var resumeSkillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust",
	"React", "Vue", "Angular", "Node.js", "Express", "Django", "Flask",
	"HTML", "CSS", "SASS", "SCSS", "Tailwind", "Bootstrap",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Firebase",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes",
	"Git", "GitHub", "GitLab", "CI/CD", "Jenkins",
	"REST API", "GraphQL", "Microservices", "Agile", "Scrum",
}

var yearsExperienceRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(of\s*)?(experience|exp)`)

// ExtractResumeKeywords scans free resume text for known tech skills plus a
// years-of-experience phrase, for seeding job searches.
func ExtractResumeKeywords(resumeText string) []string {
	found := []string{}
	lower := strings.ToLower(resumeText)
	for _, skill := range resumeSkillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	if m := yearsExperienceRe.FindStringSubmatch(resumeText); m != nil {
		found = append(found, m[1]+" years experience")
	}
	return found
}
