package matcher

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jobbuddy/backend/internal/domain"
	"github.com/jobbuddy/backend/pkg/logger"
)

// Scoring weights. The base score plus all bonuses tops out above 100 on
// purpose; the final score is clamped.
const (
	baseScore      = 60.0
	skillWeight    = 40.0
	locationBonus  = 10.0
	remoteBonus    = 5.0
	GoodMatchScore = 75
	MaxMatches     = 20
)

// Fixed requirement vocabulary. Matches are returned in this order, not in
// posting order.
var requirementTerms = []string{
	"Bachelor's degree",
	"Master's degree",
	"PhD",
	"years of experience",
	"JavaScript",
	"Python",
	"React",
	"Node.js",
	"TypeScript",
	"AWS",
	"Docker",
	"Kubernetes",
}

// Fixed benefit vocabulary, same ordering rule.
var benefitTerms = []string{
	"Health insurance",
	"Dental insurance",
	"401k",
	"Stock options",
	"Remote work",
	"Flexible hours",
	"Unlimited PTO",
	"Learning budget",
	"Gym membership",
}

const (
	maxRequirements = 5
	maxBenefits     = 4
)

// Profile is the slice of the user profile the scorer needs.
type Profile struct {
	Skills             []string
	PreferredLocations []string
}

// Matcher scores postings from a search backend against a user profile.
type Matcher struct {
	searcher domain.JobSearcher
}

func New(searcher domain.JobSearcher) *Matcher {
	return &Matcher{searcher: searcher}
}

// Score computes the 0-100 match score for one posting.
//
// base 60, plus up to 40 for skill overlap (substring match on lowercased
// title+description), plus 10 when a preferred location appears in the
// posting's location field, plus 5 when the posting text mentions remote and
// the user lists the literal location "Remote". Rounded once at the end.
func Score(listing domain.JobListing, profile Profile) int {
	score := baseScore

	jobText := strings.ToLower(listing.Title + " " + listing.Description)

	// Skill matching (40 points max). A user with no declared skills simply
	// gets no skill contribution; there is no zero division.
	if len(profile.Skills) > 0 {
		matched := 0
		for _, skill := range profile.Skills {
			if strings.Contains(jobText, strings.ToLower(skill)) {
				matched++
			}
		}
		score += math.Min(skillWeight, float64(matched)/float64(len(profile.Skills))*skillWeight)
	}

	// Location preference (10 points max)
	jobLocation := strings.ToLower(listing.Location)
	for _, loc := range profile.PreferredLocations {
		if loc != "" && strings.Contains(jobLocation, strings.ToLower(loc)) {
			score += locationBonus
			break
		}
	}

	// Remote work preference (5 points max). The "Remote" entry must be the
	// literal preference value; the posting side is a free-text scan.
	if strings.Contains(jobText, "remote") && containsString(profile.PreferredLocations, "Remote") {
		score += remoteBonus
	}

	rounded := math.Round(score)
	if rounded > 100 {
		rounded = 100
	}
	if rounded < 0 {
		rounded = 0
	}
	return int(rounded)
}

// ExtractRequirements scans the description for the fixed requirement
// vocabulary, case-insensitively, returning at most 5 terms in vocabulary
// order.
func ExtractRequirements(description string) []string {
	return extractTerms(description, requirementTerms, maxRequirements)
}

// ExtractBenefits is the benefit-side counterpart, capped at 4.
func ExtractBenefits(description string) []string {
	return extractTerms(description, benefitTerms, maxBenefits)
}

func extractTerms(description string, vocabulary []string, limit int) []string {
	found := []string{}
	descLower := strings.ToLower(description)
	for _, term := range vocabulary {
		if strings.Contains(descLower, strings.ToLower(term)) {
			found = append(found, term)
			if len(found) == limit {
				break
			}
		}
	}
	return found
}

// FindMatches searches each target company for postings, scores them, keeps
// the good matches, and returns the top results ranked by score.
//
// When the search backend fails for a company we substitute one synthetic
// posting instead of surfacing the error, so the dashboard is never empty.
// Synthetic postings bypass the good-match filter.
func (m *Matcher) FindMatches(ctx context.Context, companies []string, profile Profile, profession string) []domain.JobMatch {
	all := []domain.JobMatch{}

	for _, company := range companies {
		careersSite := fmt.Sprintf("site:%s.com/careers", companySlug(company))
		listings, err := m.searcher.SearchJobs(ctx, profession, "", []string{careersSite})
		if err != nil {
			logger.Log.Warn("job search failed, serving synthetic posting",
				"company", company, "error", err)
			all = append(all, m.syntheticMatch(company, profession, profile))
			continue
		}

		for _, listing := range listings {
			if listing.Company == "" {
				listing.Company = company
			}
			if listing.Location == "" {
				listing.Location = "Not specified"
			}
			match := toMatch(listing, profile)
			if match.MatchScore >= GoodMatchScore {
				all = append(all, match)
			}
		}
	}

	// Stable sort keeps discovery order on equal scores.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].MatchScore > all[j].MatchScore
	})
	if len(all) > MaxMatches {
		all = all[:MaxMatches]
	}
	return all
}

func toMatch(listing domain.JobListing, profile Profile) domain.JobMatch {
	postedDate := listing.PostedDate
	if postedDate == "" {
		postedDate = "Recently"
	}
	return domain.JobMatch{
		ID:           fmt.Sprintf("%s-%s", listing.Company, uuid.NewString()),
		Title:        listing.Title,
		Company:      listing.Company,
		Location:     listing.Location,
		Description:  listing.Description,
		URL:          listing.URL,
		PostedDate:   postedDate,
		MatchScore:   Score(listing, profile),
		Requirements: ExtractRequirements(listing.Description),
		Benefits:     ExtractBenefits(listing.Description),
	}
}

// syntheticMatch fabricates a deterministic senior posting for the company.
// The description embeds the user's own skills so the score comes out high;
// this mirrors the product decision that an upstream outage must not leave
// the dashboard blank.
func (m *Matcher) syntheticMatch(company, profession string, profile Profile) domain.JobMatch {
	title := "Senior " + profession
	slug := companySlug(company)
	scored := domain.JobListing{
		Title:       title,
		Description: profession + " " + strings.Join(profile.Skills, " ") + " experience",
		Location:    "San Francisco, CA",
	}

	requirements := []string{"5+ years experience", "Bachelor's degree"}
	if len(profile.Skills) > 3 {
		requirements = append(requirements, profile.Skills[:3]...)
	} else {
		requirements = append(requirements, profile.Skills...)
	}

	return domain.JobMatch{
		ID:          company + "-mock-1",
		Title:       title,
		Company:     company,
		Location:    "San Francisco, CA",
		Description: fmt.Sprintf("We're looking for a senior %s to join our team and help build the future of technology.", profession),
		URL: fmt.Sprintf("https://%s.com/careers/senior-%s", slug,
			strings.ReplaceAll(strings.ToLower(profession), " ", "-")),
		PostedDate:   "2 days ago",
		MatchScore:   Score(scored, profile),
		Requirements: requirements,
		Benefits:     []string{"Health insurance", "Stock options", "Remote work", "401k"},
	}
}

func companySlug(company string) string {
	return strings.ReplaceAll(strings.ToLower(company), " ", "")
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
