package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"github.com/jobbuddy/backend/internal/domain"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// ============================================================================
// Upsert (Atomic Full-Replace)
// ============================================================================

func (r *profileRepo) Upsert(ctx context.Context, userID string, in *domain.ProfileInput) (*domain.UserProfile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if not committed

	// 1. Upsert the scalar row. A nil resume URL or locations slice keeps
	// whatever is already stored.
	years := 0
	if in.ExperienceYears != nil {
		years = *in.ExperienceYears
	}

	var profileID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO user_profiles (
			external_user_id, name, email, profession, experience_years,
			resume_url, is_complete, preferred_locations, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (external_user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			profession = EXCLUDED.profession,
			experience_years = EXCLUDED.experience_years,
			resume_url = COALESCE(EXCLUDED.resume_url, user_profiles.resume_url),
			is_complete = EXCLUDED.is_complete,
			preferred_locations = COALESCE(EXCLUDED.preferred_locations, user_profiles.preferred_locations),
			updated_at = NOW()
		RETURNING id
	`, userID, in.Name, in.Email, in.Profession, years,
		in.ResumeURL, in.Complete(), locationsParam(in.PreferredLocations)).Scan(&profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	// 2. Replace skills when supplied (delete-all-then-insert)
	if in.Skills != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM user_skills WHERE profile_id = $1`, profileID); err != nil {
			return nil, fmt.Errorf("failed to clear existing skills: %w", err)
		}
		for _, skill := range in.Skills {
			if _, err := tx.Exec(ctx, `
				INSERT INTO user_skills (profile_id, skill) VALUES ($1, $2)
			`, profileID, skill); err != nil {
				return nil, fmt.Errorf("failed to insert skill %s: %w", skill, err)
			}
		}
	}

	// 3. Replace preferred companies when supplied
	if in.PreferredCompanies != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM user_companies WHERE profile_id = $1`, profileID); err != nil {
			return nil, fmt.Errorf("failed to clear existing companies: %w", err)
		}
		for _, company := range in.PreferredCompanies {
			if _, err := tx.Exec(ctx, `
				INSERT INTO user_companies (profile_id, company_name) VALUES ($1, $2)
			`, profileID, company); err != nil {
				return nil, fmt.Errorf("failed to insert company %s: %w", company, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

// locationsParam maps a nil slice to SQL NULL so COALESCE keeps the stored
// value, while a non-nil slice replaces it.
func locationsParam(locations []string) interface{} {
	if locations == nil {
		return nil
	}
	return pq.Array(locations)
}

// ============================================================================
// Reads
// ============================================================================

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT id, external_user_id, name, email, profession, experience_years,
		       resume_url, is_complete, COALESCE(preferred_locations, '{}'),
		       created_at, updated_at
		FROM user_profiles WHERE external_user_id = $1`

	var p domain.UserProfile
	var locations []string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.ExternalUserID, &p.Name, &p.Email, &p.Profession, &p.ExperienceYears,
		&p.ResumeURL, &p.IsComplete, pq.Array(&locations),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	p.PreferredLocations = locations
	p.Skills = []domain.UserSkill{}
	p.PreferredCompanies = []domain.PreferredCompany{}

	skillRows, err := r.db.Query(ctx, `
		SELECT id, skill FROM user_skills WHERE profile_id = $1 ORDER BY id
	`, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var s domain.UserSkill
		if err := skillRows.Scan(&s.ID, &s.Skill); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		p.Skills = append(p.Skills, s)
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skill rows: %w", err)
	}

	companyRows, err := r.db.Query(ctx, `
		SELECT id, company_name FROM user_companies WHERE profile_id = $1 ORDER BY id
	`, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	defer companyRows.Close()

	for companyRows.Next() {
		var c domain.PreferredCompany
		if err := companyRows.Scan(&c.ID, &c.CompanyName); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		p.PreferredCompanies = append(p.PreferredCompanies, c)
	}
	if err := companyRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return &p, nil
}

func (r *profileRepo) IsComplete(ctx context.Context, userID string) (bool, error) {
	var complete bool
	err := r.db.QueryRow(ctx, `
		SELECT is_complete FROM user_profiles WHERE external_user_id = $1
	`, userID).Scan(&complete)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check profile completeness: %w", err)
	}
	return complete, nil
}

// ============================================================================
// Resume Reference
// ============================================================================

// SetResumeURL stores the reference, creating a stub row when the user
// uploaded a resume before completing onboarding.
func (r *profileRepo) SetResumeURL(ctx context.Context, userID, url string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_profiles (
			external_user_id, name, email, profession, experience_years,
			resume_url, is_complete, created_at, updated_at
		)
		VALUES ($1, '', '', '', 0, $2, FALSE, NOW(), NOW())
		ON CONFLICT (external_user_id) DO UPDATE SET
			resume_url = EXCLUDED.resume_url,
			updated_at = NOW()
	`, userID, url)
	if err != nil {
		return fmt.Errorf("failed to set resume url: %w", err)
	}
	return nil
}
