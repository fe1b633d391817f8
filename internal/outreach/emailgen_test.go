package outreach_test

import (
	"testing"

	"github.com/jobbuddy/backend/internal/outreach"

	"github.com/stretchr/testify/assert"
)

func baseParams() outreach.Params {
	return outreach.Params{
		RecipientName:  "Sarah Chen",
		RecipientRole:  "Engineering Manager",
		Company:        "Google",
		JobTitle:       "Backend Engineer",
		JobDescription: "We need Go, Kubernetes and PostgreSQL experience",
		SenderName:     "Jane Doe",
		Experience:     "Software Engineer",
		Skills:         []string{"Go", "Kubernetes", "PostgreSQL", "Rust"},
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Backend Engineer opportunity at Google",
		outreach.Subject("Backend Engineer", "Google"))
	assert.Equal(t, "Following up on Backend Engineer at Google",
		outreach.FollowUpSubject("Backend Engineer", "Google"))
}

func TestColdEmail(t *testing.T) {
	t.Run("Pinned opening renders deterministically", func(t *testing.T) {
		gen := outreach.NewWithOpening(0)

		first, err := gen.ColdEmail(baseParams())
		assert.NoError(t, err)
		second, err := gen.ColdEmail(baseParams())
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Contains(t, first, "I've been following Google's work")
	})

	t.Run("Includes recipient, role context and sender", func(t *testing.T) {
		gen := outreach.NewWithOpening(1)

		body, err := gen.ColdEmail(baseParams())
		assert.NoError(t, err)

		assert.Contains(t, body, "Hi Sarah Chen,")
		assert.Contains(t, body, "Backend Engineer position at Google")
		assert.Contains(t, body, "Best regards,\nJane Doe")
		assert.Contains(t, body, "sent on behalf of Jane Doe by JobBuddy")
	})

	t.Run("Strong overlap picks the aligned pitch and top three skills", func(t *testing.T) {
		gen := outreach.NewWithOpening(0)

		body, err := gen.ColdEmail(baseParams())
		assert.NoError(t, err)

		assert.Contains(t, body, "expertise in Go, Kubernetes, PostgreSQL")
		assert.Contains(t, body, "aligns perfectly with my technical background")
	})

	t.Run("Partial overlap picks the foundation pitch", func(t *testing.T) {
		gen := outreach.NewWithOpening(0)
		p := baseParams()
		p.JobDescription = "We need Go experience"

		body, err := gen.ColdEmail(p)
		assert.NoError(t, err)

		assert.Contains(t, body, "expertise in Go,")
		assert.Contains(t, body, "strong foundation for this role")
	})

	t.Run("No overlap falls back to the user's leading skills", func(t *testing.T) {
		gen := outreach.NewWithOpening(2)
		p := baseParams()
		p.JobDescription = "We need COBOL experience"

		body, err := gen.ColdEmail(p)
		assert.NoError(t, err)

		assert.Contains(t, body, "expertise in Go, Kubernetes, PostgreSQL")
		assert.Contains(t, body, "problem-solving approach would be valuable")
	})

	t.Run("Resume link only rendered when present", func(t *testing.T) {
		gen := outreach.NewWithOpening(0)

		p := baseParams()
		withoutResume, err := gen.ColdEmail(p)
		assert.NoError(t, err)
		assert.NotContains(t, withoutResume, "attached my resume")

		p.ResumeURL = "https://example.com/resumes/jane.pdf"
		withResume, err := gen.ColdEmail(p)
		assert.NoError(t, err)
		assert.Contains(t, withResume, "I've attached my resume for your review: https://example.com/resumes/jane.pdf")
	})

	t.Run("Opening index wraps around", func(t *testing.T) {
		a, err := outreach.NewWithOpening(0).ColdEmail(baseParams())
		assert.NoError(t, err)
		b, err := outreach.NewWithOpening(3).ColdEmail(baseParams())
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestFollowUp(t *testing.T) {
	gen := outreach.New()

	body, err := gen.FollowUp(baseParams(), 5)
	assert.NoError(t, err)

	assert.Contains(t, body, "Hi Sarah Chen,")
	assert.Contains(t, body, "my email from 5 days ago")
	assert.Contains(t, body, "Backend Engineer position at Google")
	assert.Contains(t, body, "Best regards,\nJane Doe")
}
