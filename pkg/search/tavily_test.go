package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Senior Go Developer", extractTitle("Senior Go Developer - LinkedIn"))
	assert.Equal(t, "Backend Engineer", extractTitle("Backend Engineer | Acme Careers"))
	assert.Equal(t, "Platform Engineer", extractTitle("Platform Engineer - Indeed.com"))
	assert.Equal(t, "", extractTitle("  - Glassdoor"))
}

func TestExtractCompany(t *testing.T) {
	t.Run("From title at-clause", func(t *testing.T) {
		got := extractCompany("Senior Engineer at Stripe", "")
		assert.Equal(t, "Stripe", got)
	})

	t.Run("From content Company label", func(t *testing.T) {
		got := extractCompany("Senior Engineer", "Great role.\nCompany: Initech\nApply now")
		assert.Equal(t, "Initech", got)
	})

	t.Run("From content Employer label", func(t *testing.T) {
		got := extractCompany("Senior Engineer", "Employer: Globex Corp\nDetails follow")
		assert.Equal(t, "Globex Corp", got)
	})

	t.Run("Falls back to placeholder", func(t *testing.T) {
		got := extractCompany("Senior Engineer", "no company mentioned here")
		assert.Equal(t, "Company Name", got)
	})
}

func TestExtractLocation(t *testing.T) {
	assert.Equal(t, "Austin, TX", extractLocation("Location: Austin, TX\nGreat team"))
	assert.Equal(t, "Denver, CO", extractLocation("Join us in Denver, CO today"))
	assert.Equal(t, "Remote", extractLocation("This is a fully Remote position"))
	assert.Equal(t, "Location Not Specified", extractLocation("no geography here"))
}

func TestExtractDescription(t *testing.T) {
	t.Run("Short content kept whole", func(t *testing.T) {
		assert.Equal(t, "short blurb...", extractDescription("short blurb"))
	})

	t.Run("Long content truncated to 200 chars", func(t *testing.T) {
		long := ""
		for i := 0; i < 30; i++ {
			long += "0123456789"
		}
		got := extractDescription(long)
		assert.Len(t, got, 203)
		assert.Equal(t, "...", got[200:])
	})

	t.Run("Truncation never splits a multi-byte character", func(t *testing.T) {
		got := extractDescription(strings.Repeat("é", 250))
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, 203, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestExtractResumeKeywords(t *testing.T) {
	t.Run("Finds known skills and experience phrase", func(t *testing.T) {
		text := "Senior engineer with 5+ years of experience in Python and Docker"
		got := ExtractResumeKeywords(text)

		assert.Contains(t, got, "Python")
		assert.Contains(t, got, "Docker")
		assert.Contains(t, got, "5 years experience")
	})

	t.Run("Empty text yields nothing", func(t *testing.T) {
		assert.Empty(t, ExtractResumeKeywords(""))
	})
}

func TestSearchJobs(t *testing.T) {
	t.Run("Parses results into listings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-key", r.Header.Get("Api-Key"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": [
				{"title": "Senior Go Developer - LinkedIn", "url": "https://linkedin.com/jobs/1", "content": "Company: Stripe\nLocation: Remote\nGo and Kubernetes role", "score": 0.9},
				{"title": " - Indeed", "url": "https://indeed.com/x", "content": "noise", "score": 0.1}
			]}`))
		}))
		defer srv.Close()

		client := NewClient("test-key")
		client.baseURL = srv.URL

		listings, err := client.SearchJobs(context.Background(), "Software Engineer", "Remote", nil)
		assert.NoError(t, err)
		assert.Len(t, listings, 1)
		assert.Equal(t, "Senior Go Developer", listings[0].Title)
		assert.Equal(t, "Stripe", listings[0].Company)
		assert.Equal(t, "Remote", listings[0].Location)
		assert.Equal(t, "https://linkedin.com/jobs/1", listings[0].URL)
	})

	t.Run("Non-200 status surfaces an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient("test-key")
		client.baseURL = srv.URL

		_, err := client.SearchJobs(context.Background(), "Software Engineer", "", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "tavily API error")
	})
}
