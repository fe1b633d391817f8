package contacts_test

import (
	"testing"

	"github.com/jobbuddy/backend/internal/contacts"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	t.Run("Known company returns curated contacts", func(t *testing.T) {
		found := contacts.Find("Google")

		assert.Len(t, found, 2)
		assert.Equal(t, "Sarah Chen", found[0].Name)
		assert.Equal(t, "sarah.chen@google.com", found[0].Email)
		assert.Equal(t, 95, found[0].Confidence)
	})

	t.Run("Unknown company synthesizes a default contact", func(t *testing.T) {
		found := contacts.Find("Initech")

		assert.Len(t, found, 1)
		assert.Equal(t, "John Smith", found[0].Name)
		assert.Equal(t, "john.smith@initech.com", found[0].Email)
		assert.Equal(t, 75, found[0].Confidence)
	})

	t.Run("Never returns an empty list", func(t *testing.T) {
		assert.NotEmpty(t, contacts.Find(""))
	})

	t.Run("Returned slice is a copy", func(t *testing.T) {
		first := contacts.Find("Stripe")
		first[0].Name = "mutated"

		second := contacts.Find("Stripe")
		assert.Equal(t, "Emily Johnson", second[0].Name)
	})
}

func TestCompanyDomain(t *testing.T) {
	assert.Equal(t, "google.com", contacts.CompanyDomain("Google"))
	assert.Equal(t, "anthropic.com", contacts.CompanyDomain("Anthropic"))
	assert.Equal(t, "bigcorpindustries.com", contacts.CompanyDomain("Big Corp Industries"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, contacts.ValidEmail("jane@example.com"))
	assert.True(t, contacts.ValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, contacts.ValidEmail("not-an-email"))
	assert.False(t, contacts.ValidEmail("two@@example.com"))
	assert.False(t, contacts.ValidEmail("spaces in@example.com"))
	assert.False(t, contacts.ValidEmail("user@nodot"))
}
