package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pdfBytes = append([]byte("%PDF-1.4"), bytes.Repeat([]byte("a"), 64)...)

func TestValidateResume(t *testing.T) {
	t.Run("Accepts a valid PDF", func(t *testing.T) {
		err := ValidateResume("resume.pdf", "application/pdf", pdfBytes)
		assert.NoError(t, err)
	})

	t.Run("Accepts DOCX with ZIP magic", func(t *testing.T) {
		data := append([]byte{0x50, 0x4B, 0x03, 0x04}, bytes.Repeat([]byte{0}, 32)...)
		err := ValidateResume("resume.docx",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
		assert.NoError(t, err)
	})

	t.Run("Accepts legacy DOC with OLE magic", func(t *testing.T) {
		data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, bytes.Repeat([]byte{0}, 32)...)
		err := ValidateResume("resume.doc", "application/msword", data)
		assert.NoError(t, err)
	})

	t.Run("Rejects empty file", func(t *testing.T) {
		err := ValidateResume("resume.pdf", "application/pdf", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("Rejects oversized file", func(t *testing.T) {
		data := make([]byte, MaxResumeSize+1)
		copy(data, "%PDF")
		err := ValidateResume("resume.pdf", "application/pdf", data)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("Rejects disallowed MIME type", func(t *testing.T) {
		err := ValidateResume("resume.pdf", "image/png", pdfBytes)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only PDF, DOC, and DOCX")
	})

	t.Run("Rejects missing extension", func(t *testing.T) {
		err := ValidateResume("resume", "application/pdf", pdfBytes)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no extension")
	})

	t.Run("Rejects extension outside whitelist", func(t *testing.T) {
		err := ValidateResume("resume.exe", "application/pdf", pdfBytes)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not allowed")
		assert.Contains(t, err.Error(), "Allowed types: .pdf, .doc, .docx")
	})

	t.Run("Rejects content that does not match extension", func(t *testing.T) {
		// Declared PDF, but the bytes are a ZIP archive.
		data := append([]byte{0x50, 0x4B, 0x03, 0x04}, bytes.Repeat([]byte{0}, 32)...)
		err := ValidateResume("resume.pdf", "application/pdf", data)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match extension")

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Extension check is case-insensitive", func(t *testing.T) {
		err := ValidateResume("Resume.PDF", "application/pdf", pdfBytes)
		assert.NoError(t, err)
	})
}

func TestAllowedExtensions(t *testing.T) {
	exts := AllowedExtensions()
	assert.Equal(t, []string{".pdf", ".doc", ".docx"}, exts)

	// Callers get a copy; mutating it must not poison the whitelist.
	exts[0] = ".exe"
	assert.Equal(t, []string{".pdf", ".doc", ".docx"}, AllowedExtensions())
}

func TestKeyFromRef(t *testing.T) {
	store := NewResumeStore(nil, "resumes", "https://s3.us-east-1.amazonaws.com")

	t.Run("Extracts key after the bucket segment", func(t *testing.T) {
		key, err := store.keyFromRef("https://s3.us-east-1.amazonaws.com/resumes/user1/user1-1700000000000.pdf")
		assert.NoError(t, err)
		assert.Equal(t, "user1/user1-1700000000000.pdf", key)
	})

	t.Run("Rejects URL without the bucket segment", func(t *testing.T) {
		_, err := store.keyFromRef("https://example.com/other/user1/file.pdf")
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("Rejects URL with bucket but no key", func(t *testing.T) {
		_, err := store.keyFromRef("https://s3.us-east-1.amazonaws.com/resumes")
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestContentTypeForExt(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeForExt(".pdf"))
	assert.Equal(t, "application/msword", contentTypeForExt(".DOC"))
	assert.Equal(t, "application/octet-stream", contentTypeForExt(".txt"))
}
