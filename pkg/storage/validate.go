package storage

import (
	"bytes"
	"path/filepath"
	"strings"
)

// MaxResumeSize is the hard upload cap (10 MiB).
const MaxResumeSize = 10 * 1024 * 1024

// ValidationError marks a rejected upload. Nothing is written to storage when
// one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Magic byte signatures for allowed resume types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},         // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                 // ZIP (PK..)
}

// Allowed resume extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// allowedExtensionList is the same whitelist in stable presentation order
// for error messages.
var allowedExtensionList = []string{".pdf", ".doc", ".docx"}

// Allowed declared MIME types.
var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ValidateResume performs layered validation on an uploaded resume:
// 1. Size cap
// 2. MIME type whitelist (PDF/DOC/DOCX only)
// 3. Extension whitelist
// 4. Magic byte verification (content matches extension)
func ValidateResume(filename, declaredMIME string, data []byte) error {
	if len(data) == 0 {
		return &ValidationError{Reason: "file is empty"}
	}
	if len(data) > MaxResumeSize {
		return &ValidationError{Reason: "file too large: maximum size is 10MB"}
	}

	if !allowedMIMETypes[declaredMIME] {
		return &ValidationError{Reason: "invalid file type: only PDF, DOC, and DOCX files are allowed"}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return &ValidationError{Reason: "file has no extension"}
	}
	if !allowedExtensions[ext] {
		return &ValidationError{Reason: "file extension not allowed: " + ext +
			". Allowed types: " + strings.Join(AllowedExtensions(), ", ")}
	}

	if !validateMagicBytes(ext, data) {
		return &ValidationError{Reason: "file content does not match extension (potential file spoofing detected)"}
	}

	return nil
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}

// AllowedExtensions returns the whitelist in stable order for error messages.
func AllowedExtensions() []string {
	out := make([]string, len(allowedExtensionList))
	copy(out, allowedExtensionList)
	return out
}
