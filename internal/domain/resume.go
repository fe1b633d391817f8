package domain

import "context"

// ============================================================================
// Resume Storage
// ============================================================================

// ResumeFile is a downloaded resume blob plus presentation metadata.
type ResumeFile struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ResumeStore moves resume blobs between the service and durable object
// storage. References returned by Upload are dereferenceable URLs whose path
// is prefixed with the owner's identity.
type ResumeStore interface {
	Upload(ctx context.Context, ownerID, filename, contentType string, data []byte) (string, error)
	Download(ctx context.Context, ref string) (*ResumeFile, error)
	// Delete is best-effort; callers in replace flows must tolerate failure.
	Delete(ctx context.Context, ref string) error
}

type ResumeUsecase interface {
	// Upload validates, stores, and records the new reference on the profile.
	// A previous resume is deleted best-effort before the new one is stored.
	Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error)

	// Download fetches the caller's stored resume; NotFound when none exists.
	Download(ctx context.Context, userID string) (*ResumeFile, error)
}
