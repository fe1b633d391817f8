package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jobbuddy/backend/internal/domain"
)

// ErrInvalidReference is returned when a stored resume URL cannot be mapped
// back to an object key under the resume bucket.
var ErrInvalidReference = errors.New("invalid resume reference")

// ResumeStore keeps resume blobs in an S3-compatible bucket. Objects are
// keyed "<ownerID>/<ownerID>-<timestamp>.<ext>" so access policy reduces to a
// prefix check on the caller's identity.
type ResumeStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewResumeStore(client *s3.Client, bucket, baseURL string) *ResumeStore {
	return &ResumeStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload validates the file and writes it under the owner's prefix. Returns
// the dereferenceable URL to store on the profile. Validation failure means
// nothing was written.
func (s *ResumeStore) Upload(ctx context.Context, ownerID, filename, contentType string, data []byte) (string, error) {
	if err := ValidateResume(filename, contentType, data); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%s-%d%s", ownerID, ownerID, time.Now().UnixMilli(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return s.baseURL + "/" + s.bucket + "/" + key, nil
}

// Download resolves the stored reference to an object key and fetches it.
func (s *ResumeStore) Download(ctx context.Context, ref string) (*domain.ResumeFile, error) {
	key, err := s.keyFromRef(ref)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to download resume: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume body: %w", err)
	}

	filename := path.Base(key)
	return &domain.ResumeFile{
		Data:        data,
		Filename:    filename,
		ContentType: contentTypeForExt(path.Ext(filename)),
	}, nil
}

// Delete removes the blob behind the reference. Callers in replace flows
// treat failure as non-fatal.
func (s *ResumeStore) Delete(ctx context.Context, ref string) error {
	key, err := s.keyFromRef(ref)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// keyFromRef extracts the object key from a stored resume URL. The key is
// everything after the bucket segment in the URL path.
func (s *ResumeStore) keyFromRef(ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", ErrInvalidReference
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	bucketIdx := -1
	for i, seg := range segments {
		if seg == s.bucket {
			bucketIdx = i
			break
		}
	}
	if bucketIdx == -1 || bucketIdx == len(segments)-1 {
		return "", ErrInvalidReference
	}

	return strings.Join(segments[bucketIdx+1:], "/"), nil
}

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
