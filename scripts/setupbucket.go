package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/jobbuddy/backend/config"
	"github.com/jobbuddy/backend/pkg/storage"
)

// One-off setup script: verifies the resume bucket exists and creates it
// when missing. Run with: go run scripts/setupbucket.go
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
		Provider:        storage.S3Provider(cfg.S3Provider),
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.ResumeBucket,
		WasabiEndpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		fmt.Println("Failed to create S3 client:", err)
		os.Exit(1)
	}

	if err := storage.TestS3Connection(ctx, client, cfg.ResumeBucket); err == nil {
		fmt.Printf("Bucket %q already exists and is accessible\n", cfg.ResumeBucket)
		return
	}

	input := &s3.CreateBucketInput{
		Bucket: aws.String(cfg.ResumeBucket),
	}
	// us-east-1 rejects an explicit location constraint
	if cfg.S3Region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(cfg.S3Region),
		}
	}

	if _, err := client.CreateBucket(ctx, input); err != nil {
		if strings.Contains(err.Error(), "BucketAlreadyOwnedByYou") {
			fmt.Printf("Bucket %q already owned by this account\n", cfg.ResumeBucket)
			return
		}
		fmt.Println("Failed to create bucket:", err)
		os.Exit(1)
	}

	fmt.Printf("Created bucket %q in %s\n", cfg.ResumeBucket, cfg.S3Region)
}
