package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Service stores profile images in Amazon S3 (or compatible APIs).
type S3Service struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    string
	keyPrefix string
	// endpoint overrides the public URL base for S3-compatible stores;
	// empty means virtual-hosted AWS URLs.
	endpoint string
	region   string
}

func NewS3Service(client *s3.Client, bucket, keyPrefix, region, endpoint string) *S3Service {
	return &S3Service{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		endpoint:  strings.TrimSuffix(endpoint, "/"),
		region:    region,
	}
}

func (s *S3Service) UploadProfileImage(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if s.bucket == "" {
		return "", fmt.Errorf("storage bucket is required")
	}

	fullKey := key
	if s.keyPrefix != "" {
		fullKey = s.keyPrefix + "/" + strings.TrimPrefix(key, "/")
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fullKey),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload profile image: %w", err)
	}

	return s.objectURL(fullKey), nil
}

func (s *S3Service) DeleteObject(ctx context.Context, key string) error {
	fullKey := key
	if s.keyPrefix != "" {
		fullKey = s.keyPrefix + "/" + strings.TrimPrefix(key, "/")
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fullKey),
	}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *S3Service) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

var _ Service = (*S3Service)(nil)
