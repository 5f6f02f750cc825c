package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"media-gallery/internal/domain/dto"
	"media-gallery/internal/domain/repositories"
	mediacfg "media-gallery/internal/pkg/config"
	"media-gallery/pkg/helper"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Storage stores the bytes as they are; no transcoding happens, so the
// reported size is the uploaded size and the duration is always 0.
type S3Storage struct {
	bucketName string
	region     string
}

var _ repositories.MediaGateway = (*S3Storage)(nil)

func NewS3Storage(cfg mediacfg.MediaConfig) *S3Storage {
	return &S3Storage{
		bucketName: cfg.S3Bucket,
		region:     cfg.S3Region,
	}
}

func (s *S3Storage) Configured() error {
	if s.bucketName == "" || s.region == "" {
		return fmt.Errorf("%w: S3_BUCKET, S3_REGION", ErrMissingCredentials)
	}
	return nil
}

func (s *S3Storage) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(s.region))
	if err != nil {
		return nil, fmt.Errorf("AWS config yüklenemedi: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

func (s *S3Storage) Upload(ctx context.Context, file io.Reader, params dto.TransformParams) (*dto.TransformResult, error) {
	if err := s.Configured(); err != nil {
		return nil, err
	}
	client, err := s.client(ctx)
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("dosya okunamadı: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(params.Filename))
	key := path.Join(params.Folder, uuid.NewString()+ext)
	contentType := params.ContentType
	if contentType == "" {
		contentType = helper.GetMimeTypeFromExtension(params.Filename)
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"original-filename": params.Filename,
			"resource-type":     params.ResourceType,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("S3 upload hatası: %w", err)
	}

	return &dto.TransformResult{
		PublicID:     key,
		Bytes:        int64(len(content)),
		Format:       strings.TrimPrefix(ext, "."),
		ResourceType: params.ResourceType,
		SecureURL:    s.objectURL(key),
	}, nil
}

func (s *S3Storage) Destroy(ctx context.Context, publicID, _ string) error {
	if err := s.Configured(); err != nil {
		return err
	}
	client, err := s.client(ctx)
	if err != nil {
		return err
	}
	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(publicID),
	})
	return err
}

// URL ignores resize options: plain S3 cannot transform on delivery.
func (s *S3Storage) URL(publicID string, _ dto.URLOptions) (string, error) {
	if err := s.Configured(); err != nil {
		return "", err
	}
	return s.objectURL(publicID), nil
}

func (s *S3Storage) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}
