package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heartmarshall/memoriaviva-backend/internal/config"
)

// uploader is the subset of manager.Uploader used here.
type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// deleter is the subset of s3.Client used here.
type deleter interface {
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3 stores media in an S3-compatible bucket.
type S3 struct {
	uploader      uploader
	deleter       deleter
	bucket        string
	prefix        string
	publicBaseURL string
	newKey        func(name string) string
}

// NewS3 builds an S3 backend. Static credentials are used when both key
// fields are set, otherwise the default AWS credential chain applies.
// A custom endpoint enables MinIO and similar services.
func NewS3(ctx context.Context, cfg config.StorageConfig) (*S3, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" && cfg.S3SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})

	s := newS3(manager.NewUploader(client), cfg)
	s.deleter = client
	return s, nil
}

func newS3(up uploader, cfg config.StorageConfig) *S3 {
	publicBase := cfg.PublicBaseURL
	// The filesystem default route is meaningless for a bucket.
	if publicBase == "/media" {
		publicBase = ""
	}
	return &S3{
		uploader:      up,
		bucket:        cfg.S3Bucket,
		prefix:        cfg.S3Prefix,
		publicBaseURL: publicBase,
		newKey:        objectKey,
	}
}

// Store uploads r. The returned URL is publicBaseURL/key when configured,
// otherwise the object location reported by S3.
func (s *S3) Store(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	key := s.prefix + s.newKey(name)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	out, err := s.uploader.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", key, err)
	}

	if s.publicBaseURL != "" {
		return joinURL(s.publicBaseURL, key), nil
	}
	return out.Location, nil
}

// Remove deletes the object behind a URL returned by Store. S3 reports
// success for keys that do not exist.
func (s *S3) Remove(ctx context.Context, url string) error {
	name, err := keyFromURL(url)
	if err != nil {
		return err
	}
	key := s.prefix + name
	_, err = s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}
