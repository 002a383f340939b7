package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Region used when only a custom endpoint is configured; S3 compatible
// servers ignore it but the signer requires one.
const s3FallbackRegion = "us-east-1"

type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Adapter stores objects in AWS S3 or any S3 compatible service.
type S3Adapter struct {
	client s3Client
}

type S3Options struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	SessionToken string
	UsePathStyle bool
}

func (o S3Options) loadOptions() []func(*config.LoadOptions) error {
	var out []func(*config.LoadOptions) error
	if region := o.Region; region != "" || o.Endpoint != "" {
		if region == "" {
			region = s3FallbackRegion
		}
		out = append(out, config.WithRegion(region))
	}
	if o.AccessKey != "" || o.SecretKey != "" {
		out = append(out, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, o.SessionToken),
		))
	}
	return out
}

// NewS3 falls back to the default AWS credential chain when no static keys are set.
func NewS3(ctx context.Context, opts S3Options) (*S3Adapter, error) {
	cfg, err := config.LoadDefaultConfig(ctx, opts.loadOptions()...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = opts.UsePathStyle
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return &S3Adapter{client: client}, nil
}

// PutObject uploads in a single request. Bodies of unknown length are
// buffered first so the request can be signed with a content length.
func (s *S3Adapter) PutObject(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (ObjectInfo, error) {
	size := opts.Size
	if size < 0 {
		buf, err := io.ReadAll(r)
		if err != nil {
			return ObjectInfo{}, err
		}
		r, size = bytes.NewReader(buf), int64(len(buf))
	}

	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   nonEmpty(opts.ContentType),
		Metadata:      opts.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("s3: put %s/%s: %w", bucket, key, err)
	}

	return ObjectInfo{Bucket: bucket, Key: key, Size: size, ETag: aws.ToString(out.ETag)}, nil
}

// DeleteObject succeeds for missing keys; S3 deletes are idempotent.
func (s *S3Adapter) DeleteObject(ctx context.Context, bucket, key string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("s3: delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *S3Adapter) Close() error {
	return nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
