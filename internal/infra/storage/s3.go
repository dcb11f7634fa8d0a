package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dhank77/undangan.love/internal/application/interfaces"
	"github.com/dhank77/undangan.love/pkg/env"
)

type Config struct {
	Bucket string
	Region string
}

func NewConfig() Config {
	return Config{
		Bucket: env.GetEnv("S3_BUCKET", ""),
		Region: env.GetEnv("AWS_REGION", "ap-southeast-3"),
	}
}

// Enabled reports whether snapshots should be archived at all.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

type Storage struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.SnapshotStorage = (*Storage)(nil)

func NewStorage(config aws.Config, cfg Config) *Storage {
	return &Storage{
		initClient(config),
		cfg.Bucket,
		cfg.Region,
	}
}

func initClient(config aws.Config) *s3.Client {
	client := s3.NewFromConfig(config, func(o *s3.Options) {
		o.UsePathStyle = true
	})
	return client
}

const snapshotContentType = "text/html; charset=utf-8"

// PutSnapshot stores a rendered page under key and returns its public URL.
func (s *Storage) PutSnapshot(ctx context.Context, key string, html string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          strings.NewReader(html),
		ContentType:   aws.String(snapshotContentType),
		ContentLength: aws.Int64(int64(len(html))),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s: %v", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("error creating bucket %s: %v", s.bucket, err)
	}
	return nil
}
