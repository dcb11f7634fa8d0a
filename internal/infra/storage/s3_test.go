package storage

import (
	"context"
	"io"
	"log"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

var s3Storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()

	ls, err := localstack.Run(ctx,
		"localstack/localstack:1.4.0",
		testcontainers.WithEnv(map[string]string{"SERVICES": "s3"}),
	)
	if err != nil {
		log.Fatalf("failed to start localstack: %v", err)
	}

	mappedPort, err := ls.MappedPort(ctx, "4566/tcp")
	if err != nil {
		log.Fatalf("failed to get port: %v", err)
	}
	host, err := ls.Host(ctx)
	if err != nil {
		log.Fatalf("failed to get host: %v", err)
	}

	os.Setenv("AWS_ACCESS_KEY_ID", "test")
	os.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	os.Setenv("AWS_REGION", "us-east-1")
	os.Setenv("AWS_ENDPOINT_URL", "http://"+host+":"+mappedPort.Port())

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("can't load aws config: %v", err)
	}
	s3Storage = NewStorage(awsCfg, Config{Bucket: "undangan-snapshots", Region: "us-east-1"})
	if err = s3Storage.EnsureBucket(ctx); err != nil {
		log.Fatalf("failed to create bucket: %v", err)
	}

	exitCode := m.Run()

	if err := ls.Terminate(ctx); err != nil {
		log.Printf("failed to terminate localstack: %s", err)
	}

	os.Exit(exitCode)
}

func getSnapshot(ctx context.Context, key string) ([]byte, error) {
	resp, err := s3Storage.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s3Storage.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

func TestPutSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	html := "<h1>Sarah & Ahmad</h1>"

	location, err := s3Storage.PutSnapshot(ctx, "builders/1/index.html", html)
	require.NoError(t, err)
	require.Contains(t, location, "builders/1/index.html")

	data, err := getSnapshot(ctx, "builders/1/index.html")
	require.NoError(t, err)
	require.Equal(t, html, string(data))

	head, err := s3Storage.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s3Storage.bucket),
		Key:    aws.String("builders/1/index.html"),
	})
	require.NoError(t, err)
	require.Equal(t, "text/html; charset=utf-8", aws.ToString(head.ContentType))
}

func TestEnsureBucketIsIdempotent(t *testing.T) {
	require.NoError(t, s3Storage.EnsureBucket(context.Background()))
}

func TestGetMissingSnapshot(t *testing.T) {
	_, err := getSnapshot(context.Background(), "builders/404/index.html")
	require.Error(t, err)
}

func TestConfigEnabled(t *testing.T) {
	require.False(t, Config{}.Enabled())
	require.True(t, Config{Bucket: "b"}.Enabled())
}
