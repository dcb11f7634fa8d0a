package cache

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var previews *PreviewCache

func TestMain(m *testing.M) {
	ctx := context.Background()

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("start redis: %v", err)
	}

	endpoint, err := redisC.Endpoint(ctx, "")
	if err != nil {
		log.Fatalf("redis endpoint: %v", err)
	}
	client := NewRedisClient(Config{Addr: endpoint})
	previews = NewPreviewCache(client, time.Minute)

	code := m.Run()

	_ = client.Close()
	if err := redisC.Terminate(ctx); err != nil {
		log.Printf("failed to terminate redis: %s", err)
	}
	os.Exit(code)
}

func TestPreviewCacheLifecycle(t *testing.T) {
	ctx := context.Background()

	_, ok, err := previews.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, previews.Set(ctx, 1, "<h1>Sarah</h1>"))
	html, ok, err := previews.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "<h1>Sarah</h1>", html)

	require.NoError(t, previews.Invalidate(ctx, 1))
	_, ok, err = previews.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPreviewCacheExpires(t *testing.T) {
	ctx := context.Background()
	short := NewPreviewCache(previews.client, time.Second)

	require.NoError(t, short.Set(ctx, 2, "<p/>"))
	ttl, err := previews.client.TTL(ctx, previewKey(2)).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, time.Second)
}

func TestInvalidateMissingKey(t *testing.T) {
	require.NoError(t, previews.Invalidate(context.Background(), 404))
}

func TestNoopAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	var c Noop
	require.NoError(t, c.Set(ctx, 1, "x"))
	_, ok, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "template:preview:9", previewKey(9))
}
