package s3

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test-tracego-%d/", time.Now().UnixNano())

	store, err := New(ctx, bucket, WithPrefix(prefix))
	require.NoError(t, err)

	name := "snapshot.blob"
	data := make([]byte, 1024*1024)
	_, _ = rand.Read(data)

	require.NoError(t, store.Put(ctx, name, data))
	t.Cleanup(func() { _ = store.Delete(ctx, name) })

	got, err := store.Get(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, name)

	require.NoError(t, store.Delete(ctx, name))
	_, err = store.Get(ctx, name)
	assert.Error(t, err)
}
