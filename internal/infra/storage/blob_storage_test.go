package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndList(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	storage := NewBlobStorage(bucket, "https://cdn.example.com/images/")
	defer storage.Close()

	url, err := storage.Put(ctx, "user-1/abc.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/user-1/abc.png", url)

	_, err = storage.Put(ctx, "user-1/def.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	_, err = storage.Put(ctx, "user-2/ghi.png", "image/png", []byte("other"))
	require.NoError(t, err)

	objects, err := storage.List(ctx, "user-1/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "user-1/abc.png", objects[0].Key)
	assert.Equal(t, int64(len("png-bytes")), objects[0].Size)
	assert.Equal(t, "https://cdn.example.com/images/user-1/def.jpg", objects[1].URL)

	data, err := bucket.ReadAll(ctx, "user-1/abc.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestBlobStorage_PutSameKeyKeepsObject(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	storage := NewBlobStorage(bucket, "")
	defer storage.Close()

	first, err := storage.Put(ctx, "u/sum.png", "image/png", []byte("one"))
	require.NoError(t, err)
	second, err := storage.Put(ctx, "u/sum.png", "image/png", []byte("one"))
	require.NoError(t, err)

	assert.Equal(t, "/u/sum.png", first)
	assert.Equal(t, first, second)
}

func TestBlobStorage_ListEmptyPrefix(t *testing.T) {
	storage := NewBlobStorage(memblob.OpenBucket(nil), "")
	defer storage.Close()

	objects, err := storage.List(context.Background(), "nobody/")
	require.NoError(t, err)
	assert.Empty(t, objects)
}
