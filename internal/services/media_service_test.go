package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeMediaStore struct {
	keys []string
	err  error
}

func (f *fakeMediaStore) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestMediaUpload_NonImage(t *testing.T) {
	store := &fakeMediaStore{}
	svc := NewMediaService(store)

	res, err := svc.Upload(context.Background(), "clip.mp4", "video/mp4", []byte("not image bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.URL, "https://cdn.example.com/gallery/"))
	require.Empty(t, res.ThumbnailURL)
	require.Len(t, store.keys, 1)
	require.True(t, strings.HasSuffix(store.keys[0], "_clip.mp4"))
}

func TestMediaUpload_ImageGetsThumbnail(t *testing.T) {
	store := &fakeMediaStore{}
	svc := NewMediaService(store)

	res, err := svc.Upload(context.Background(), "decor.png", "image/png", pngBytes(t))
	require.NoError(t, err)
	require.NotEmpty(t, res.URL)
	require.True(t, strings.HasSuffix(res.ThumbnailURL, "_thumb.jpg"))
	require.Len(t, store.keys, 2)
}

func TestMediaUpload_StoreError(t *testing.T) {
	store := &fakeMediaStore{err: errFailedStore}
	svc := NewMediaService(store)

	_, err := svc.Upload(context.Background(), "a.png", "image/png", nil)
	require.ErrorIs(t, err, errFailedStore)
}
