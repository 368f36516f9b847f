package service

import (
	"bytes"
	"context"
	"image"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/divinedekor/decor-service/internal/utils"
)

// MediaStore hosts the actual media bytes. The gallery only ever stores
// the durable URL this store hands back.
type MediaStore interface {
	Upload(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

type MediaService struct {
	store MediaStore
}

func NewMediaService(store MediaStore) *MediaService {
	return &MediaService{store: store}
}

// UploadResult is what the browser feeds into the gallery metadata form.
type UploadResult struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Upload pushes the file to the media host and returns its durable URL.
// Images additionally get a 320px-wide JPEG thumbnail stored next to the
// original; a thumbnail failure does not fail the upload.
func (s *MediaService) Upload(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error) {
	key := "gallery/" + utils.NewID() + "_" + path.Base(filename)
	url, err := s.store.Upload(ctx, key, contentType, data)
	if err != nil {
		return nil, err
	}
	res := &UploadResult{URL: url}

	if strings.HasPrefix(contentType, "image/") {
		if thumb, err := generateThumbnail(data); err == nil {
			thumbURL, err := s.store.Upload(ctx, key+"_thumb.jpg", "image/jpeg", thumb)
			if err == nil {
				res.ThumbnailURL = thumbURL
			}
		}
	}
	return res, nil
}

func generateThumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
