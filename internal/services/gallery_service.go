package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/divinedekor/decor-service/internal/models"
	"github.com/divinedekor/decor-service/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// GalleryRepository is the document collection behind the listing service.
type GalleryRepository interface {
	Insert(ctx context.Context, item *models.GalleryItem) (*models.GalleryItem, error)
	ListRanked(ctx context.Context, skip, limit int64) ([]models.GalleryItem, error)
	ListByType(ctx context.Context, fileType string, skip, limit int64) ([]models.GalleryItem, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, fileType string) (int64, error)
	IncrementLike(ctx context.Context, id string) (*models.GalleryItem, error)
}

type GalleryService struct {
	repo GalleryRepository
	log  *zap.SugaredLogger
}

func NewGalleryService(repo GalleryRepository, log *zap.SugaredLogger) *GalleryService {
	return &GalleryService{repo: repo, log: log}
}

// normalizePaging replaces non-positive page/limit with the defaults and
// returns the 0-based skip offset.
func normalizePaging(page, limit int) (int, int, int64) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit, int64(page-1) * int64(limit)
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// Create stores new gallery metadata. Both fields are required after
// trimming; the media bytes themselves live on the external host and only
// the reference arrives here.
func (s *GalleryService) Create(ctx context.Context, filePath, fileType string) (*models.GalleryItem, error) {
	filePath = strings.TrimSpace(filePath)
	if filePath == "" {
		return nil, validationError("Missing or invalid 'filePath'.")
	}
	fileType = strings.TrimSpace(fileType)
	if fileType == "" {
		return nil, validationError("Missing or invalid 'fileType'.")
	}
	if !models.KnownFileType(fileType) {
		s.log.Warnf("gallery upload with off-taxonomy fileType %q", fileType)
	}

	item := &models.GalleryItem{
		FilePath: filePath,
		FileType: fileType,
		LikeCnt:  0,
	}
	return s.repo.Insert(ctx, item)
}

// ListAll returns one page of the curated feed: items ordered by their
// category's rank in the fixed taxonomy, with the taxonomy itself included
// so the client can render its filter chips from the same source.
func (s *GalleryService) ListAll(ctx context.Context, page, limit int) (*models.GalleryPage, error) {
	page, limit, skip := normalizePaging(page, limit)

	items, err := s.repo.ListRanked(ctx, skip, int64(limit))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.GalleryPage{
		Page:      page,
		Pages:     totalPages(total, limit),
		Total:     total,
		FileTypes: models.FileTypes,
		Items:     items,
	}, nil
}

// ListByType returns one page of a single category, newest first. An empty
// page is a valid result, not an error.
func (s *GalleryService) ListByType(ctx context.Context, fileType string, page, limit int) (*models.TypedGalleryPage, error) {
	page, limit, skip := normalizePaging(page, limit)

	items, err := s.repo.ListByType(ctx, fileType, skip, int64(limit))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountByType(ctx, fileType)
	if err != nil {
		return nil, err
	}
	return &models.TypedGalleryPage{
		Page:  page,
		Pages: totalPages(total, limit),
		Total: total,
		Items: items,
	}, nil
}

// Like atomically increments the like counter of one item.
func (s *GalleryService) Like(ctx context.Context, id string) (*models.GalleryItem, error) {
	item, err := s.repo.IncrementLike(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("gallery item %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}
