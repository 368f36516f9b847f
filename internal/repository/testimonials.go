package repository

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/divinedekor/decor-service/internal/models"
	"go.uber.org/zap"
)

// MaxTestimonials caps the stored collection; the oldest entries are
// silently evicted once a submission pushes the list past it.
const MaxTestimonials = 50

// TestimonialStore keeps all testimonials in a single JSON array on disk.
// Writes go through a mutex so concurrent submits cannot interleave their
// read-modify-truncate-write cycles within this process.
type TestimonialStore struct {
	path string
	log  *zap.SugaredLogger

	mu sync.Mutex
}

func NewTestimonialStore(path string, log *zap.SugaredLogger) *TestimonialStore {
	return &TestimonialStore{path: path, log: log}
}

func seedTestimonials() []models.Testimonial {
	now := time.Now().UTC()
	return []models.Testimonial{
		{
			Text:      "Absolutely loved the decorations! They made my event so special.",
			Author:    "- Priya S.",
			Rating:    5,
			CreatedAt: now,
		},
		{
			Text:      "Professional and creative team. Highly recommend DivineDekor!",
			Author:    "- Rahul K.",
			Rating:    5,
			CreatedAt: now,
		},
	}
}

// load reads the backing file. A missing, empty, or unparseable file is
// reset to the seed testimonials and that seed is persisted; any other
// read failure is returned to the caller.
func (s *TestimonialStore) load() ([]models.Testimonial, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.reset()
		}
		return nil, err
	}
	if len(data) == 0 {
		return s.reset()
	}
	var reviews []models.Testimonial
	if err := json.Unmarshal(data, &reviews); err != nil {
		s.log.Warnf("invalid JSON in %s, resetting to defaults: %v", s.path, err)
		return s.reset()
	}
	return reviews, nil
}

func (s *TestimonialStore) reset() ([]models.Testimonial, error) {
	seed := seedTestimonials()
	if err := s.save(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

func (s *TestimonialStore) save(reviews []models.Testimonial) error {
	data, err := json.MarshalIndent(reviews, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// List returns all testimonials ordered by CreatedAt descending.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, err := s.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// Prepend inserts t at the front, truncates to MaxTestimonials, and
// persists the result.
func (s *TestimonialStore) Prepend(t models.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews, err := s.load()
	if err != nil {
		return err
	}
	reviews = append([]models.Testimonial{t}, reviews...)
	if len(reviews) > MaxTestimonials {
		reviews = reviews[:MaxTestimonials]
	}
	return s.save(reviews)
}
