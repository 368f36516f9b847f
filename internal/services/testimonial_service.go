package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/divinedekor/decor-service/internal/models"
)

const (
	maxTextLen    = 1000
	maxAuthorLen  = 100
	defaultRating = 5
)

// TestimonialRepository is the bounded review collection behind the service.
type TestimonialRepository interface {
	List() ([]models.Testimonial, error)
	Prepend(t models.Testimonial) error
}

type TestimonialService struct {
	store TestimonialRepository
}

func NewTestimonialService(store TestimonialRepository) *TestimonialService {
	return &TestimonialService{store: store}
}

// SubmitTestimonialInput mirrors the JSON submit body. Rating is untyped
// because clients send numbers, floats, and string-numbers alike.
type SubmitTestimonialInput struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Rating any    `json:"rating"`
}

// List returns all testimonials, newest first.
func (s *TestimonialService) List() ([]models.Testimonial, error) {
	return s.store.List()
}

// Submit validates and normalizes the input, stores the new testimonial at
// the front of the collection, and returns the created record.
func (s *TestimonialService) Submit(in SubmitTestimonialInput) (*models.Testimonial, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, validationError("Invalid or missing 'text' field")
	}
	text = truncate(text, maxTextLen)

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = "Anonymous"
	}
	author = truncate(author, maxAuthorLen)
	if !strings.HasPrefix(author, "-") {
		author = "- " + author
	}

	t := models.Testimonial{
		Text:      text,
		Author:    author,
		Rating:    normalizeRating(in.Rating),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Prepend(t); err != nil {
		return nil, err
	}
	return &t, nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}

// normalizeRating coerces whatever the client sent to an integer in [1,5].
// Anything non-numeric, non-finite, or out of range becomes 5.
func normalizeRating(v any) int {
	var r float64
	switch n := v.(type) {
	case nil:
		return defaultRating
	case float64:
		r = n
	case int:
		r = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return defaultRating
		}
		r = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return defaultRating
		}
		r = f
	default:
		return defaultRating
	}
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 1 || r > 5 {
		return defaultRating
	}
	return int(math.Round(r))
}
