package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/divinedekor/decor-service/internal/models"
	"github.com/divinedekor/decor-service/internal/repository"
	service "github.com/divinedekor/decor-service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestimonialApp(t *testing.T) *fiber.App {
	t.Helper()
	store := repository.NewTestimonialStore(filepath.Join(t.TempDir(), "reviews.json"), zap.NewNop().Sugar())
	h := NewTestimonialHandler(service.NewTestimonialService(store), zap.NewNop().Sugar())

	app := fiber.New()
	app.Get("/api/testimonials", h.List)
	app.Post("/api/testimonials", h.Submit)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestGetTestimonials_SeedsAndReturnsArray(t *testing.T) {
	app := newTestimonialApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/testimonials", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []models.Testimonial
	decodeBody(t, resp, &reviews)
	require.Len(t, reviews, 2)
}

func TestPostTestimonial_CreatesAndNormalizes(t *testing.T) {
	app := newTestimonialApp(t)

	body := strings.NewReader(`{"text":"Great service","author":"Amit","rating":7}`)
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Testimonial
	decodeBody(t, resp, &created)
	require.Equal(t, "Great service", created.Text)
	require.Equal(t, "- Amit", created.Author)
	require.Equal(t, 5, created.Rating)
	require.False(t, created.CreatedAt.IsZero())

	// the new review lands at the front of the listing
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/testimonials", nil))
	require.NoError(t, err)
	var reviews []models.Testimonial
	decodeBody(t, resp, &reviews)
	require.Len(t, reviews, 3)
	require.Equal(t, "Great service", reviews[0].Text)
}

func TestPostTestimonial_MissingText(t *testing.T) {
	app := newTestimonialApp(t)

	body := strings.NewReader(`{"author":"Amit","rating":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]string
	decodeBody(t, resp, &out)
	require.Equal(t, "Invalid or missing 'text' field", out["message"])
}

func TestPostTestimonial_StringRating(t *testing.T) {
	app := newTestimonialApp(t)

	body := strings.NewReader(`{"text":"ok","rating":"3"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Testimonial
	decodeBody(t, resp, &created)
	require.Equal(t, 3, created.Rating)
}
