package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  env: production
  port: 8080
  shutdown_seconds: 5
mongodb:
  uri: mongodb://db:27017
  database: decor
  collection: Gallery
testimonials:
  file: /var/lib/decor/reviews.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.App.Env)
	require.Equal(t, 8080, cfg.App.Port)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	require.Equal(t, "/var/lib/decor/reviews.json", cfg.Testimonials.File)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
mongodb:
  uri: mongodb://localhost:27017
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.App.Port)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "divinedekor", cfg.Mongo.Database)
	require.Equal(t, "Gallery", cfg.Mongo.Collection)
	require.Equal(t, "reviews.json", cfg.Testimonials.File)
	require.Equal(t, 600, cfg.S3.PresignTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
