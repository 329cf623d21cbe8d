package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalStore(t *testing.T) (ConfigStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewLocalConfigStore(dir, logger.Nop()), dir
}

func TestLocalStore_WriteReadRoundTrip(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	doc := models.ConfigDocument(`{"hero":{"title":"Welcome"},"sections":["a","b"]}`)
	require.NoError(t, s.Write(ctx, models.PageHome, doc))

	got, err := s.Read(ctx, models.PageHome)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc), string(got))
}

func TestLocalStore_WriteIsPrettyPrinted(t *testing.T) {
	s, dir := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, models.PageContact, models.ConfigDocument(`{"phone":"555-0100"}`)))

	raw, err := os.ReadFile(filepath.Join(dir, "contact.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"phone\": \"555-0100\"\n}", string(raw))
}

func TestLocalStore_WriteIsIdempotent(t *testing.T) {
	s, dir := newTestLocalStore(t)
	ctx := context.Background()
	doc := models.ConfigDocument(`{"items":[1,2,3]}`)

	require.NoError(t, s.Write(ctx, models.PageProducts, doc))
	first, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, models.PageProducts, doc))
	second, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLocalStore_WriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	s := NewLocalConfigStore(dir, logger.Nop())

	require.NoError(t, s.Write(context.Background(), models.PageHome, models.ConfigDocument(`{}`)))
	assert.FileExists(t, filepath.Join(dir, "home.json"))
}

func TestLocalStore_ReadMissingFile(t *testing.T) {
	s, _ := newTestLocalStore(t)

	_, err := s.Read(context.Background(), models.PageServices)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLocalStore_ReadCorruptFile(t *testing.T) {
	s, dir := newTestLocalStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "services.json"), []byte("{not json"), 0o644))

	_, err := s.Read(context.Background(), models.PageServices)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestLocalStore_WriteInvalidDocument(t *testing.T) {
	s, _ := newTestLocalStore(t)

	err := s.Write(context.Background(), models.PageHome, models.ConfigDocument(`{broken`))
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestLocalStore_WriteFailureSurfacesIOError(t *testing.T) {
	// use a regular file as the target directory so MkdirAll fails
	blocking := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocking, []byte("x"), 0o644))
	s := NewLocalConfigStore(filepath.Join(blocking, "config"), logger.Nop())

	err := s.Write(context.Background(), models.PageHome, models.ConfigDocument(`{}`))
	assert.ErrorIs(t, err, ErrLocalWrite)
}

func TestLocalStore_ScalarDocumentsAllowed(t *testing.T) {
	s, _ := newTestLocalStore(t)
	ctx := context.Background()

	// documents are opaque JSON; scalars and arrays are as valid as objects
	require.NoError(t, s.Write(ctx, models.PageGetStarted, models.ConfigDocument(`"just a string"`)))

	got, err := s.Read(ctx, models.PageGetStarted)
	require.NoError(t, err)
	assert.JSONEq(t, `"just a string"`, string(got))
}
