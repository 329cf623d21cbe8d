package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/models"
)

// localConfigStore persists one pretty-printed JSON file per page key, flat
// in a configured directory. It is the fast path for reads and the staging
// area for uncommitted edits.
//
// No cross-process locking is performed; concurrent writes to the same key
// are last-write-wins, relying on the atomicity of a single WriteFile call.
type localConfigStore struct {
	dir    string
	logger *logger.Logger
}

// NewLocalConfigStore constructs a [ConfigStore] backed by dir. The
// directory is created lazily on first write.
func NewLocalConfigStore(dir string, logger *logger.Logger) ConfigStore {
	return &localConfigStore{
		dir:    dir,
		logger: logger,
	}
}

// Read loads <dir>/<key>.json and validates that it holds well-formed JSON.
// Returns [ErrConfigNotFound] when the file is absent and [ErrConfigParse]
// when its content is not valid JSON.
func (s *localConfigStore) Read(ctx context.Context, key models.PageKey) (models.ConfigDocument, error) {
	path := s.filePath(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	if !models.ValidConfigDocument(data) {
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, path)
	}

	return models.ConfigDocument(data), nil
}

// Write serializes doc pretty-printed and overwrites <dir>/<key>.json,
// creating the directory if needed. Failures are wrapped in [ErrLocalWrite].
func (s *localConfigStore) Write(ctx context.Context, key models.PageKey, doc models.ConfigDocument) error {
	pretty, err := models.IndentConfigDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigParse, key, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %w", ErrLocalWrite, s.dir, err)
	}

	path := s.filePath(key)
	if err := os.WriteFile(path, pretty, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLocalWrite, path, err)
	}

	s.logger.Debug().Str("path", path).Str("page", key.String()).Msg("local config written")

	return nil
}

func (s *localConfigStore) filePath(key models.PageKey) string {
	return filepath.Join(s.dir, key.String()+".json")
}
