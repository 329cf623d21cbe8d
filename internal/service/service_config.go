package service

import (
	"context"

	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/internal/store"
	"github.com/oakmount/siteadmin/models"
)

type configService struct {
	local  store.ConfigStore
	remote store.RemoteConfigStore

	logger *logger.Logger
}

// NewConfigService wires the read/write orchestration over both stores.
// remote may be nil for disk-only deployments; reads then have no fallback
// and commits are rejected.
func NewConfigService(storages *store.Storages, logger *logger.Logger) ConfigService {
	return &configService{
		local:  storages.Local,
		remote: storages.Remote,
		logger: logger,
	}
}

// Read returns the document for key. Local disk is authoritative; any local
// failure falls back to the remote repository when one is configured (cold
// cache, fresh deployment), otherwise the local failure is surfaced.
func (s *configService) Read(ctx context.Context, key models.PageKey) (models.ConfigDocument, error) {
	if _, err := models.ParsePageKey(key.String()); err != nil {
		return nil, ErrInvalidConfigKey
	}

	doc, localErr := s.local.Read(ctx, key)
	if localErr == nil {
		return doc, nil
	}

	if s.remote == nil {
		return nil, localErr
	}

	logger.FromContext(ctx).Debug().
		Err(localErr).
		Str("page", key.String()).
		Msg("local config read failed, falling back to remote")

	return s.remote.Read(ctx, key)
}

// Write persists doc for key.
//
// commit=true: the remote commit happens first and decides the operation's
// outcome. On success the local copy is refreshed best-effort; a local
// failure at that point is logged and swallowed since the durable store
// already holds the new document. On remote failure no local write is
// attempted, so the local store keeps its pre-request state.
//
// commit=false: only local disk is written and any failure is surfaced.
func (s *configService) Write(ctx context.Context, key models.PageKey, doc models.ConfigDocument, commit bool, message string) (bool, error) {
	if _, err := models.ParsePageKey(key.String()); err != nil {
		return false, ErrInvalidConfigKey
	}
	if !models.ValidConfigDocument(doc) {
		return false, ErrInvalidDocument
	}

	if !commit {
		return false, s.local.Write(ctx, key, doc)
	}

	if s.remote == nil {
		return false, ErrCommitNotConfigured
	}

	if err := s.remote.Write(ctx, key, doc, message); err != nil {
		return false, err
	}

	if err := s.local.Write(ctx, key, doc); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("page", key.String()).
			Msg("local cache refresh failed after successful commit")
	}

	return true, nil
}
