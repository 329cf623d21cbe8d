package store

import (
	"github.com/oakmount/siteadmin/internal/config"
	"github.com/oakmount/siteadmin/internal/logger"
)

// Storages bundles both configuration-document backends. Remote is nil when
// the deployment carries no repository identity; the service layer checks
// for that before falling back to or committing through it.
type Storages struct {
	Local  ConfigStore
	Remote RemoteConfigStore
}

// NewStorages wires the store layer from configuration.
func NewStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	storages := &Storages{
		Local: NewLocalConfigStore(cfg.Local.Dir, logger),
	}

	if cfg.GitHub.Configured() {
		storages.Remote = NewGitHubConfigStore(cfg.GitHub, logger)
	}

	return storages
}
