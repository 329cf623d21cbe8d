package store

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

import (
	"context"

	"github.com/oakmount/siteadmin/models"
)

// ConfigStore reads and writes configuration documents addressed by page key.
// The local-disk store implements exactly this contract.
type ConfigStore interface {
	// Read loads and parses the document stored for key.
	Read(ctx context.Context, key models.PageKey) (models.ConfigDocument, error)

	// Write overwrites the document stored for key. The document is
	// persisted pretty-printed; the containing location is created on
	// first write.
	Write(ctx context.Context, key models.PageKey, doc models.ConfigDocument) error
}

// RemoteConfigStore is the repository-backed store. It extends the read
// contract with a commit-style write that carries a human-readable message
// and performs an optimistic-concurrency overwrite: the current revision is
// fetched first and sent along with the new content, so a concurrent change
// on the remote side rejects the write.
type RemoteConfigStore interface {
	// Read fetches and parses the document stored for key on the
	// configured branch.
	Read(ctx context.Context, key models.PageKey) (models.ConfigDocument, error)

	// Write commits doc for key. An empty message is replaced by one
	// synthesized from the page key.
	Write(ctx context.Context, key models.PageKey, doc models.ConfigDocument, message string) error
}
