package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/oakmount/siteadmin/internal/config"
	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/models"
)

// githubConfigStore persists configuration documents through the GitHub
// repository contents API. Every document lives at a statically configured
// path inside one repository/branch, so committed updates get a version
// history for free.
//
// Writes are guarded by optimistic concurrency: the current blob SHA is
// fetched first and sent along with the new content. If the remote file
// changed in between, GitHub rejects the PUT and the conflict is surfaced
// as [ErrRemoteWrite]; this store performs no retry or merge of its own.
type githubConfigStore struct {
	client *resty.Client
	cfg    config.GitHub
	logger *logger.Logger
}

// contentResponse is the subset of the contents-API GET response this store
// consumes: the base64-encoded file body and its revision marker.
type contentResponse struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// putContentRequest is the contents-API PUT body. SHA is omitted for files
// that do not exist yet; for existing files it must match the current blob
// or the write is rejected.
type putContentRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// NewGitHubConfigStore constructs a [RemoteConfigStore] talking to the
// contents API described by cfg.
//
// No client-side timeout is set: commit flows run to completion or failure
// on the transport's defaults, and a client disconnect does not abort them.
func NewGitHubConfigStore(cfg config.GitHub, logger *logger.Logger) RemoteConfigStore {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/vnd.github+json")

	return &githubConfigStore{
		client: cli,
		cfg:    cfg,
		logger: logger,
	}
}

// Read fetches the document for key from the configured branch and decodes
// the base64 content field.
//
// Returns [ErrRemoteUnavailable] when the repository identity is incomplete,
// [ErrRemoteRead] on a non-success status, and [ErrConfigParse] when the
// decoded payload is not valid JSON.
func (s *githubConfigStore) Read(ctx context.Context, key models.PageKey) (models.ConfigDocument, error) {
	if !s.cfg.Configured() {
		return nil, ErrRemoteUnavailable
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("ref", s.cfg.Branch).
		Get(s.contentsURL(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRemoteRead, key, err)
	}
	if !resp.IsSuccess() {
		return nil, remoteStatusError(ErrRemoteRead, resp)
	}

	var content contentResponse
	if err = json.Unmarshal(resp.Body(), &content); err != nil {
		return nil, fmt.Errorf("%w: decoding contents response for %s: %w", ErrRemoteRead, key, err)
	}

	doc, err := decodeContent(content.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, key, err)
	}

	return doc, nil
}

// Write commits doc for key to the configured branch.
//
// The current revision marker is discovered with a GET first; a not-found
// response is tolerated and means the file is created by the PUT. Any other
// read failure, and any non-success PUT, fails the write with the remote's
// status and body attached.
func (s *githubConfigStore) Write(ctx context.Context, key models.PageKey, doc models.ConfigDocument, message string) error {
	if !s.cfg.Configured() {
		return ErrRemoteUnavailable
	}

	pretty, err := models.IndentConfigDocument(doc)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigParse, key, err)
	}

	sha, err := s.currentSHA(ctx, key)
	if err != nil {
		return err
	}

	if message == "" {
		message = fmt.Sprintf("Update %s page config", key)
	}

	body := putContentRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(pretty),
		Branch:  s.cfg.Branch,
		SHA:     sha,
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(s.contentsURL(key))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRemoteWrite, key, err)
	}
	if !resp.IsSuccess() {
		return remoteStatusError(ErrRemoteWrite, resp)
	}

	s.logger.Info().
		Str("page", key.String()).
		Str("branch", s.cfg.Branch).
		Str("path", s.cfg.PathFor(key)).
		Msg("config committed to remote repository")

	return nil
}

// currentSHA returns the revision marker of the stored file, or an empty
// string when the file does not exist remotely yet.
func (s *githubConfigStore) currentSHA(ctx context.Context, key models.PageKey) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("ref", s.cfg.Branch).
		Get(s.contentsURL(key))
	if err != nil {
		return "", fmt.Errorf("%w: fetching revision of %s: %w", ErrRemoteWrite, key, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return "", nil
	}
	if !resp.IsSuccess() {
		return "", remoteStatusError(ErrRemoteWrite, resp)
	}

	var content contentResponse
	if err = json.Unmarshal(resp.Body(), &content); err != nil {
		return "", fmt.Errorf("%w: decoding revision of %s: %w", ErrRemoteWrite, key, err)
	}

	return content.SHA, nil
}

func (s *githubConfigStore) contentsURL(key models.PageKey) string {
	return fmt.Sprintf("/repos/%s/%s/contents/%s", s.cfg.Owner, s.cfg.Repo, s.cfg.PathFor(key))
}

// decodeContent unwraps the base64 payload of a contents-API response.
// GitHub inserts newlines into the encoded body, so they are stripped first.
func decodeContent(encoded string) (models.ConfigDocument, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\n", ""))
	if err != nil {
		return nil, err
	}
	if !models.ValidConfigDocument(raw) {
		return nil, fmt.Errorf("decoded content is not valid JSON")
	}
	return models.ConfigDocument(raw), nil
}

// remoteStatusError attaches the remote's status code and response body to
// kind for diagnostics. The body is passed through verbatim: this is an
// internal admin tool and the operator needs to see what the API said.
func remoteStatusError(kind error, resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", kind, resp.StatusCode(), body)
}
