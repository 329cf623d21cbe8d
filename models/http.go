package models

import "encoding/json"

// UpdateConfigRequest is the body of PUT /admin/config.
type UpdateConfigRequest struct {
	// Content is the new configuration document. Required; any valid JSON
	// value is accepted.
	Content json.RawMessage `json:"content"`

	// Commit controls whether the document is committed to the remote
	// repository (true) or only staged on local disk (false, the default).
	Commit bool `json:"commit"`

	// CommitMessage optionally overrides the synthesized commit message
	// used when Commit is true.
	CommitMessage string `json:"commitMessage,omitempty"`

	// File selects the target page key. Defaults to "home" when empty.
	File string `json:"file,omitempty"`
}

// FieldError describes a single invalid or missing field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the 400 response body for a malformed write request.
// Details names each offending field.
type ValidationError struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details"`
}

// Validate checks the request body and resolves the target page key.
// It returns the field-level details of every violation found; the request
// is valid only when the returned slice is empty.
func (r *UpdateConfigRequest) Validate() (PageKey, []FieldError) {
	var details []FieldError

	key := PageHome
	if r.File != "" {
		parsed, err := ParsePageKey(r.File)
		if err != nil {
			details = append(details, FieldError{
				Field:   "file",
				Message: "must be one of: home, services, products, get-started, contact",
			})
		} else {
			key = parsed
		}
	}

	if len(r.Content) == 0 {
		details = append(details, FieldError{
			Field:   "content",
			Message: "content is required",
		})
	} else if !ValidConfigDocument(r.Content) {
		details = append(details, FieldError{
			Field:   "content",
			Message: "content must be valid JSON",
		})
	}

	return key, details
}
