package models

import (
	"bytes"
	"encoding/json"
)

// ConfigDocument is the JSON value associated with one page key. The service
// treats it as opaque: any valid JSON (object, array, or scalar) is accepted
// and stored as-is. No schema is enforced beyond well-formedness.
type ConfigDocument = json.RawMessage

// ValidConfigDocument reports whether doc holds non-empty, well-formed JSON.
func ValidConfigDocument(doc ConfigDocument) bool {
	return len(doc) > 0 && json.Valid(doc)
}

// IndentConfigDocument re-serializes doc as pretty-printed JSON with
// two-space indentation. This is the canonical on-disk and in-repository
// representation, so repeated writes of the same document are byte-identical.
func IndentConfigDocument(doc ConfigDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
