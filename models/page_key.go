package models

import "errors"

// PageKey identifies one of the site pages whose configuration document
// this service manages. The set of valid keys is closed: documents are
// addressed only by these five values, and any other input is rejected
// before storage is touched.
type PageKey string

const (
	// PageHome is the landing page configuration.
	PageHome PageKey = "home"

	// PageServices is the services page configuration.
	PageServices PageKey = "services"

	// PageProducts is the products page configuration.
	PageProducts PageKey = "products"

	// PageGetStarted is the onboarding page configuration.
	PageGetStarted PageKey = "get-started"

	// PageContact is the contact page configuration.
	PageContact PageKey = "contact"
)

// ErrUnknownPageKey is returned when a supplied key is not one of the five
// managed page keys.
var ErrUnknownPageKey = errors.New("unknown page key")

// PageKeys returns the full ordered set of managed page keys.
func PageKeys() []PageKey {
	return []PageKey{PageHome, PageServices, PageProducts, PageGetStarted, PageContact}
}

// ParsePageKey validates s against the closed key set and returns the
// corresponding PageKey, or [ErrUnknownPageKey] for any other value.
func ParsePageKey(s string) (PageKey, error) {
	switch key := PageKey(s); key {
	case PageHome, PageServices, PageProducts, PageGetStarted, PageContact:
		return key, nil
	default:
		return "", ErrUnknownPageKey
	}
}

// String returns the key as it appears in URLs and file names.
func (k PageKey) String() string {
	return string(k)
}
