package wikisect

import "context"

// Fetcher retrieves raw page markup from URLs.
type Fetcher interface {
	// Fetch returns the page body decoded as UTF-8.
	// Failures carry one of EINVALID, ENETWORK, ETIMEOUT, or EMALFORMED.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
