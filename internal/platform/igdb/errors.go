package igdb

import (
	"fmt"

	"gamelib/internal/catalog"
)

// ErrAuthExpired reports that the upstream rejected the bearer token. The
// client has already invalidated the cached credential; a repeated call
// picks up a fresh one. The client itself never retries.
var ErrAuthExpired = fmt.Errorf("igdb: upstream rejected bearer token: %w", catalog.ErrUnavailable)

// CredentialError reports a failed token exchange with the credential
// endpoint.
type CredentialError struct {
	Cause error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("igdb: token exchange failed: %v", e.Cause)
}

func (e *CredentialError) Unwrap() []error {
	return []error{e.Cause, catalog.ErrUnavailable}
}

// UpstreamError reports a non-success status from the catalog endpoint.
type UpstreamError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("igdb: %s returned status %d: %s", e.Endpoint, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return catalog.ErrUnavailable }

// DecodeError reports a success response whose body did not match the
// expected shape. The raw body is kept intact for diagnosis; Error shows at
// most errBodyLimit bytes of it.
type DecodeError struct {
	Cause   error
	RawBody []byte
}

const errBodyLimit = 512

func (e *DecodeError) Error() string {
	body := string(e.RawBody)
	if len(body) > errBodyLimit {
		body = body[:errBodyLimit] + "... (truncated)"
	}
	return fmt.Sprintf("igdb: decoding response: %v (body: %s)", e.Cause, body)
}

func (e *DecodeError) Unwrap() []error {
	return []error{e.Cause, catalog.ErrUnavailable}
}
