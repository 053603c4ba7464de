package walrus

import "errors"

var (
	// ErrNoEndpoints indicates the client was configured without any
	// aggregator or publisher endpoint for the attempted operation.
	ErrNoEndpoints = errors.New("walrus: no endpoints configured")

	// ErrInvalidEndpoint indicates an endpoint URL could not be parsed or
	// uses an unsupported scheme.
	ErrInvalidEndpoint = errors.New("walrus: invalid endpoint URL")

	// ErrBlobNotFound indicates no aggregator holds a blob with the given ID.
	ErrBlobNotFound = errors.New("walrus: blob not found")

	// ErrAllEndpointsFailed indicates every retry attempt against the
	// endpoint pool failed. The last attempt's error is wrapped.
	ErrAllEndpointsFailed = errors.New("walrus: all endpoints failed")

	// ErrUnexpectedResponse indicates the server replied with a status or
	// body the client does not understand. Not retried.
	ErrUnexpectedResponse = errors.New("walrus: unexpected response")
)
