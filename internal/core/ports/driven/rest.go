package driven

import (
	"context"
	"net/url"
)

// RESTClient is HTTP access to one remote API. An implementation is
// constructed with that API's credentials, base URL and extra headers,
// all immutable after construction; the same client is shared by every
// call a service makes.
//
// All methods decode the JSON response body into out when out is
// non-nil. Non-2xx responses yield *domain.RemoteError; network and
// parse failures yield errors wrapping domain.ErrTransport.
type RESTClient interface {
	// Get issues a GET to endpoint with the given query parameters.
	Get(ctx context.Context, endpoint string, query url.Values, out any) error

	// Post issues a POST to endpoint with a URL-encoded form body.
	// A nil form sends an empty body.
	Post(ctx context.Context, endpoint string, form url.Values, out any) error

	// Patch issues a PATCH to endpoint with a URL-encoded form body.
	Patch(ctx context.Context, endpoint string, form url.Values, out any) error

	// Delete issues a DELETE to endpoint.
	Delete(ctx context.Context, endpoint string, out any) error
}
