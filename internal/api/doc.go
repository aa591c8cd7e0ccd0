// Package api provides HTTP client functionality for communicating with the
// NewsAPI service. It handles authentication, query serialization, response
// decoding, and automatic retry of transient failures.
//
// # Retry Behavior
//
// Failed requests are retried according to a [RetryConfig]. Only transport
// errors and responses whose status code satisfies [RetryConfig.RetryableOn]
// are retried; by default that is 500, 502, 503 and 504. Client errors such
// as an invalid API key or a malformed query are terminal and surface
// immediately without consuming a retry.
//
// The delay before each retry is computed by the configured [Strategy]:
//
//   - [StrategyNone]: never retry.
//   - [StrategyConstant]: wait the base delay before every retry.
//   - [StrategyLinear]: wait base, 2*base, 3*base, ...
//   - [StrategyExponential]: wait base, 2*base, 4*base, ...
//
// Waits are cancellable through the request context.
//
// # Error Handling
//
// Upstream logical failures decode into [*APIError] carrying the remote
// error code and message. Transport failures wrap into [*NetworkError], and
// malformed response bodies into [*DecodeError]. All three are converted to
// their public counterparts at the package boundary.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
