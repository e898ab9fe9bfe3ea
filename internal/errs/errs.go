// Package errs defines the error shapes returned to API clients.
//
// Handlers and the sqlerr package produce *HTTPError values so that every
// failure reaches the client with the same JSON structure.
package errs
