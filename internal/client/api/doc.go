// Package api contains client-side building blocks for the useradm CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the user-management backend: Login plus user collection CRUD.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches
//     the bearer token passed per call, tags every request with an
//     X-Request-Id, and maps HTTP statuses to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     for the CLI, wiring an SQLite database and applying embedded goose
//     migrations for the session token store.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrMissingAccessToken.
// Non-2xx responses carry their status in *RequestError.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
