// Package account translates typed account queries into HTTP request URLs
// and maps the JSON responses back into a unified Account entity.
//
// The package is the request processor for the account resource family:
//
//  1. ParamExtractor reads recognized field/value pairs out of a query
//     predicate (internal/query).
//  2. ParseQueryType resolves the mandatory Type parameter to a QueryType.
//  3. BuildURL compiles the QueryType into an absolute request URL.
//  4. ProcessResults (queries) or ProcessActionResult (side-effecting
//     actions) maps the response body into an Account.
//
// Every stage is a pure computation over its inputs: no network I/O, no
// shared mutable state, no retries. The transport that actually executes
// the HTTP call is a collaborator behind the Transport interface, and
// Client composes the stages for callers who want a single entry point.
package account
