// Package recorder provides a durable trace log of account API calls and
// deterministic replay of recorded responses.
//
// Each record captures what the processor decided (the resolved query type
// and the built URL) and what the wire returned (the raw response JSON),
// with a monotonic per-trace sequence. Replay re-runs the recorded
// responses through the response mapper in sequence order, which makes a
// captured session reproducible offline.
//
// This is debugging and conformance tooling, not a response cache: records
// are never consulted to answer live queries.
package recorder
