// Package retry provides a bounded-retry wrapper with exponential backoff
// for operations against the LLM provider. The coordinator's job ends at
// signaling exhaustion; deciding what to do about it (fail the request,
// ask the operator) belongs to the boundary adapters.
package retry
