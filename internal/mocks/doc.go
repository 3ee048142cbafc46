// Package mocks provides shared test doubles for the generation
// boundary, used by pipeline, service, and API tests.
package mocks
