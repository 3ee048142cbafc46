// Package service holds the application services that sit between the
// HTTP/CLI boundaries and the generation pipeline and store. BlogService
// owns the generate-then-persist flow and the CRUD passthroughs; it is
// the only place where a pipeline draft becomes a stored blog record.
package service
