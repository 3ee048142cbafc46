// Package generation provides interfaces and error types for interacting
// with external AI/LLM services for blog content generation. It abstracts
// the details of LLM API integration (Groq), allowing the pipeline to
// produce titles, bodies, and translations without coupling to a specific
// provider.
package generation
