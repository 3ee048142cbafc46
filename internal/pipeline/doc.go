// Package pipeline implements the fixed blog-generation sequence: title
// creation, content generation, and an optional translation step. Each
// step is individually wrapped by the retry coordinator; the pipeline
// never retries across step boundaries and never assigns a category —
// that happens in the service layer after the pipeline returns.
package pipeline
