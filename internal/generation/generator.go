package generation

import "context"

// Generator defines the interface for the LLM-backed generation steps.
// This interface serves as a boundary between the content pipeline and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateTitle creates a short, SEO-friendly title for a blog post
	// about the given topic. Returns the title text or an error (see
	// errors.go for the transient/permanent taxonomy).
	GenerateTitle(ctx context.Context, topic string) (string, error)

	// GenerateContent creates the markdown body of a blog post about the
	// given topic under the produced title, written in the given language.
	GenerateContent(ctx context.Context, topic, title, language string) (string, error)

	// Translate renders the title and content into the target language,
	// preserving tone and markdown structure. Returns the translated
	// title and content.
	Translate(ctx context.Context, title, content, language string) (string, string, error)
}
