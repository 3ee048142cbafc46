// Package groq implements the generation.Generator interface against the
// Groq chat-completions API. Groq exposes an OpenAI-compatible surface, so
// the client is the openai-go SDK pointed at the Groq base URL.
package groq
