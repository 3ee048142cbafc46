package groq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/generation"
)

// Generator implements the generation.Generator interface using the Groq
// chat-completions API. It holds no mutable state across calls.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the OpenAI-compatible API client pointed at Groq
	client openai.Client

	// model is the name of the Groq model to use
	model string
}

// NewGenerator creates a new Generator with the provided dependencies.
// A missing credential or model name is a configuration error: the
// service must refuse to start rather than fail per request.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("%w: groq API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", generation.ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.GroqAPIKey),
		option.WithBaseURL(cfg.BaseURL),
	}

	return &Generator{
		logger: logger,
		config: cfg,
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// GenerateTitle creates a title for a blog post about the given topic.
func (g *Generator) GenerateTitle(ctx context.Context, topic string) (string, error) {
	title, err := g.complete(ctx, titlePrompt(topic))
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "title generated",
		"topic", topic,
		"title_length", len(title))
	return title, nil
}

// GenerateContent creates the markdown body for a blog post.
func (g *Generator) GenerateContent(ctx context.Context, topic, title, language string) (string, error) {
	content, err := g.complete(ctx, contentPrompt(topic, title, language))
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "content generated",
		"topic", topic,
		"language", language,
		"content_length", len(content))
	return content, nil
}

// Translate renders title and content into the target language. Both
// completions happen inside one pipeline step, so a failure on either
// fails the step as a whole.
func (g *Generator) Translate(ctx context.Context, title, content, language string) (string, string, error) {
	translatedTitle, err := g.complete(ctx, translatePrompt(title, language))
	if err != nil {
		return "", "", fmt.Errorf("translate title: %w", err)
	}

	translatedContent, err := g.complete(ctx, translatePrompt(content, language))
	if err != nil {
		return "", "", fmt.Errorf("translate content: %w", err)
	}

	g.logger.DebugContext(ctx, "content translated", "language", language)
	return translatedTitle, translatedContent, nil
}

// complete issues a single chat completion with the configured model and
// per-call timeout, returning the trimmed message text.
func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.config.Timeout())
	defer cancel()

	resp, err := g.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(g.config.Temperature),
		MaxTokens:   openai.Int(int64(g.config.MaxTokens)),
	})
	if err != nil {
		return "", classifyProviderError(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in completion", generation.ErrInvalidResponse)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", generation.ErrInvalidResponse)
	}

	return text, nil
}
