package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/generation"
	"github.com/blogsmith/blogsmith-api/internal/retry"
)

// Validation errors returned before any provider call is made.
var (
	ErrBlankTopic          = errors.New("topic cannot be blank")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Request describes one blog-generation request.
type Request struct {
	Topic    string
	Language string
}

// Validate checks the request shape. It runs before the first provider
// call so invalid requests never cost an LLM round trip.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return ErrBlankTopic
	}
	if !domain.IsSupportedLanguage(r.Language) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, r.Language)
	}
	return nil
}

// Draft is the pipeline's product: a generated title and body for the
// requested topic, with the category not yet assigned.
type Draft struct {
	Title    string
	Content  string
	Topic    string
	Language string
}

// state is the per-invocation pipeline state. One instance exists per
// in-flight request and is never shared across concurrent runs.
type state struct {
	topic    string
	language string
	title    string
	content  string
}

// Pipeline drives the ordered generation steps against a Generator.
type Pipeline struct {
	generator generation.Generator
	policy    retry.Policy
	logger    *slog.Logger
}

// New creates a Pipeline. The retry policy is applied to each step
// individually.
func New(generator generation.Generator, policy retry.Policy, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		generator: generator,
		policy:    policy,
		logger:    logger,
	}
}

// Run executes the pipeline for one request. Steps run strictly in
// order: a title failure short-circuits the run before content
// generation, and translation only happens for non-default languages —
// it is skipped entirely, not invoked as a no-op.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Draft, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	st := &state{
		topic:    strings.TrimSpace(req.Topic),
		language: req.Language,
	}

	if err := p.createTitle(ctx, st); err != nil {
		return nil, fmt.Errorf("title creation: %w", err)
	}

	if err := p.generateContent(ctx, st); err != nil {
		return nil, fmt.Errorf("content generation: %w", err)
	}

	if st.language != domain.DefaultLanguage {
		if err := p.translate(ctx, st); err != nil {
			return nil, fmt.Errorf("translation to %s: %w", st.language, err)
		}
	}

	return &Draft{
		Title:    domain.CleanTitle(st.title),
		Content:  domain.CleanContent(st.content),
		Topic:    st.topic,
		Language: st.language,
	}, nil
}

func (p *Pipeline) createTitle(ctx context.Context, st *state) error {
	title, err := retry.Do(ctx, p.policy, func(ctx context.Context) (string, error) {
		return p.generator.GenerateTitle(ctx, st.topic)
	})
	if err != nil {
		return err
	}

	st.title = title
	p.logger.InfoContext(ctx, "title created", "topic", st.topic)
	return nil
}

func (p *Pipeline) generateContent(ctx context.Context, st *state) error {
	content, err := retry.Do(ctx, p.policy, func(ctx context.Context) (string, error) {
		return p.generator.GenerateContent(ctx, st.topic, st.title, st.language)
	})
	if err != nil {
		return err
	}

	st.content = content
	p.logger.InfoContext(ctx, "content generated",
		"topic", st.topic,
		"content_length", len(content))
	return nil
}

func (p *Pipeline) translate(ctx context.Context, st *state) error {
	type translated struct {
		title   string
		content string
	}

	result, err := retry.Do(ctx, p.policy, func(ctx context.Context) (translated, error) {
		title, content, err := p.generator.Translate(ctx, st.title, st.content, st.language)
		if err != nil {
			return translated{}, err
		}
		return translated{title: title, content: content}, nil
	})
	if err != nil {
		return err
	}

	st.title = result.title
	st.content = result.content
	p.logger.InfoContext(ctx, "content translated", "language", st.language)
	return nil
}
