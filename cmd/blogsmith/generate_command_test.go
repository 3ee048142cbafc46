package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/generation"
	"github.com/blogsmith/blogsmith-api/internal/mocks"
	"github.com/blogsmith/blogsmith-api/internal/pipeline"
	"github.com/blogsmith/blogsmith-api/internal/retry"
	"github.com/blogsmith/blogsmith-api/internal/service"
	"github.com/blogsmith/blogsmith-api/internal/store"
)

func testComponents(t *testing.T, gen generation.Generator) *components {
	t.Helper()

	policy := retry.DefaultPolicy(generation.IsTransient)
	policy.MaxAttempts = 2
	policy.BaseDelay = time.Microsecond
	policy.MaxDelay = time.Millisecond

	blogStore, err := store.New(filepath.Join(t.TempDir(), "blogs.json"), slog.Default())
	require.NoError(t, err)

	p := pipeline.New(gen, policy, slog.Default())

	return &components{
		config:      &config.Config{},
		logger:      slog.Default(),
		generator:   gen,
		policy:      policy,
		blogStore:   blogStore,
		blogService: service.NewBlogService(p, blogStore, slog.Default()),
	}
}

func testCommand(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd, out
}

func TestRunGenerateStoresBlog(t *testing.T) {
	gen := &mocks.MockGenerator{
		Title:   "The Future of AI",
		Content: "Machine learning keeps accelerating.",
	}
	comps := testComponents(t, gen)
	cmd, out := testCommand("")

	err := runGenerate(cmd, comps, "artificial intelligence", "English")
	require.NoError(t, err)

	assert.Equal(t, 1, comps.blogStore.Count())
	assert.Contains(t, out.String(), "Blog stored")
	assert.Contains(t, out.String(), "The Future of AI")
	assert.True(t, comps.blogStore.HasTitle("The Future of AI"))
}

func TestRunGeneratePromptsForMissingTopic(t *testing.T) {
	gen := &mocks.MockGenerator{Title: "T", Content: "C"}
	comps := testComponents(t, gen)
	cmd, out := testCommand("space exploration\n")

	err := runGenerate(cmd, comps, "", "English")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Please provide a topic")
	blogs := comps.blogStore.List("")
	require.Len(t, blogs, 1)
	assert.Equal(t, "space exploration", blogs[0].Topic)
}

func TestRunGenerateRejectsUnsupportedLanguage(t *testing.T) {
	comps := testComponents(t, &mocks.MockGenerator{Title: "T", Content: "C"})
	cmd, _ := testCommand("")

	err := runGenerate(cmd, comps, "anything", "Klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
	assert.Zero(t, comps.blogStore.Count())
}

func TestRunGenerateSkipUsesFallbackTitle(t *testing.T) {
	gen := &mocks.MockGenerator{
		TitleErr: generation.ErrTransientFailure,
		Content:  "Body text about the topic.",
	}
	comps := testComponents(t, gen)
	cmd, out := testCommand("s\n")

	err := runGenerate(cmd, comps, "quantum computing", "English")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Skipping title generation")
	blogs := comps.blogStore.List("")
	require.Len(t, blogs, 1)
	assert.Equal(t, "Blog about quantum computing", blogs[0].Title)
}

func TestRunGenerateSkipUsesPlaceholderContent(t *testing.T) {
	gen := &mocks.MockGenerator{
		Title:      "A Fine Title",
		ContentErr: generation.ErrTransientFailure,
	}
	comps := testComponents(t, gen)
	cmd, out := testCommand("s\n")

	err := runGenerate(cmd, comps, "quantum computing", "English")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Skipping content generation")
	blogs := comps.blogStore.List("")
	require.Len(t, blogs, 1)
	assert.Equal(t, "Content about quantum computing could not be generated.", blogs[0].Content)
}

func TestRunGenerateCancelStoresNothing(t *testing.T) {
	gen := &mocks.MockGenerator{
		TitleErr: generation.ErrTransientFailure,
	}
	comps := testComponents(t, gen)
	cmd, _ := testCommand("c\n")

	err := runGenerate(cmd, comps, "quantum computing", "English")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled after max retries")
	assert.Zero(t, comps.blogStore.Count())
}

func TestRunGenerateRetryDecisionRerunsBudget(t *testing.T) {
	gen := &mocks.MockGenerator{
		TitleErr: generation.ErrTransientFailure,
	}
	comps := testComponents(t, gen)
	// First decision retries a full budget, second cancels.
	cmd, _ := testCommand("r\nc\n")

	err := runGenerate(cmd, comps, "quantum computing", "English")
	require.Error(t, err)

	// Two budgets of two attempts each.
	assert.Equal(t, 4, gen.TitleCalls)
}

func TestRunGenerateRejectsDuplicateTitle(t *testing.T) {
	gen := &mocks.MockGenerator{
		Title:   "One of a Kind",
		Content: "First version.",
	}
	comps := testComponents(t, gen)

	cmd, _ := testCommand("")
	require.NoError(t, runGenerate(cmd, comps, "originality", "English"))

	cmd, _ = testCommand("")
	err := runGenerate(cmd, comps, "creative writing", "English")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, 1, comps.blogStore.Count())
}

func TestRunGenerateTranslates(t *testing.T) {
	gen := &mocks.MockGenerator{
		Title:             "Healthy Eating",
		Content:           "Eat your greens.",
		TranslatedTitle:   "Alimentación saludable",
		TranslatedContent: "Come tus verduras.",
	}
	comps := testComponents(t, gen)
	cmd, out := testCommand("")

	err := runGenerate(cmd, comps, "nutrition basics", "Spanish")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Translated to Spanish")
	blogs := comps.blogStore.List("")
	require.Len(t, blogs, 1)
	assert.Equal(t, "Alimentación saludable", blogs[0].Title)
	assert.Equal(t, "Spanish", blogs[0].Language)
	assert.Equal(t, 1, gen.TranslateCalls)
}
