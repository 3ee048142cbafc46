package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/retry"
)

// errStepSkipped signals that the user chose to skip a generation step
// after the automatic retry budget ran out. Callers substitute a
// placeholder instead of failing the whole run.
var errStepSkipped = errors.New("step skipped")

func newGenerateCommand(cmdCtx *commandContext) *cobra.Command {
	var topic string
	var language string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a blog post and store it",
		Long: `Generate runs the title, content, and optional translation steps
against the configured Groq model. When a step keeps failing past the
retry budget you choose whether to retry again, skip the step with a
placeholder, or cancel the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := cmdCtx.ensureComponents()
			if err != nil {
				return err
			}
			return runGenerate(cmd, comps, topic, language)
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "Blog topic (prompted for when omitted)")
	cmd.Flags().StringVarP(&language, "language", "l", domain.DefaultLanguage, "Target language for the blog")

	return cmd
}

func runGenerate(cmd *cobra.Command, comps *components, topic, language string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	topic = strings.TrimSpace(topic)
	if topic == "" {
		var err error
		topic, err = promptLine(in, out, "Please provide a topic for the blog: ")
		if err != nil {
			return fmt.Errorf("topic input: %w", err)
		}
		if topic == "" {
			return errors.New("topic cannot be blank")
		}
	}

	if language == "" {
		language = domain.DefaultLanguage
	}
	if !domain.IsSupportedLanguage(language) {
		return fmt.Errorf("unsupported language %q (supported: %s)",
			language, strings.Join(domain.SupportedLanguages, ", "))
	}

	title, err := runStep(ctx, comps, in, out, "title generation", func(ctx context.Context) (string, error) {
		return comps.generator.GenerateTitle(ctx, topic)
	})
	switch {
	case errors.Is(err, errStepSkipped):
		title = fmt.Sprintf("Blog about %s", topic)
		fmt.Fprintln(out, "Skipping title generation")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "Title generated: %s\n", domain.CleanTitle(title))
	}

	content, err := runStep(ctx, comps, in, out, "content generation", func(ctx context.Context) (string, error) {
		return comps.generator.GenerateContent(ctx, topic, title, language)
	})
	switch {
	case errors.Is(err, errStepSkipped):
		content = fmt.Sprintf("Content about %s could not be generated.", topic)
		fmt.Fprintln(out, "Skipping content generation")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "Content generated (%d characters)\n", len(content))
	}

	if language != domain.DefaultLanguage {
		type translated struct {
			title   string
			content string
		}
		result, err := runStep(ctx, comps, in, out, fmt.Sprintf("translation to %s", language),
			func(ctx context.Context) (translated, error) {
				t, c, err := comps.generator.Translate(ctx, title, content, language)
				if err != nil {
					return translated{}, err
				}
				return translated{title: t, content: c}, nil
			})
		switch {
		case errors.Is(err, errStepSkipped):
			content = fmt.Sprintf("Translation to %s could not be completed.", language)
			fmt.Fprintf(out, "Skipping translation to %s\n", language)
		case err != nil:
			return err
		default:
			title = result.title
			content = result.content
			fmt.Fprintf(out, "Translated to %s\n", language)
		}
	}

	blog, err := domain.NewBlog(title, content, topic, language)
	if err != nil {
		return fmt.Errorf("building blog: %w", err)
	}

	if comps.blogStore.HasTitle(blog.Title) {
		return fmt.Errorf("a blog titled %q already exists", blog.Title)
	}

	if _, err := comps.blogStore.Create(blog); err != nil {
		return fmt.Errorf("storing blog: %w", err)
	}

	fmt.Fprintf(out, "\nBlog stored\n")
	fmt.Fprintf(out, "  ID:       %s\n", blog.ID)
	fmt.Fprintf(out, "  Title:    %s\n", blog.Title)
	fmt.Fprintf(out, "  Category: %s\n", blog.Category)
	fmt.Fprintf(out, "  Language: %s\n", blog.Language)
	return nil
}

// runStep executes one generation step under the retry policy. When the
// budget is exhausted the user decides: retry the whole budget again,
// skip the step (errStepSkipped), or cancel the run.
func runStep[T any](
	ctx context.Context,
	comps *components,
	in *bufio.Reader,
	out io.Writer,
	name string,
	op func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	for {
		result, err := retry.Do(ctx, comps.policy, op)
		if err == nil {
			return result, nil
		}

		fmt.Fprintf(out, "LLM error in %s: %v\n", name, err)
		fmt.Fprintf(out, "Maximum retries (%d) reached for %s\n", comps.policy.MaxAttempts, name)

		decision, promptErr := promptLine(in, out, "Options: (r)etry, (s)kip this step, (c)ancel: ")
		if promptErr != nil {
			return zero, fmt.Errorf("%s cancelled: %w", name, promptErr)
		}

		switch strings.ToLower(decision) {
		case "r":
			continue
		case "s":
			return zero, errStepSkipped
		default:
			return zero, fmt.Errorf("%s cancelled after max retries", name)
		}
	}
}

// promptLine writes the prompt and reads one trimmed line from the input.
func promptLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", errors.New("no input provided")
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
