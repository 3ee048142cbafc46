package mocks

import (
	"context"
	"sync"
)

// MockGenerator is a configurable generation.Generator double. Fixed
// outputs are returned unless a per-step error is set; every call is
// counted so tests can assert how many provider round trips a scenario
// costs.
type MockGenerator struct {
	mu sync.Mutex

	Title   string
	Content string

	// TranslatedTitle/TranslatedContent are returned by Translate; when
	// empty, Translate echoes its inputs.
	TranslatedTitle   string
	TranslatedContent string

	TitleErr     error
	ContentErr   error
	TranslateErr error

	TitleCalls     int
	ContentCalls   int
	TranslateCalls int
}

// GenerateTitle implements generation.Generator.
func (m *MockGenerator) GenerateTitle(_ context.Context, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TitleCalls++
	if m.TitleErr != nil {
		return "", m.TitleErr
	}
	return m.Title, nil
}

// GenerateContent implements generation.Generator.
func (m *MockGenerator) GenerateContent(_ context.Context, _, _, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ContentCalls++
	if m.ContentErr != nil {
		return "", m.ContentErr
	}
	return m.Content, nil
}

// Translate implements generation.Generator.
func (m *MockGenerator) Translate(_ context.Context, title, content, _ string) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TranslateCalls++
	if m.TranslateErr != nil {
		return "", "", m.TranslateErr
	}

	translatedTitle := m.TranslatedTitle
	if translatedTitle == "" {
		translatedTitle = title
	}
	translatedContent := m.TranslatedContent
	if translatedContent == "" {
		translatedContent = content
	}
	return translatedTitle, translatedContent, nil
}

// TotalCalls returns the number of provider calls issued across all steps.
func (m *MockGenerator) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.TitleCalls + m.ContentCalls + m.TranslateCalls
}
