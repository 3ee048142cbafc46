package domain

import (
	"fmt"
	"strings"
)

// Category classifies a blog post into one of a fixed set of
// tech and wellness buckets.
type Category string

// Possible blog categories
const (
	CategoryTechnology      Category = "Technology"
	CategoryAI              Category = "Artificial Intelligence"
	CategoryMachineLearning Category = "Machine Learning"
	CategoryDataScience     Category = "Data Science"
	CategorySoftwareDev     Category = "Software Development"
	CategoryHealthWellness  Category = "Health & Wellness"
	CategoryFitness         Category = "Fitness"
	CategoryNutrition       Category = "Nutrition"
	CategoryMentalHealth    Category = "Mental Health"
)

// Categories lists every assignable category, in display order.
var Categories = []Category{
	CategoryTechnology,
	CategoryAI,
	CategoryMachineLearning,
	CategoryDataScience,
	CategorySoftwareDev,
	CategoryHealthWellness,
	CategoryFitness,
	CategoryNutrition,
	CategoryMentalHealth,
}

// categoryKeywords maps categories to the keywords that select them.
// Order matters: the first matching category wins, so the specific
// buckets are checked before the broad wellness bucket.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryAI, []string{"ai", "artificial intelligence", "machine learning", "ml"}},
	{CategoryDataScience, []string{"data science", "data analysis", "analytics"}},
	{CategorySoftwareDev, []string{"software", "programming", "coding", "development"}},
	{CategoryFitness, []string{"fitness", "exercise", "workout", "training"}},
	{CategoryNutrition, []string{"nutrition", "diet", "food", "eating"}},
	{CategoryMentalHealth, []string{"mental health", "therapy", "meditation", "mindfulness"}},
	{CategoryHealthWellness, []string{"health", "wellness", "medical", "healthcare"}},
}

// ClassifyCategory derives a category from the blog's topic and content
// by keyword matching. It is a pure function with an exhaustive fallback
// to CategoryTechnology, independent of storage and transport.
func ClassifyCategory(topic, content string) Category {
	text := strings.ToLower(topic + " " + content)

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.category
			}
		}
	}

	return CategoryTechnology
}

// ParseCategory resolves a category name supplied by a caller, matching
// case-insensitively against the assignable set.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, name)
}

// isValidCategory checks if the given category is one of the assignable set.
func isValidCategory(category Category) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
