package domain

// DefaultLanguage is the language blogs are generated in when no
// translation step runs.
const DefaultLanguage = "English"

// SupportedLanguages is the fixed set of languages a blog can be
// requested in. Requests for any other language are rejected before a
// provider call is made.
var SupportedLanguages = []string{
	"English",
	"Spanish",
	"French",
	"German",
	"Italian",
	"Portuguese",
	"Dutch",
	"Russian",
	"Chinese",
	"Japanese",
}

// IsSupportedLanguage reports whether the given language belongs to the
// supported set. Matching is exact; callers normalize input first.
func IsSupportedLanguage(language string) bool {
	for _, l := range SupportedLanguages {
		if l == language {
			return true
		}
	}
	return false
}
