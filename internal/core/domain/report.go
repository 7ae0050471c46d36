package domain

import "strings"

// CoreCategoryKeys is the closed set of scoring dimensions every valid
// report must carry. Integrating a different scoring backend means
// revisiting this list.
var CoreCategoryKeys = []string{
	"emotional_honesty",
	"storytelling",
	"melodic_complexity",
	"vocal_performance",
	"production_quality",
	"cultural_imprint",
	"replay_value",
	"overall_impact",
}

// CategoryScore is a single rated dimension of a score card.
type CategoryScore struct {
	Score   int    `json:"score" yaml:"score"`
	Comment string `json:"comment" yaml:"comment"` // may be empty
}

// ExpansionEntry is an optional, supplemental scoring dimension.
type ExpansionEntry struct {
	Category string `json:"category" yaml:"category"`
	Score    int    `json:"score" yaml:"score"`
	Comment  string `json:"comment" yaml:"comment"`
}

// Report is a song score card. It is either a fully validated upstream
// payload or the canonical error substitute; nothing in between ever
// reaches a consumer.
type Report struct {
	Error   bool   `json:"error,omitempty" yaml:"error,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	Song    string `json:"song" yaml:"song"`
	Artist  string `json:"artist" yaml:"artist"`
	Runtime string `json:"runtime" yaml:"runtime"`
	Year    string `json:"year" yaml:"year"`
	Genre   string `json:"genre" yaml:"genre"`

	CoreCategories map[string]CategoryScore `json:"core_categories" yaml:"core_categories"`

	// Pointer elements so JSON nulls survive decoding; the orchestrator
	// compacts them away after validation.
	ExpansionCategories []*ExpansionEntry `json:"expansion_categories" yaml:"expansion_categories"`

	FinalScore *float64 `json:"final_score" yaml:"final_score"`
	Summary    string   `json:"summary" yaml:"summary"`
}

// Failed reports whether r is the canonical error substitute rather than
// a validated score card.
func (r Report) Failed() bool {
	return r.Error
}

const canonicalErrorMessage = "Unable to analyze this track right now. Please try again."

// CanonicalError returns the fixed substitute report used whenever the
// pipeline cannot produce a trustworthy score card. A fresh value is
// returned on each call so callers can never share mutable state.
func CanonicalError() Report {
	return Report{
		Error:               true,
		Message:             canonicalErrorMessage,
		CoreCategories:      map[string]CategoryScore{},
		ExpansionCategories: []*ExpansionEntry{},
		FinalScore:          nil,
	}
}

// QueryResult is what one search invocation resolves to: the report to
// render plus the raw decoded payload kept for diagnostic display. Raw is
// nil when the transport itself failed.
type QueryResult struct {
	QueryID string `json:"query_id"`
	Report  Report `json:"report"`
	Raw     any    `json:"raw"`
}

// FindReport searches a collection for an exact song/artist match,
// ignoring case and surrounding whitespace. It returns the first match in
// iteration order; there is no fuzzy matching.
func FindReport(reports []Report, song, artist string) (Report, bool) {
	song = strings.TrimSpace(song)
	artist = strings.TrimSpace(artist)
	for _, r := range reports {
		if strings.EqualFold(strings.TrimSpace(r.Song), song) &&
			strings.EqualFold(strings.TrimSpace(r.Artist), artist) {
			return r, true
		}
	}
	return Report{}, false
}
