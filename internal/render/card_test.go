package render

import (
	"strings"
	"testing"

	"github.com/dabeerhasan15/sounds/internal/core/domain"
)

func TestCard(t *testing.T) {
	final := 8.5
	report := domain.Report{
		Song:    "Blinding Lights",
		Artist:  "The Weeknd",
		Runtime: "3:20",
		Year:    "2019",
		Genre:   "Synthwave",
		CoreCategories: map[string]domain.CategoryScore{
			"emotional_honesty":  {Score: 7, Comment: "Longing under the gloss."},
			"storytelling":       {Score: 6},
			"melodic_complexity": {Score: 7},
			"vocal_performance":  {Score: 8},
			"production_quality": {Score: 9},
			"cultural_imprint":   {Score: 10},
			"replay_value":       {Score: 9},
			"overall_impact":     {Score: 9},
		},
		ExpansionCategories: []*domain.ExpansionEntry{
			{Category: "danceability", Score: 9, Comment: "Irresistible."},
		},
		FinalScore: &final,
		Summary:    "A towering synth-pop single.",
	}

	out := Card(report)

	for _, want := range []string{
		"Blinding Lights — The Weeknd",
		"Synthwave · 2019 · 3:20",
		"Emotional Honesty",
		"Longing under the gloss.",
		"danceability",
		"Final score: 8.5/10",
		"A towering synth-pop single.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("card missing %q:\n%s", want, out)
		}
	}
}

func TestCard_CanonicalError(t *testing.T) {
	out := Card(domain.CanonicalError())

	if !strings.Contains(out, domain.CanonicalError().Message) {
		t.Fatalf("error card must show the fixed message:\n%s", out)
	}
	if strings.Contains(out, "Final score") {
		t.Fatalf("error card must not render score sections:\n%s", out)
	}
}

func TestScoreBar(t *testing.T) {
	if got := scoreBar(10); got != "[██████████]" {
		t.Fatalf("full bar wrong: %q", got)
	}
	if got := scoreBar(0); got != "[░░░░░░░░░░]" {
		t.Fatalf("empty bar wrong: %q", got)
	}
}
