// Package render formats score cards as plain text for the CLI front end.
// All presentation choices (badges, thresholds, layout) live here and
// nowhere else; the core hands over a finished report and nothing more.
package render

import (
	"fmt"
	"strings"

	"github.com/dabeerhasan15/sounds/internal/core/domain"
)

// Printed in place of raw key names like "emotional_honesty".
func categoryLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func scoreBadge(score int) string {
	switch {
	case score <= 3:
		return "🔴"
	case score <= 6:
		return "🟡"
	default:
		return "🟢"
	}
}

func scoreBar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return "[" + strings.Repeat("█", score) + strings.Repeat("░", 10-score) + "]"
}

// Card renders a score card (or the canonical error card) as text.
func Card(report domain.Report) string {
	var b strings.Builder

	if report.Failed() {
		b.WriteString("⚠️  " + report.Message + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("🎵 %s — %s\n", report.Song, report.Artist))
	b.WriteString(fmt.Sprintf("   %s · %s · %s\n\n", report.Genre, report.Year, report.Runtime))

	for _, key := range domain.CoreCategoryKeys {
		cat := report.CoreCategories[key]
		b.WriteString(fmt.Sprintf("%s %-20s %s %2d/10", scoreBadge(cat.Score), categoryLabel(key), scoreBar(cat.Score), cat.Score))
		if cat.Comment != "" {
			b.WriteString("  " + cat.Comment)
		}
		b.WriteString("\n")
	}

	if len(report.ExpansionCategories) > 0 {
		b.WriteString("\nExpansion categories:\n")
		for _, entry := range report.ExpansionCategories {
			if entry == nil {
				continue
			}
			b.WriteString(fmt.Sprintf("%s %-20s %s %2d/10", scoreBadge(entry.Score), entry.Category, scoreBar(entry.Score), entry.Score))
			if entry.Comment != "" {
				b.WriteString("  " + entry.Comment)
			}
			b.WriteString("\n")
		}
	}

	if report.FinalScore != nil {
		b.WriteString(fmt.Sprintf("\n⭐ Final score: %.1f/10\n", *report.FinalScore))
	}

	if report.Summary != "" {
		b.WriteString("\n📝 " + report.Summary + "\n")
	}

	return b.String()
}
