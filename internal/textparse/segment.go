// Package textparse locates resume sections in unstructured text and turns
// them into structured records with line-level heuristics. It is the fallback
// path when no language model is configured; every extractor is total and
// returns empty results instead of errors when a pattern does not match.
package textparse

import "strings"

// Span marks the line range a section occupies. End is always the total line
// count: only section starts are detected, and extractors read from the start
// to end-of-text or a fixed window. A later section's lines can therefore
// bleed into an earlier section's range; the extractors' own line filters are
// what keeps foreign lines out.
type Span struct {
	Start int
	End   int
}

// sectionKeywords are the headings the segmenter recognizes, compared against
// lower-cased trimmed lines.
var sectionKeywords = []string{
	"experience", "work experience", "professional experience", "employment",
	"education", "academic background", "qualifications",
	"skills", "technical skills", "core competencies",
	"projects", "personal projects", "key projects",
	"certifications", "certificates", "licenses",
	"summary", "profile", "objective", "about",
	"awards", "achievements", "honors",
	"languages", "language proficiency",
}

// headingTolerance allows trailing punctuation after a keyword, e.g.
// "EDUCATION:" or "Skills -". A keyword embedded mid-sentence exceeds it.
const headingTolerance = 3

// Segment scans text line by line and records where each known section
// heading appears. First match per keyword wins.
func Segment(text string) map[string]Span {
	lines := splitLines(text)
	sections := make(map[string]Span)
	for index, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		for _, keyword := range sectionKeywords {
			if _, seen := sections[keyword]; seen {
				continue
			}
			if isHeading(lower, keyword) {
				sections[keyword] = Span{Start: index, End: len(lines)}
			}
		}
	}
	return sections
}

func isHeading(lower, keyword string) bool {
	if lower == keyword {
		return true
	}
	return strings.HasPrefix(lower, keyword) && len(lower) <= len(keyword)+headingTolerance
}

func splitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}

func firstSpan(sections map[string]Span, keywords ...string) (Span, bool) {
	for _, keyword := range keywords {
		if span, ok := sections[keyword]; ok {
			return span, true
		}
	}
	return Span{}, false
}
