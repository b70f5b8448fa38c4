package textparse

import "strings"

// Job tells a header line from a continuation line. The token list skews
// toward company suffixes, so a plain "Software Engineer, Initech" line
// without one of these markers is missed; that trade-off keeps prose from
// spawning phantom jobs.
var employerTokens = []string{"inc", "corp", "llc", "ltd", "company", "technologies", "systems"}

const continuationMinLength = 20

// WorkExperience is one parsed job entry.
type WorkExperience struct {
	JobTitle    string
	Company     string
	Description []string
}

// Experience walks the experience section and groups lines into job records.
// A record opens on a header-looking line and collects bullet or long
// continuation lines until the next header; a record is only kept when both
// title and company were found.
func Experience(text string, sections map[string]Span) []WorkExperience {
	span, ok := firstSpan(sections, "experience", "work experience", "professional experience")
	if !ok {
		return []WorkExperience{}
	}

	lines := splitLines(text)
	if span.Start+1 > len(lines) {
		return []WorkExperience{}
	}
	region := lines[span.Start+1 : span.End]

	out := []WorkExperience{}
	var current WorkExperience
	collecting := false

	flush := func() {
		if current.JobTitle != "" && current.Company != "" {
			if current.Description == nil {
				current.Description = []string{}
			}
			out = append(out, current)
		}
	}

	for _, line := range region {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if looksLikeJobHeader(trimmed) {
			flush()
			current = parseJobHeader(trimmed)
			collecting = true
			continue
		}
		if !collecting {
			continue
		}
		if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") {
			bullet := strings.TrimSpace(strings.TrimLeft(trimmed, "•-"))
			if bullet != "" {
				current.Description = append(current.Description, bullet)
			}
			continue
		}
		if len(trimmed) > continuationMinLength {
			current.Description = append(current.Description, trimmed)
		}
	}
	flush()

	return out
}

func looksLikeJobHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, token := range employerTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return strings.Contains(line, " at ") || strings.Contains(line, " - ")
}

func parseJobHeader(line string) WorkExperience {
	parts := strings.SplitN(line, " - ", 2)
	if len(parts) == 2 {
		return WorkExperience{
			JobTitle: strings.TrimSpace(parts[0]),
			Company:  strings.TrimSpace(parts[1]),
		}
	}
	return WorkExperience{}
}
