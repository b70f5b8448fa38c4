package textparse

import "strings"

var educationKeywords = []string{
	"university", "college", "institute", "school",
	"bachelor", "master", "degree", "phd",
}

const educationMinLineLength = 10

// EducationEntry is one parsed education line.
type EducationEntry struct {
	Degree      string
	Institution string
}

// Education keeps lines in the education section that mention a school or
// degree keyword and splits each on its first comma into degree and
// institution. Lines without a comma get an "Unknown" institution.
func Education(text string, sections map[string]Span) []EducationEntry {
	span, ok := firstSpan(sections, "education", "academic background")
	if !ok {
		return []EducationEntry{}
	}

	lines := splitLines(text)
	if span.Start+1 > len(lines) {
		return []EducationEntry{}
	}

	out := []EducationEntry{}
	for _, line := range lines[span.Start+1 : span.End] {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < educationMinLineLength {
			continue
		}
		if !looksLikeEducation(trimmed) {
			continue
		}
		entry := parseEducationLine(trimmed)
		if entry.Degree != "" && entry.Institution != "" {
			out = append(out, entry)
		}
	}
	return out
}

func looksLikeEducation(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range educationKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func parseEducationLine(line string) EducationEntry {
	parts := strings.SplitN(line, ",", 2)
	entry := EducationEntry{
		Degree:      strings.TrimSpace(parts[0]),
		Institution: "Unknown",
	}
	if len(parts) == 2 {
		if inst := strings.TrimSpace(parts[1]); inst != "" {
			entry.Institution = inst
		}
	}
	return entry
}
