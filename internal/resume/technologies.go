package resume

import (
	"regexp"
	"strings"
)

const maxInferredTechnologies = 5

// techPatterns are the technology names recognized inside free-text project
// descriptions. Matching is case-insensitive and tolerates optional ".js"
// suffixes on framework names.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)React(\.?js)?`),
	regexp.MustCompile(`(?i)Node(\.?js)?`),
	regexp.MustCompile(`(?i)Express(\.?js)?`),
	regexp.MustCompile(`(?i)MongoDB`),
	regexp.MustCompile(`(?i)MySQL`),
	regexp.MustCompile(`(?i)PostgreSQL`),
	regexp.MustCompile(`(?i)JavaScript`),
	regexp.MustCompile(`(?i)TypeScript`),
	regexp.MustCompile(`(?i)Python`),
	regexp.MustCompile(`(?i)Java\b`),
	regexp.MustCompile(`(?i)PHP`),
	regexp.MustCompile(`(?i)HTML5?`),
	regexp.MustCompile(`(?i)CSS3?`),
	regexp.MustCompile(`(?i)Bootstrap`),
	regexp.MustCompile(`(?i)Tailwind`),
	regexp.MustCompile(`(?i)SCSS`),
	regexp.MustCompile(`(?i)Three\.js`),
	regexp.MustCompile(`(?i)GSAP`),
	regexp.MustCompile(`(?i)WordPress`),
	regexp.MustCompile(`(?i)Vue(\.?js)?`),
	regexp.MustCompile(`(?i)Angular`),
	regexp.MustCompile(`(?i)Docker`),
	regexp.MustCompile(`(?i)Kubernetes`),
	regexp.MustCompile(`(?i)AWS`),
	regexp.MustCompile(`(?i)Firebase`),
	regexp.MustCompile(`(?i)Netlify`),
	regexp.MustCompile(`(?i)Vercel`),
}

var jsSuffix = regexp.MustCompile(`(?i)\.?js$`)

// InferTechnologies scans a project description for known technology names.
// Results are de-duplicated, ".js"-normalized and capped at five entries.
func InferTechnologies(description string) []string {
	out := make([]string, 0, maxInferredTechnologies)
	seen := make(map[string]bool)
	for _, pattern := range techPatterns {
		match := pattern.FindString(description)
		if match == "" {
			continue
		}
		normalized := normalizeTechName(match)
		key := strings.ToLower(normalized)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, normalized)
		if len(out) == maxInferredTechnologies {
			break
		}
	}
	return out
}

func normalizeTechName(name string) string {
	if jsSuffix.MatchString(name) {
		return jsSuffix.ReplaceAllString(name, "") + ".js"
	}
	return name
}
