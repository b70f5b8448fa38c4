package textparse

import (
	"regexp"
	"strings"
)

// Contact details live in the header zone, so only the first lines are
// scanned.
const headerZoneLines = 10

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	// Loose international-leaning phone pattern. False positives on long
	// digit runs (zip+extension strings) are accepted; the header zone keeps
	// the blast radius small.
	phonePattern    = regexp.MustCompile(`(\+?\d{1,4}[-.\s]?)?\(?\d{1,4}\)?[-.\s]?\d{1,4}[-.\s]?\d{1,9}`)
	linkedinPattern = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`github\.com/[\w-]+`)
)

// ContactInfo is the header-zone extraction result.
type ContactInfo struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	Github   string
}

// Contact extracts name and contact handles from the first lines of the
// resume. The name is the first non-empty line that is neither an email nor a
// phone number; handles come from regex matches over the joined header zone.
func Contact(text string) ContactInfo {
	lines := splitLines(text)
	if len(lines) > headerZoneLines {
		lines = lines[:headerZoneLines]
	}

	var info ContactInfo
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if emailPattern.MatchString(trimmed) || phonePattern.MatchString(trimmed) {
			continue
		}
		info.Name = trimmed
		break
	}

	header := strings.Join(lines, " ")
	info.Email = emailPattern.FindString(header)
	info.Phone = strings.TrimSpace(phonePattern.FindString(header))
	info.LinkedIn = linkedinPattern.FindString(header)
	info.Github = githubPattern.FindString(header)
	return info
}
