package resume

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	openFence  = regexp.MustCompile("(?i)^```json\\s*")
	bareFence  = regexp.MustCompile("^```\\s*")
	closeFence = regexp.MustCompile("\\s*```\\s*$")
)

// CleanAIResponse strips markdown code fences from raw model output and
// returns the outermost {...} span. The boolean is false when no JSON object
// span exists in the text.
func CleanAIResponse(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = openFence.ReplaceAllString(cleaned, "")
	cleaned = bareFence.ReplaceAllString(cleaned, "")
	cleaned = closeFence.ReplaceAllString(cleaned, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// ParseAI decodes raw LLM output into the AI-extracted shape. It never fails:
// markdown fences are stripped, the outermost JSON object is located, and any
// remaining parse failure falls back to an all-empty skeleton so the UI gets
// a fully shaped record instead of a parse error.
func ParseAI(raw []byte) AIExtracted {
	cleaned, ok := CleanAIResponse(string(raw))
	if !ok {
		return aiSkeleton()
	}
	var envelope struct {
		AIExtracted
		PersonalInfo *PersonalInfo `json:"personalInfo"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return aiSkeleton()
	}
	parsed := envelope.AIExtracted
	if envelope.PersonalInfo != nil {
		parsed.PersonalInfo = *envelope.PersonalInfo
	} else {
		parsed.PersonalInfo = PersonalInfo{Name: "Unknown"}
	}
	return parsed
}

func aiSkeleton() AIExtracted {
	return AIExtracted{
		PersonalInfo: PersonalInfo{Name: "Unknown"},
		Summary:      "",
	}
}
