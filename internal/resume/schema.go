package resume

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed ai_schema.json
var aiSchemaJSON []byte

// ValidateAI checks raw AI output against the extraction schema and returns
// human-readable findings. Findings are advisory: callers log them and carry
// on, since ParseAI tolerates any shape. A nil result means the payload
// conforms; an unreadable payload yields a single finding.
func ValidateAI(raw []byte) []string {
	cleaned, ok := CleanAIResponse(string(raw))
	if !ok {
		return []string{"no JSON object found in model output"}
	}

	schemaLoader := gojsonschema.NewBytesLoader(aiSchemaJSON)
	docLoader := gojsonschema.NewStringLoader(cleaned)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return []string{"schema validation failed: " + err.Error()}
	}
	if result.Valid() {
		return nil
	}
	findings := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		findings = append(findings, desc.String())
	}
	return findings
}
