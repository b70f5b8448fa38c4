// Package resumes exposes the resume pipeline over HTTP: upload parsing,
// profile-based generation, session CRUD and ATS checks.
package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/extract"
	"resume-builder/internal/llm"
	"resume-builder/internal/profile"
	"resume-builder/internal/resume"
	"resume-builder/internal/session"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/internal/textparse"
)

var (
	// ErrInvalidInput marks caller mistakes (bad body, unsupported file).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstream marks failures of the LLM or the profile API.
	ErrUpstream = errors.New("upstream failure")
	// ErrNotConfigured marks operations that need an unconfigured dependency.
	ErrNotConfigured = errors.New("service not configured")
)

// Extraction methods reported to the client.
const (
	MethodAI        = "ai"
	MethodHeuristic = "heuristic"
)

// ProfileFetcher is the slice of profile.Client the service needs.
type ProfileFetcher interface {
	Fetch(ctx context.Context) (json.RawMessage, error)
}

// Service runs the resume pipeline against its dependencies.
type Service struct {
	LLM     llm.Client
	Profile ProfileFetcher
	Store   *session.Store
}

// ParseResult is the outcome of an upload parse.
type ParseResult struct {
	Record  session.Record
	Preview string
	Method  string
}

// ParseUpload extracts text from an uploaded file, structures it with the LLM
// (or the heuristic text parser when no LLM is configured), canonicalizes the
// result and stores it in the session store.
func (s *Service) ParseUpload(ctx context.Context, data []byte, mimeType, fileName string) (ParseResult, error) {
	if !extract.Supported(mimeType) {
		return ParseResult{}, fmt.Errorf("%w: unsupported file type %q", ErrInvalidInput, mimeType)
	}

	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return ParseResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return ParseResult{}, fmt.Errorf("%w: could not extract text from file: %v", ErrInvalidInput, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ParseResult{}, fmt.Errorf("%w: the file contains no extractable text", ErrInvalidInput)
	}

	extracted, method, err := s.structureText(ctx, text)
	if err != nil {
		return ParseResult{}, err
	}

	canonical := resume.Canonicalize(extracted.Source())
	// Stored file names come from the client; strip anything path-like.
	safeName, err := util.SanitizeFileName(fileName)
	if err != nil {
		safeName = ""
	}
	rec, err := s.Store.Save(ctx, canonical, session.OriginUpload, safeName)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Record: rec, Preview: textPreview(text), Method: method}, nil
}

func (s *Service) structureText(ctx context.Context, text string) (resume.AIExtracted, string, error) {
	raw, err := s.LLM.ExtractResume(ctx, text)
	if errors.Is(err, llm.ErrNotConfigured) {
		return textparse.Parse(text), MethodHeuristic, nil
	}
	if err != nil {
		return resume.AIExtracted{}, "", fmt.Errorf("%w: llm extract: %v", ErrUpstream, err)
	}
	if findings := resume.ValidateAI(raw); len(findings) > 0 {
		telemetry.Warn("llm.schema_findings", map[string]any{"findings": findings})
	}
	return resume.ParseAI(raw), MethodAI, nil
}

// Generate fetches the upstream profile and asks the LLM for an
// ATS-optimized resume, then canonicalizes and stores it.
func (s *Service) Generate(ctx context.Context) (session.Record, error) {
	if s.Profile == nil {
		return session.Record{}, fmt.Errorf("%w: profile api", ErrNotConfigured)
	}

	profileJSON, err := s.Profile.Fetch(ctx)
	if errors.Is(err, profile.ErrNotConfigured) {
		return session.Record{}, fmt.Errorf("%w: profile api", ErrNotConfigured)
	}
	if err != nil {
		return session.Record{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw, err := s.LLM.GenerateFromProfile(ctx, profileJSON)
	if errors.Is(err, llm.ErrNotConfigured) {
		return session.Record{}, fmt.Errorf("%w: llm provider", ErrNotConfigured)
	}
	if err != nil {
		return session.Record{}, fmt.Errorf("%w: llm generate: %v", ErrUpstream, err)
	}
	if findings := resume.ValidateAI(raw); len(findings) > 0 {
		telemetry.Warn("llm.schema_findings", map[string]any{"findings": findings})
	}

	canonical := resume.Canonicalize(resume.ParseAI(raw).Source())
	return s.Store.Save(ctx, canonical, session.OriginProfile, "")
}

// Import canonicalizes a caller-supplied resume payload in any supported
// shape and stores it.
func (s *Service) Import(ctx context.Context, body []byte) (session.Record, error) {
	src, ok := resume.DecodeSource(body)
	if !ok {
		return session.Record{}, fmt.Errorf("%w: body is not valid resume JSON", ErrInvalidInput)
	}
	canonical := resume.Canonicalize(src)
	return s.Store.Save(ctx, canonical, session.OriginImported, "")
}

const previewLimit = 500

func textPreview(text string) string {
	if len(text) > previewLimit {
		return text[:previewLimit]
	}
	return text
}
