// Package ats scores a canonical resume against a fixed parsing-friendliness
// rubric and produces remediation tips for the checks that fail.
package ats

import (
	"strings"

	"resume-builder/internal/resume"
)

const (
	totalChecks = 8
	passRate    = 0.7
)

// Result reports whether the resume cleared the rubric and which tips apply.
type Result struct {
	Passed bool     `json:"passed"`
	Tips   []string `json:"tips"`
}

type check struct {
	ok  func(resume.Canonical) bool
	tip string
}

// The check order is fixed; tips are emitted in this order and the pass
// threshold counts satisfied checks against it.
var checks = []check{
	{
		ok: func(r resume.Canonical) bool {
			return r.Contact.Email != "" && r.Contact.Phone != ""
		},
		tip: "Include both email and phone number in contact information",
	},
	{
		ok: func(r resume.Canonical) bool {
			return len(r.Summary) >= 50
		},
		tip: "Add a professional summary (50+ characters) to improve ATS parsing",
	},
	{
		ok: func(r resume.Canonical) bool {
			for _, exp := range r.Experience {
				if len(exp.Description) > 0 {
					return true
				}
			}
			return false
		},
		tip: "Include bullet points describing your achievements in work experience",
	},
	{
		ok: func(r resume.Canonical) bool {
			return len(r.Education) > 0
		},
		tip: "Include education information for better ATS compatibility",
	},
	{
		ok: func(r resume.Canonical) bool {
			return len(r.Skills) >= 3
		},
		tip: "Add at least 3 relevant skills to improve keyword matching",
	},
	{
		// Vacuously true when no experience exists; the section checks
		// below catch that case.
		ok: func(r resume.Canonical) bool {
			for _, exp := range r.Experience {
				if !strings.Contains(exp.Duration, "-") {
					return false
				}
			}
			return true
		},
		tip: "Use consistent date formats (e.g., 'Jan 2020 - Dec 2021') in experience",
	},
	{
		ok: func(r resume.Canonical) bool {
			for _, exp := range r.Experience {
				for _, line := range exp.Description {
					if hasQuantifier(line) {
						return true
					}
				}
			}
			return false
		},
		tip: "Include quantifiable achievements (numbers, percentages, dollar amounts) in your experience",
	},
	{
		ok: func(r resume.Canonical) bool {
			return len(r.Experience) > 0 && len(r.Education) > 0 && len(r.Skills) > 0
		},
		tip: "Include standard sections: Experience, Education, and Skills for optimal ATS parsing",
	},
}

// Check runs the rubric. It is pure and idempotent: the same record always
// yields the same result.
func Check(r resume.Canonical) Result {
	score := 0
	tips := make([]string, 0, totalChecks)
	for _, c := range checks {
		if c.ok(r) {
			score++
			continue
		}
		tips = append(tips, c.tip)
	}
	return Result{
		Passed: float64(score) >= totalChecks*passRate,
		Tips:   tips,
	}
}

func hasQuantifier(line string) bool {
	if strings.ContainsAny(line, "%$") {
		return true
	}
	for _, r := range line {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
