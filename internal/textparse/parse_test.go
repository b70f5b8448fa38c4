package textparse

import (
	"strings"
	"testing"
)

const sampleResume = `Jane Smith
jane.smith@example.com | +1 555-123-4567
linkedin.com/in/janesmith | github.com/janesmith

Summary
Backend engineer with eight years of experience building
distributed systems and data pipelines.


Education
B.Tech in Computer Science, State University
MBA

Experience
Senior Engineer - Acme Technologies
• Led migration of the billing platform to event sourcing
• Cut p99 latency by 40% across the ingestion tier
Some short note
This continuation line is definitely longer than twenty characters.

Skills
Languages: Go, SQL
Docker, Kubernetes
`

func TestContactExtraction(t *testing.T) {
	info := Contact(sampleResume)

	if info.Name != "Jane Smith" {
		t.Errorf("name = %q, want %q", info.Name, "Jane Smith")
	}
	if info.Email != "jane.smith@example.com" {
		t.Errorf("email = %q", info.Email)
	}
	if info.Phone == "" {
		t.Error("expected a phone number in the header zone")
	}
	if info.LinkedIn != "linkedin.com/in/janesmith" {
		t.Errorf("linkedin = %q", info.LinkedIn)
	}
	if info.Github != "github.com/janesmith" {
		t.Errorf("github = %q", info.Github)
	}
}

func TestContactIgnoresBodyBeyondHeaderZone(t *testing.T) {
	text := strings.Repeat("\n", headerZoneLines+2) + "late@example.com"
	if got := Contact(text).Email; got != "" {
		t.Errorf("email found outside header zone: %q", got)
	}
}

func TestSummaryJoinsWindow(t *testing.T) {
	sections := Segment(sampleResume)
	got := Summary(sampleResume, sections)
	want := "Backend engineer with eight years of experience building distributed systems and data pipelines."
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestSummaryMissingSection(t *testing.T) {
	text := "Jane Smith\nExperience\njob stuff"
	if got := Summary(text, Segment(text)); got != "" {
		t.Errorf("summary = %q, want empty", got)
	}
}

func TestExperienceGroupsBulletsUnderHeader(t *testing.T) {
	sections := Segment(sampleResume)
	jobs := Experience(sampleResume, sections)

	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1: %+v", len(jobs), jobs)
	}
	job := jobs[0]
	if job.JobTitle != "Senior Engineer" || job.Company != "Acme Technologies" {
		t.Errorf("header parsed as %q / %q", job.JobTitle, job.Company)
	}
	// Two bullets plus the long continuation line; the short note is dropped.
	if len(job.Description) != 3 {
		t.Fatalf("got %d description lines, want 3: %q", len(job.Description), job.Description)
	}
	if job.Description[0] != "Led migration of the billing platform to event sourcing" {
		t.Errorf("first bullet = %q", job.Description[0])
	}
}

func TestExperienceHeaderWithoutCompanyIsDropped(t *testing.T) {
	text := "Experience\nWorked at a startup for years\n• did things"
	jobs := Experience(text, Segment(text))
	if len(jobs) != 0 {
		t.Errorf("header without a title-company split must be dropped, got %+v", jobs)
	}
}

func TestEducationParsing(t *testing.T) {
	sections := Segment(sampleResume)
	entries := Education(sampleResume, sections)

	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(entries), entries)
	}
	if entries[0].Degree != "B.Tech in Computer Science" {
		t.Errorf("degree = %q", entries[0].Degree)
	}
	if entries[0].Institution != "State University" {
		t.Errorf("institution = %q", entries[0].Institution)
	}
}

func TestEducationWithoutCommaGetsUnknownInstitution(t *testing.T) {
	text := "Education\nBachelor of Engineering"
	entries := Education(text, Segment(text))
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Institution != "Unknown" {
		t.Errorf("institution = %q, want Unknown", entries[0].Institution)
	}
}

func TestSkillsCategories(t *testing.T) {
	sections := Segment(sampleResume)
	groups := Skills(sampleResume, sections)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2: %+v", len(groups), groups)
	}
	if groups[0].Category != "Languages" || len(groups[0].Items) != 2 {
		t.Errorf("first group = %+v", groups[0])
	}
	if groups[1].Category != "Technical Skills" {
		t.Errorf("bare line category = %q, want Technical Skills", groups[1].Category)
	}
	if len(groups[1].Items) != 2 || groups[1].Items[0] != "Docker" {
		t.Errorf("bare line items = %q", groups[1].Items)
	}
}

func TestParseAssemblesExtractedShape(t *testing.T) {
	extracted := Parse(sampleResume)

	if extracted.PersonalInfo.Name != "Jane Smith" {
		t.Errorf("name = %q", extracted.PersonalInfo.Name)
	}
	if extracted.Summary == "" {
		t.Error("expected a summary")
	}
	if len(extracted.Experience) != 1 || extracted.Experience[0].Position != "Senior Engineer" {
		t.Errorf("experience = %+v", extracted.Experience)
	}
	if len(extracted.Education) != 1 {
		t.Errorf("education = %+v", extracted.Education)
	}
	if len(extracted.Skills) != 4 {
		t.Errorf("got %d skills, want 4", len(extracted.Skills))
	}
	// Arrays with no heuristic stay present and empty.
	if extracted.Projects == nil || extracted.Certifications == nil || extracted.Languages == nil {
		t.Error("shape arrays must be non-nil")
	}
}

func TestParseEmptyText(t *testing.T) {
	extracted := Parse("")
	if extracted.PersonalInfo.Name != "" {
		t.Errorf("name = %q, want empty", extracted.PersonalInfo.Name)
	}
	if len(extracted.Experience) != 0 || len(extracted.Skills) != 0 {
		t.Error("expected empty extraction for empty text")
	}
}
