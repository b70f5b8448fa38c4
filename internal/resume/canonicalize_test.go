package resume

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCanonicalizeEmptySourceIsFullyShaped(t *testing.T) {
	out := Canonicalize(Source{})

	if out.Experience == nil || out.Education == nil || out.Skills == nil ||
		out.Projects == nil || out.Certifications == nil || out.Achievements == nil ||
		out.Languages == nil || out.Hobbies == nil {
		t.Fatalf("expected all collections non-nil, got %+v", out)
	}

	payload, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"experience", "education", "skills", "projects", "hobbies"} {
		if _, ok := decoded[key].([]any); !ok {
			t.Fatalf("expected %s to serialize as an array, got %T", key, decoded[key])
		}
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	raw := []byte(`{
		"name": "Ada",
		"experiences": [{"companyName": "Acme", "designation": "Engineer", "startDate": "2022-01-01", "currentlyWorking": true, "description": "Built things"}],
		"skills": [{"name": "Go"}, "SQL"]
	}`)
	src, ok := DecodeSource(raw)
	if !ok {
		t.Fatal("decode source failed")
	}

	first := Canonicalize(src)
	second := Canonicalize(src)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output on repeat calls")
	}
}

func TestSkillListFlattensBothRepresentations(t *testing.T) {
	var fromStrings, fromObjects []SkillValue
	if err := json.Unmarshal([]byte(`["A","B"]`), &fromStrings); err != nil {
		t.Fatalf("unmarshal strings: %v", err)
	}
	if err := json.Unmarshal([]byte(`[{"name":"A"},{"name":"B"}]`), &fromObjects); err != nil {
		t.Fatalf("unmarshal objects: %v", err)
	}

	want := []string{"A", "B"}
	if got := SkillList(fromStrings); !reflect.DeepEqual(got, want) {
		t.Fatalf("string skills: got %v", got)
	}
	if got := SkillList(fromObjects); !reflect.DeepEqual(got, want) {
		t.Fatalf("object skills: got %v", got)
	}
}

func TestExperienceDurationFormatting(t *testing.T) {
	cases := []struct {
		name  string
		entry ExperienceSource
		want  string
	}{
		{
			name:  "closed_range",
			entry: ExperienceSource{StartDate: "2022-01-01", EndDate: "2024-12-01"},
			want:  "Jan 2022 - Dec 2024",
		},
		{
			name:  "currently_working_ignores_end_date",
			entry: ExperienceSource{StartDate: "2022-01-01", EndDate: "2024-12-01", CurrentlyWorking: true},
			want:  "Jan 2022 - Present",
		},
		{
			name:  "missing_end_date_is_present",
			entry: ExperienceSource{StartDate: "2022-01-01"},
			want:  "Jan 2022 - Present",
		},
		{
			name:  "iso_timestamps",
			entry: ExperienceSource{StartDate: "2022-01-01T00:00:00.000Z", EndDate: "2024-12-01T00:00:00.000Z"},
			want:  "Jan 2022 - Dec 2024",
		},
		{
			name:  "textual_duration_passes_through",
			entry: ExperienceSource{Duration: "Summer 2021"},
			want:  "Summer 2021",
		},
		{
			name:  "no_dates_no_duration",
			entry: ExperienceSource{Company: "Acme"},
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := ExperienceList(Source{Experiences: []ExperienceSource{tc.entry}})
			if len(out) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(out))
			}
			if out[0].Duration != tc.want {
				t.Fatalf("duration: got %q, want %q", out[0].Duration, tc.want)
			}
		})
	}
}

func TestExperienceNormalizesUpstreamShape(t *testing.T) {
	raw := []byte(`{"experiences": [{"companyName": "Acme", "designation": "Engineer", "description": "Did the work"}]}`)
	src, _ := DecodeSource(raw)

	out := ExperienceList(src)
	if len(out) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(out))
	}
	if out[0].Company != "Acme" || out[0].Position != "Engineer" {
		t.Fatalf("unexpected entry: %+v", out[0])
	}
	if !reflect.DeepEqual(out[0].Description, []string{"Did the work"}) {
		t.Fatalf("expected string description wrapped into a list, got %v", out[0].Description)
	}
}

func TestEducationDegreeComposition(t *testing.T) {
	cases := []struct {
		name  string
		entry EducationSource
		want  string
	}{
		{
			name:  "course_and_field",
			entry: EducationSource{Course: "B.Tech", FieldOfStudy: "Computer Science"},
			want:  "B.Tech in Computer Science",
		},
		{
			name:  "with_specialization",
			entry: EducationSource{Course: "B.Tech", FieldOfStudy: "Computer Science", Specialization: "AI"},
			want:  "B.Tech in Computer Science - AI",
		},
		{
			name:  "course_only",
			entry: EducationSource{Course: "B.Tech"},
			want:  "B.Tech",
		},
		{
			name:  "explicit_degree_untouched",
			entry: EducationSource{Degree: "BSc Physics"},
			want:  "BSc Physics",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := EducationList(Source{Education: []EducationSource{tc.entry}})
			if out[0].Degree != tc.want {
				t.Fatalf("degree: got %q, want %q", out[0].Degree, tc.want)
			}
		})
	}
}

func TestEducationDurationAndGPAFallbacks(t *testing.T) {
	entry := EducationSource{
		Institution:   "Sample University",
		Course:        "B.Tech",
		StartYear:     "2020-08-01T00:00:00.000Z",
		YearOfPassing: "2024-05-01T00:00:00.000Z",
		Percentage:    85,
	}
	out := EducationList(Source{Education: []EducationSource{entry}})

	if out[0].Duration != "2020 - 2024" {
		t.Fatalf("duration: got %q", out[0].Duration)
	}
	if out[0].GPA != "85%" {
		t.Fatalf("gpa: got %q", out[0].GPA)
	}
}

func TestProjectTechnologyInference(t *testing.T) {
	src := Source{Projects: []ProjectSource{{
		Title:       "Store",
		Description: "Built a React and Node.js app with MongoDB",
	}}}

	out := ProjectList(src)
	got := map[string]bool{}
	for _, tech := range out[0].Technologies {
		got[tech] = true
	}
	for _, want := range []string{"React", "Node.js", "MongoDB"} {
		if !got[want] {
			t.Fatalf("expected %q in technologies, got %v", want, out[0].Technologies)
		}
	}
	if len(out[0].Technologies) > 5 {
		t.Fatalf("expected at most 5 technologies, got %d", len(out[0].Technologies))
	}
}

func TestProjectExplicitTechnologiesWin(t *testing.T) {
	src := Source{Projects: []ProjectSource{{
		Title:        "Store",
		Description:  "Built with React",
		Technologies: []string{"Elixir"},
	}}}

	out := ProjectList(src)
	if !reflect.DeepEqual(out[0].Technologies, []string{"Elixir"}) {
		t.Fatalf("expected explicit technologies untouched, got %v", out[0].Technologies)
	}
}

func TestContactLinkDiscovery(t *testing.T) {
	links := []TitledLink{
		{Title: "LI", URL: "https://linkedin.com/in/y"},
		{Title: "Portfolio", URL: "https://x.netlify.app"},
		{Title: "Code", URL: "https://github.com/y"},
	}
	src := Source{AdditionalInfo: AdditionalInfo{Additional: links}}

	contact := ContactInfo(src)
	if contact.Portfolio != "https://x.netlify.app" {
		t.Fatalf("portfolio: got %q", contact.Portfolio)
	}
	if contact.LinkedIn != "https://linkedin.com/in/y" {
		t.Fatalf("linkedin: got %q", contact.LinkedIn)
	}
	if contact.Github != "https://github.com/y" {
		t.Fatalf("github: got %q", contact.Github)
	}
}

func TestContactPrefersFlatFieldsAndComposesLocation(t *testing.T) {
	src := Source{
		Name:        "Flat Name",
		PhoneNumber: "123",
		Department:  "Computer Science",
		College:     "Sample University",
		PersonalInfo: PersonalInfo{
			Name:  "Nested Name",
			Email: "nested@example.com",
			Phone: "999",
		},
	}

	contact := ContactInfo(src)
	if contact.Name != "Flat Name" {
		t.Fatalf("name: got %q", contact.Name)
	}
	if contact.Phone != "123" {
		t.Fatalf("phone: got %q", contact.Phone)
	}
	if contact.Email != "nested@example.com" {
		t.Fatalf("email fallback: got %q", contact.Email)
	}
	if contact.Location != "Computer Science, Sample University" {
		t.Fatalf("location: got %q", contact.Location)
	}
}

func TestContactLocationPrefersAddress(t *testing.T) {
	src := Source{
		Department:   "CS",
		College:      "U",
		PersonalInfo: PersonalInfo{Address: "Berlin, Germany"},
	}
	if got := ContactInfo(src).Location; got != "Berlin, Germany" {
		t.Fatalf("location: got %q", got)
	}
}

func TestDecodeSourceMalformed(t *testing.T) {
	if _, ok := DecodeSource([]byte("not json")); ok {
		t.Fatal("expected decode failure for malformed payload")
	}
	if _, ok := DecodeSource([]byte(`{}`)); !ok {
		t.Fatal("expected empty object to decode")
	}
}
