package resume

import (
	"encoding/json"
	"strings"
)

// Canonical is the single normalized resume shape the rest of the system
// consumes. Every array field is non-nil after Canonicalize and every string
// field defaults to empty rather than being absent.
type Canonical struct {
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
	Languages      []Language      `json:"languages"`
	Hobbies        []string        `json:"hobbies"`
}

// Contact is the normalized contact block.
type Contact struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	Portfolio         string `json:"portfolio,omitempty"`
	LinkedIn          string `json:"linkedin,omitempty"`
	Github            string `json:"github,omitempty"`
	ProfessionalTitle string `json:"professionalTitle,omitempty"`
}

// Experience is a normalized work-experience entry. Duration is a formatted
// range such as "Jan 2022 - Present" whenever source dates were parseable.
type Experience struct {
	Company        string   `json:"company"`
	Position       string   `json:"position"`
	Duration       string   `json:"duration"`
	Description    []string `json:"description"`
	Location       string   `json:"location,omitempty"`
	EmploymentType string   `json:"employmentType,omitempty"`
}

// Education is a normalized education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
	GPA         string `json:"gpa,omitempty"`
}

// Project is a normalized project entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Role         string   `json:"role"`
	Type         string   `json:"type"`
	Duration     string   `json:"duration"`
	Technologies []string `json:"technologies"`
	Links        []string `json:"links"`
}

// Certification, Achievement and Language pass through from the AI shape.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Issuer      string `json:"issuer"`
}

type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// PersonalInfo is the nested contact block of the AI-extracted shape.
type PersonalInfo struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	LinkedIn          string `json:"linkedIn"`
	Github            string `json:"github"`
	ProfessionalTitle string `json:"professionalTitle"`
}

// AIExtracted is the JSON schema requested from the LLM.
type AIExtracted struct {
	PersonalInfo   PersonalInfo       `json:"personalInfo"`
	Summary        string             `json:"summary"`
	Experience     []ExperienceSource `json:"experience"`
	Education      []EducationSource  `json:"education"`
	Skills         []SkillValue       `json:"skills"`
	Projects       []ProjectSource    `json:"projects"`
	Certifications []Certification    `json:"certifications"`
	Achievements   []Achievement      `json:"achievements"`
	Languages      []Language         `json:"languages"`
	Hobbies        []string           `json:"hobbies"`
}

// Source is the superset of the loosely overlapping shapes a resume record
// arrives in: legacy flat fields, the upstream student-profile shape
// (experiences/companyName/designation), and the AI-extracted shape
// (personalInfo/experience/position). One record may carry fields from
// several families at once; the canonicalizer's preference rules resolve the
// overlap. Decoding is total: absent or malformed optional fields degrade to
// zero values.
type Source struct {
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	PhoneNumber    string             `json:"phoneNumber"`
	Bio            string             `json:"bio"`
	Highlights     string             `json:"highlights"`
	Department     string             `json:"department"`
	College        string             `json:"college"`
	PersonalInfo   PersonalInfo       `json:"personalInfo"`
	Summary        string             `json:"summary"`
	Experience     []ExperienceSource `json:"experience"`
	Experiences    []ExperienceSource `json:"experiences"`
	Education      []EducationSource  `json:"education"`
	Skills         []SkillValue       `json:"skills"`
	Projects       []ProjectSource    `json:"projects"`
	AdditionalInfo AdditionalInfo     `json:"additionalInfo"`
	Certifications []Certification    `json:"certifications"`
	Achievements   []Achievement      `json:"achievements"`
	Languages      []Language         `json:"languages"`
	Hobbies        []string           `json:"hobbies"`
}

// ExperienceSource covers both experience families.
type ExperienceSource struct {
	Company          string     `json:"company"`
	CompanyName      string     `json:"companyName"`
	Position         string     `json:"position"`
	Designation      string     `json:"designation"`
	Duration         string     `json:"duration"`
	StartDate        string     `json:"startDate"`
	EndDate          string     `json:"endDate"`
	CurrentlyWorking bool       `json:"currentlyWorking"`
	Description      StringList `json:"description"`
	Location         string     `json:"location"`
	EmploymentType   string     `json:"employmentType"`
}

// EducationSource covers both education families.
type EducationSource struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Duration       string `json:"duration"`
	GPA            string `json:"gpa"`
	Course         string `json:"course"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	Specialization string `json:"specialization"`
	StartYear      string `json:"startYear"`
	YearOfPassing  string `json:"yearOfPassing"`
	Percentage     Number `json:"percentage"`
}

// ProjectSource covers both project families.
type ProjectSource struct {
	Title            string     `json:"title"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Role             string     `json:"role"`
	Type             string     `json:"type"`
	Duration         string     `json:"duration"`
	StartDate        string     `json:"startDate"`
	EndDate          string     `json:"endDate"`
	CurrentlyWorking bool       `json:"currentlyWorking"`
	Technologies     []string   `json:"technologies"`
	Links            []string   `json:"links"`
	Link             StringList `json:"link"`
}

// AdditionalInfo carries the upstream profile's free-form link list.
type AdditionalInfo struct {
	Additional []TitledLink `json:"additional"`
	Activities []Activity   `json:"activities"`
}

type TitledLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type Activity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SkillValue decodes a skill that may be a plain string or a {"name": ...}
// object. Any other value decodes to empty and is filtered out later.
type SkillValue struct {
	Name string
}

func (s *SkillValue) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.Name = str
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		s.Name = obj.Name
		return nil
	}
	s.Name = ""
	return nil
}

func (s SkillValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name)
}

// StringList decodes a field that may be a single string or an array of
// strings. A single string becomes a one-element list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if strings.TrimSpace(one) == "" {
			*l = nil
			return nil
		}
		*l = StringList{one}
		return nil
	}
	*l = nil
	return nil
}

// Number decodes a numeric field that may arrive as a JSON number or a
// numeric string. Unparseable values decode to zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		var parsed float64
		if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &parsed); err == nil {
			*n = Number(parsed)
			return nil
		}
	}
	*n = 0
	return nil
}

// Source converts the AI-extracted shape into the canonicalizer's input.
func (a AIExtracted) Source() Source {
	return Source{
		PersonalInfo:   a.PersonalInfo,
		Summary:        a.Summary,
		Experience:     a.Experience,
		Education:      a.Education,
		Skills:         a.Skills,
		Projects:       a.Projects,
		Certifications: a.Certifications,
		Achievements:   a.Achievements,
		Languages:      a.Languages,
		Hobbies:        a.Hobbies,
	}
}

// DecodeSource parses an arbitrary resume JSON payload into a Source. It is
// total: on malformed JSON it returns a zero Source and false.
func DecodeSource(raw []byte) (Source, bool) {
	var src Source
	if err := json.Unmarshal(raw, &src); err != nil {
		return Source{}, false
	}
	return src, true
}
