package resume

import (
	"strconv"
	"strings"
)

// Canonicalize folds any Source record into the canonical resume shape. It is
// total: a zero Source yields a fully shaped record with empty strings and
// empty (never nil) collections.
func Canonicalize(src Source) Canonical {
	return Canonical{
		Contact:        ContactInfo(src),
		Summary:        summaryOf(src),
		Experience:     ExperienceList(src),
		Education:      EducationList(src),
		Skills:         SkillList(src.Skills),
		Projects:       ProjectList(src),
		Certifications: ensureCertifications(src.Certifications),
		Achievements:   ensureAchievements(src.Achievements),
		Languages:      ensureLanguages(src.Languages),
		Hobbies:        ensureStringSlice(src.Hobbies),
	}
}

// ContactInfo resolves the contact block. Flat top-level fields win over the
// nested personalInfo; portfolio/linkedin/github come from the additional-link
// list, first match wins.
func ContactInfo(src Source) Contact {
	location := src.PersonalInfo.Address
	switch {
	case location != "":
	case src.Department != "" && src.College != "":
		location = src.Department + ", " + src.College
	case src.Department != "":
		location = src.Department
	case src.College != "":
		location = src.College
	}

	return Contact{
		Name:              fallbackString(src.Name, src.PersonalInfo.Name),
		Email:             fallbackString(src.Email, src.PersonalInfo.Email),
		Phone:             fallbackString(src.PhoneNumber, src.PersonalInfo.Phone),
		Location:          location,
		Portfolio:         findPortfolioURL(src.AdditionalInfo.Additional),
		LinkedIn:          findLinkURL(src.AdditionalInfo.Additional, "linkedin", src.PersonalInfo.LinkedIn),
		Github:            findLinkURL(src.AdditionalInfo.Additional, "github", src.PersonalInfo.Github),
		ProfessionalTitle: fallbackString(src.PersonalInfo.ProfessionalTitle, src.Highlights),
	}
}

func summaryOf(src Source) string {
	return fallbackString(src.Summary, src.Bio)
}

// ExperienceList normalizes either experience family into the canonical entry
// list. When both arrays are present the upstream experiences[] wins.
func ExperienceList(src Source) []Experience {
	entries := src.Experiences
	if len(entries) == 0 {
		entries = src.Experience
	}

	out := make([]Experience, 0, len(entries))
	for _, entry := range entries {
		duration := entry.Duration
		if duration == "" && strings.TrimSpace(entry.StartDate) != "" {
			duration = formatDateRange(entry.StartDate, entry.EndDate, entry.CurrentlyWorking)
		}
		out = append(out, Experience{
			Company:        fallbackString(entry.Company, entry.CompanyName),
			Position:       fallbackString(entry.Position, entry.Designation),
			Duration:       duration,
			Description:    ensureStringSlice([]string(entry.Description)),
			Location:       entry.Location,
			EmploymentType: entry.EmploymentType,
		})
	}
	return out
}

// EducationList normalizes either education family. Degree is composed from
// course/fieldOfStudy/specialization when no explicit degree exists; duration
// falls back to calendar years; gpa falls back to a percentage.
func EducationList(src Source) []Education {
	out := make([]Education, 0, len(src.Education))
	for _, entry := range src.Education {
		degree := entry.Degree
		switch {
		case entry.Course != "" && entry.FieldOfStudy != "":
			degree = entry.Course + " in " + entry.FieldOfStudy
			if entry.Specialization != "" {
				degree += " - " + entry.Specialization
			}
		case entry.Course != "":
			degree = entry.Course
		case entry.FieldOfStudy != "":
			degree = entry.FieldOfStudy
		}

		duration := entry.Duration
		if duration == "" {
			startYear := yearOf(entry.StartYear)
			endYear := yearOf(entry.YearOfPassing)
			if startYear != "" && endYear != "" {
				duration = startYear + " - " + endYear
			}
		}

		gpa := entry.GPA
		if gpa == "" && entry.Percentage != 0 {
			gpa = trimFloat(float64(entry.Percentage)) + "%"
		}

		out = append(out, Education{
			Institution: entry.Institution,
			Degree:      degree,
			Duration:    duration,
			GPA:         gpa,
		})
	}
	return out
}

// SkillList flattens skills into plain strings regardless of whether the
// source represented them as strings or {name} objects. Empty entries drop.
func SkillList(skills []SkillValue) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill.Name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ProjectList normalizes either project family. Technologies missing from the
// source are inferred from the description text.
func ProjectList(src Source) []Project {
	out := make([]Project, 0, len(src.Projects))
	for _, entry := range src.Projects {
		title := fallbackString(entry.Title, entry.Name)
		if title == "" {
			title = "Untitled Project"
		}
		description := entry.Description
		if description == "" {
			description = "No description available"
		}

		duration := ""
		switch {
		case entry.StartDate != "" && entry.CurrentlyWorking:
			duration = formatDateRange(entry.StartDate, "", true)
		case entry.StartDate != "" && entry.EndDate != "":
			duration = formatDateRange(entry.StartDate, entry.EndDate, false)
		case entry.Duration != "":
			duration = entry.Duration
		}

		technologies := entry.Technologies
		if len(technologies) == 0 {
			technologies = InferTechnologies(description)
		}

		links := entry.Links
		if len(links) == 0 {
			links = []string(entry.Link)
		}

		out = append(out, Project{
			Title:        title,
			Description:  description,
			Role:         entry.Role,
			Type:         entry.Type,
			Duration:     duration,
			Technologies: ensureStringSlice(technologies),
			Links:        ensureStringSlice(links),
		})
	}
	return out
}

func findPortfolioURL(links []TitledLink) string {
	for _, link := range links {
		title := strings.ToLower(link.Title)
		url := strings.ToLower(link.URL)
		if strings.Contains(title, "portfolio") || strings.Contains(url, "netlify") || strings.Contains(url, "vercel") {
			return link.URL
		}
	}
	return ""
}

func findLinkURL(links []TitledLink, host string, fallback string) string {
	for _, link := range links {
		if strings.Contains(strings.ToLower(link.URL), host) {
			return link.URL
		}
	}
	return fallback
}

func fallbackString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func ensureStringSlice(value []string) []string {
	if value == nil {
		return []string{}
	}
	return value
}

func ensureCertifications(value []Certification) []Certification {
	if value == nil {
		return []Certification{}
	}
	return value
}

func ensureAchievements(value []Achievement) []Achievement {
	if value == nil {
		return []Achievement{}
	}
	return value
}

func ensureLanguages(value []Language) []Language {
	if value == nil {
		return []Language{}
	}
	return value
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
