package textparse

import "resume-builder/internal/resume"

// Parse runs every extractor over the raw text and assembles the result into
// the same shape the language model produces, so both extraction paths feed
// one canonicalization pipeline. Projects, certifications and languages have
// no reliable line-level heuristic and stay empty here.
func Parse(text string) resume.AIExtracted {
	sections := Segment(text)
	contact := Contact(text)

	extracted := resume.AIExtracted{
		PersonalInfo: resume.PersonalInfo{
			Name:     contact.Name,
			Email:    contact.Email,
			Phone:    contact.Phone,
			LinkedIn: contact.LinkedIn,
			Github:   contact.Github,
		},
		Summary:        Summary(text, sections),
		Experience:     []resume.ExperienceSource{},
		Education:      []resume.EducationSource{},
		Skills:         []resume.SkillValue{},
		Projects:       []resume.ProjectSource{},
		Certifications: []resume.Certification{},
		Achievements:   []resume.Achievement{},
		Languages:      []resume.Language{},
		Hobbies:        []string{},
	}

	for _, job := range Experience(text, sections) {
		extracted.Experience = append(extracted.Experience, resume.ExperienceSource{
			Position:    job.JobTitle,
			Company:     job.Company,
			Description: resume.StringList(job.Description),
		})
	}

	for _, entry := range Education(text, sections) {
		extracted.Education = append(extracted.Education, resume.EducationSource{
			Degree:      entry.Degree,
			Institution: entry.Institution,
		})
	}

	for _, group := range Skills(text, sections) {
		for _, item := range group.Items {
			extracted.Skills = append(extracted.Skills, resume.SkillValue{Name: item})
		}
	}

	return extracted
}
