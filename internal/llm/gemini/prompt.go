package gemini

import "fmt"

// resumeSchema is the JSON structure both prompts demand. It matches the
// structured resume shape the canonicalizer consumes.
const resumeSchema = `{
  "personalInfo": {
    "name": "",
    "email": "",
    "phone": "",
    "address": "",
    "linkedIn": "",
    "github": "",
    "professionalTitle": ""
  },
  "summary": "",
  "experience": [
    { "company": "", "position": "", "duration": "", "description": [] }
  ],
  "education": [
    { "institution": "", "degree": "", "duration": "", "gpa": "" }
  ],
  "skills": [],
  "projects": [
    { "title": "", "description": "", "role": "", "type": "", "duration": "", "technologies": [], "links": [] }
  ],
  "certifications": [
    { "name": "", "issuer": "", "date": "" }
  ],
  "achievements": [
    { "title": "", "description": "", "date": "", "issuer": "" }
  ],
  "languages": [
    { "name": "", "proficiency": "" }
  ],
  "hobbies": []
}`

func extractPrompt(resumeText string) string {
	return fmt.Sprintf(`Please parse the following resume text and extract the information into a structured JSON format.
Be as accurate as possible and include all available information. If a field is not present,
use empty string for strings, empty array for arrays.

For professionalTitle, look for the candidate's current job title, desired position, or professional role
(e.g., "Software Engineer", "Full Stack Developer", "Product Manager", "Data Scientist", etc.).
This is often found near the top of the resume, in the summary section, or as the most recent job title.

For projects, extract each project with:
- title: The project name/title
- description: A brief description of what the project does
- role: The person's role in the project (e.g., "Developer", "Lead Engineer", "Team Lead")
- type: Type of project (e.g., "Web Application", "Mobile App", "API", "Personal Project")
- duration: How long the project took or when it was completed
- technologies: Array of technologies/tools used (extract from description if not explicitly listed)
- links: Array of any URLs mentioned for the project (GitHub, live demo, etc.)

For achievements, extract:
- Awards, honors, recognitions, competitions won
- Publications, patents, certifications of merit
- Notable accomplishments or recognitions

For languages, extract:
- All languages mentioned with proficiency levels
- Use standard proficiency terms: "Native", "Fluent", "Conversational", "Basic"
- If no proficiency is mentioned, infer from context or use "Conversational" as default

For hobbies/interests, extract:
- Personal interests, hobbies, activities
- Sports, creative pursuits, volunteer work
- Any activities that show personality or additional skills

IMPORTANT: Respond with ONLY valid JSON, no markdown formatting, no explanations, no extra text.

Required JSON structure:
%s

Resume text to parse:
%s`, resumeSchema, resumeText)
}

func generatePrompt(profileJSON string) string {
	return fmt.Sprintf(`You are an expert ATS optimization assistant. Using the provided student profile JSON, produce an ATS-optimized resume JSON strictly matching the schema below. Keep content concise, use action verbs, quantify impact where possible, and avoid fancy symbols. If a field is unavailable, use empty string for strings and empty array for arrays.

Schema (return EXACTLY this structure):
%s

Guidelines:
- Map profile fields like name, email, phone, bio/summary, experiences, education, skills, projects, and links appropriately.
- Convert any date ranges to a simple string duration like "Jan 2023 - Present".
- Convert rich descriptions into 3-6 crisp bullet points per experience with measurable outcomes when possible.
- Flatten skills to a string array (e.g., ["JavaScript", "React", "Node.js"]).
- For links, include GitHub/portfolio/Project links if present.

Return ONLY valid JSON (no markdown, no backticks, no commentary).

Student profile JSON:
%s`, resumeSchema, profileJSON)
}
