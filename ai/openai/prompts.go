package openai

import "fmt"

const structuringResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "summary": {"type": "string"},
    "contact": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"}
      }
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "company": {"type": "string"},
          "title": {"type": "string"},
          "location": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}},
          "technologies": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["company", "title", "bullets"]
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "technologies": {"type": "array", "items": {"type": "string"}},
          "link": {"type": "string"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["name"]
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "gpa": {"type": "string"},
          "location": {"type": "string"},
          "start_date": {"type": "string"},
          "end_date": {"type": "string"}
        },
        "required": ["institution"]
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "category": {"type": "string"},
          "items": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["category", "items"]
      }
    },
    "leadership": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "role": {"type": "string"},
          "organization": {"type": "string"},
          "description": {"type": "string"}
        },
        "required": ["role"]
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "date": {"type": "string"}
        },
        "required": ["name"]
      }
    },
    "additional_sections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "text": {"type": "string"},
          "items": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["name"]
      }
    }
  },
  "required": ["summary", "contact"]
}`

const structuringPromptTemplate = `You are a CV parser. Extract the content of the given CV text into
structured JSON sections and return it as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Copy text verbatim from the CV. Never invent, summarize, or rephrase content.
- Split experience and project descriptions into individual achievement bullets, one array element per bullet.
- Keep dates exactly as written in the CV (e.g. "Jan 2021", "2021-01", "Present").
- Group skills under the category headings used in the CV. If the CV has no
  categories, use a single category named "Skills".
- Put sections that fit none of the named sections into "additional_sections"
  under the section's original heading.
- Omit sections that are absent from the CV entirely; do not emit empty placeholders.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.`

// buildStructuringPrompt creates the system prompt with the response schema embedded.
func buildStructuringPrompt() string {
	return fmt.Sprintf(structuringPromptTemplate, structuringResponseSchema)
}
