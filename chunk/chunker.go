// Copyright 2025 Semcv Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package chunk

import (
	"strings"

	"github.com/semcv/semcv/core"
)

// Record converts a structured record into embeddable chunks. The function
// is pure: it never mutates its input and the same input always yields the
// same chunks in the same order. Contact details are deliberately never
// emitted. Chunks with empty text are never produced.
//
// Emission order is fixed: summary, skills, education, leadership,
// certifications, extra sections, experience bullets, project bullets.
func Record(structured core.StructuredRecord, recordID core.ID) []core.Chunk {
	var chunks []core.Chunk

	chunks = appendSummary(chunks, recordID, structured.Summary)
	chunks = appendSkills(chunks, recordID, structured.Skills)
	chunks = appendEducation(chunks, recordID, structured.Education)
	chunks = appendLeadership(chunks, recordID, structured.Leadership)
	chunks = appendCertifications(chunks, recordID, structured.Certifications)
	chunks = appendExtra(chunks, recordID, structured.Extra)
	chunks = appendExperience(chunks, recordID, structured.Experience)
	chunks = appendProjects(chunks, recordID, structured.Projects)

	return chunks
}

func appendSummary(chunks []core.Chunk, recordID core.ID, summary core.Summary) []core.Chunk {
	text := strings.TrimSpace(summary.Text)
	if text == "" {
		return chunks
	}

	return append(chunks, core.Chunk{
		RecordId: recordID,
		Section:  core.SectionSummary,
		Text:     text,
		Metadata: map[string]any{"type": "summary"},
	})
}

// appendSkills flattens every category into one comma-joined chunk so a
// query can match a skill regardless of how the source grouped it. The
// contributing category names are preserved in metadata.
func appendSkills(chunks []core.Chunk, recordID core.ID, skills []core.SkillCategory) []core.Chunk {
	var items []string
	var categories []string
	for _, category := range skills {
		kept := false
		for _, item := range category.Items {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			items = append(items, item)
			kept = true
		}
		if kept && category.Name != "" {
			categories = append(categories, category.Name)
		}
	}
	if len(items) == 0 {
		return chunks
	}

	return append(chunks, core.Chunk{
		RecordId: recordID,
		Section:  core.SectionSkills,
		Text:     strings.Join(items, ", "),
		Metadata: map[string]any{
			"type":       "skills",
			"categories": categories,
		},
	})
}

func appendEducation(chunks []core.Chunk, recordID core.ID, education []core.EducationEntry) []core.Chunk {
	for i, entry := range education {
		parts := []string{entry.Institution, entry.Degree, entry.Field}
		if entry.GPA != "" {
			parts = append(parts, "GPA: "+entry.GPA)
		}
		text := joinParts(parts)
		if text == "" {
			continue
		}

		chunks = append(chunks, core.Chunk{
			RecordId: recordID,
			Section:  core.SectionEducation,
			Text:     text,
			Metadata: map[string]any{
				"type":        "education",
				"index":       i,
				"institution": entry.Institution,
				"degree":      entry.Degree,
				"field":       entry.Field,
				"gpa":         entry.GPA,
				"location":    entry.Location,
				"start_date":  entry.StartDate,
				"end_date":    entry.EndDate,
			},
		})
	}
	return chunks
}

func appendLeadership(chunks []core.Chunk, recordID core.ID, leadership []core.LeadershipEntry) []core.Chunk {
	for i, entry := range leadership {
		text := joinParts([]string{entry.Role, entry.Organization, entry.Description})
		if text == "" {
			continue
		}

		chunks = append(chunks, core.Chunk{
			RecordId: recordID,
			Section:  core.SectionLeadership,
			Text:     text,
			Metadata: map[string]any{
				"type":         "leadership",
				"index":        i,
				"role":         entry.Role,
				"organization": entry.Organization,
				"description":  entry.Description,
			},
		})
	}
	return chunks
}

func appendCertifications(chunks []core.Chunk, recordID core.ID, certifications []core.CertificationEntry) []core.Chunk {
	for i, entry := range certifications {
		text := joinParts([]string{entry.Name, entry.Issuer, entry.Date})
		if text == "" {
			continue
		}

		chunks = append(chunks, core.Chunk{
			RecordId: recordID,
			Section:  core.SectionCertifications,
			Text:     text,
			Metadata: map[string]any{
				"type":   "certification",
				"index":  i,
				"name":   entry.Name,
				"issuer": entry.Issuer,
				"date":   entry.Date,
			},
		})
	}
	return chunks
}

// appendExtra indexes sections outside the fixed vocabulary under a
// normalized form of their original name.
func appendExtra(chunks []core.Chunk, recordID core.ID, extra []core.ExtraSection) []core.Chunk {
	for i, section := range extra {
		text := strings.TrimSpace(section.Text)
		if text == "" {
			var items []string
			for _, item := range section.Items {
				item = strings.TrimSpace(item)
				if item != "" {
					items = append(items, item)
				}
			}
			text = strings.Join(items, ", ")
		}
		if text == "" {
			continue
		}

		chunks = append(chunks, core.Chunk{
			RecordId: recordID,
			Section:  sectionName(section.Name),
			Text:     text,
			Metadata: map[string]any{
				"type":         "additional",
				"index":        i,
				"section_name": section.Name,
			},
		})
	}
	return chunks
}

// appendExperience emits one chunk per achievement bullet so a query
// matches the specific achievement rather than a whole job blob. An entry
// without bullets produces nothing.
func appendExperience(chunks []core.Chunk, recordID core.ID, experience []core.ExperienceEntry) []core.Chunk {
	for i, entry := range experience {
		label := entry.Company
		if label == "" {
			label = entry.Title
		}

		for j, bullet := range entry.Bullets {
			bullet = strings.TrimSpace(bullet)
			if bullet == "" {
				continue
			}
			text := bullet
			if label != "" {
				text = label + " - " + bullet
			}

			chunks = append(chunks, core.Chunk{
				RecordId: recordID,
				Section:  core.SectionExperience,
				Text:     text,
				Metadata: map[string]any{
					"type":         "experience_bullet",
					"company":      entry.Company,
					"title":        entry.Title,
					"exp_index":    i,
					"bullet_index": j,
					"location":     entry.Location,
					"start_date":   entry.StartDate,
					"end_date":     entry.EndDate,
				},
			})
		}
	}
	return chunks
}

// appendProjects mirrors appendExperience for project bullets. A project
// without bullets falls back to a single description chunk.
func appendProjects(chunks []core.Chunk, recordID core.ID, projects []core.ProjectEntry) []core.Chunk {
	for i, entry := range projects {
		emitted := false
		for j, bullet := range entry.Bullets {
			bullet = strings.TrimSpace(bullet)
			if bullet == "" {
				continue
			}
			text := bullet
			if entry.Name != "" {
				text = entry.Name + " - " + bullet
			}

			chunks = append(chunks, core.Chunk{
				RecordId: recordID,
				Section:  core.SectionProjects,
				Text:     text,
				Metadata: map[string]any{
					"type":         "project_bullet",
					"project_name": entry.Name,
					"proj_index":   i,
					"bullet_index": j,
					"technologies": entry.Technologies,
					"link":         entry.Link,
				},
			})
			emitted = true
		}
		if emitted {
			continue
		}

		description := strings.TrimSpace(entry.Description)
		if description == "" {
			continue
		}
		text := description
		if entry.Name != "" {
			text = entry.Name + " - " + description
		}

		chunks = append(chunks, core.Chunk{
			RecordId: recordID,
			Section:  core.SectionProjects,
			Text:     text,
			Metadata: map[string]any{
				"type":         "project_description",
				"project_name": entry.Name,
				"proj_index":   i,
				"technologies": entry.Technologies,
				"link":         entry.Link,
			},
		})
	}
	return chunks
}

// joinParts joins the non-empty parts with " - ".
func joinParts(parts []string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " - ")
}

// sectionName normalizes an extra section's name into the section
// vocabulary: lowercase with underscores. Empty names fall back to
// "additional".
func sectionName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		return "additional"
	}
	return name
}
