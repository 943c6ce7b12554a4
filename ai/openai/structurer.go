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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/semcv/semcv/ai"
	"github.com/semcv/semcv/core"
)

// Structurer implements ai.Structurer using OpenAI-compatible chat APIs.
type Structurer struct {
	client llms.Model
	logger *slog.Logger
}

// Wire types for JSON unmarshaling. They match the schema the model is
// instructed to produce.
type wireRecord struct {
	Summary    string `json:"summary"`
	Contact    struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Linkedin string `json:"linkedin"`
		Github   string `json:"github"`
	} `json:"contact"`
	Experience []struct {
		Company      string   `json:"company"`
		Title        string   `json:"title"`
		Location     string   `json:"location"`
		StartDate    string   `json:"start_date"`
		EndDate      string   `json:"end_date"`
		Bullets      []string `json:"bullets"`
		Technologies []string `json:"technologies"`
	} `json:"experience"`
	Projects []struct {
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Technologies []string `json:"technologies"`
		Link         string   `json:"link"`
		Bullets      []string `json:"bullets"`
	} `json:"projects"`
	Education []struct {
		Institution string `json:"institution"`
		Degree      string `json:"degree"`
		Field       string `json:"field"`
		GPA         string `json:"gpa"`
		Location    string `json:"location"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
	} `json:"education"`
	Skills []struct {
		Category string   `json:"category"`
		Items    []string `json:"items"`
	} `json:"skills"`
	Leadership []struct {
		Role         string `json:"role"`
		Organization string `json:"organization"`
		Description  string `json:"description"`
	} `json:"leadership"`
	Certifications []struct {
		Name   string `json:"name"`
		Issuer string `json:"issuer"`
		Date   string `json:"date"`
	} `json:"certifications"`
	Additional []struct {
		Name  string   `json:"name"`
		Text  string   `json:"text"`
		Items []string `json:"items"`
	} `json:"additional_sections"`
}

// newStructurer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newStructurer(config *ai.Config) (*Structurer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.StructurerHost),
		openai.WithToken("none"),
		openai.WithModel(config.StructurerModel),
	)
	if err != nil {
		return nil, err
	}

	return &Structurer{
		client: client,
		logger: slog.Default().With("component", "openai-structurer"),
	}, nil
}

// NewStructurer creates a new structurer using the provided configuration.
//
// Returns ai.Structurer interface to enforce abstraction.
func NewStructurer(config *ai.Config) (ai.Structurer, error) {
	return newStructurer(config)
}

// Structure parses raw CV text into its normalized section layout using an LLM.
func (s *Structurer) Structure(ctx context.Context, rawText string) (core.StructuredRecord, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildStructuringPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(rawText),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var wire wireRecord
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			s.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return core.StructuredRecord{}, err
		}

		if len(response.Choices) < 1 {
			s.logger.Debug("no choices returned from model")
			return core.StructuredRecord{}, ErrEmptyResponse
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &wire); err != nil {
			lastErr = err
			s.logger.Warn("error parsing structurer response",
				"attempt", attempt+1,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		s.logger.Error("failed to parse structurer response after retries", "err", lastErr)
		return core.StructuredRecord{}, lastErr
	}

	return wire.toRecord(), nil
}

// toRecord converts the wire form into the domain form.
func (w wireRecord) toRecord() core.StructuredRecord {
	record := core.StructuredRecord{
		Summary: core.Summary{Text: w.Summary},
		Contact: core.Contact{
			Name:     w.Contact.Name,
			Email:    w.Contact.Email,
			Phone:    w.Contact.Phone,
			Linkedin: w.Contact.Linkedin,
			Github:   w.Contact.Github,
		},
	}

	for _, e := range w.Experience {
		record.Experience = append(record.Experience, core.ExperienceEntry{
			Company:      e.Company,
			Title:        e.Title,
			Location:     e.Location,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Bullets:      e.Bullets,
			Technologies: e.Technologies,
		})
	}
	for _, p := range w.Projects {
		record.Projects = append(record.Projects, core.ProjectEntry{
			Name:         p.Name,
			Description:  p.Description,
			Technologies: p.Technologies,
			Link:         p.Link,
			Bullets:      p.Bullets,
		})
	}
	for _, e := range w.Education {
		record.Education = append(record.Education, core.EducationEntry{
			Institution: e.Institution,
			Degree:      e.Degree,
			Field:       e.Field,
			GPA:         e.GPA,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
		})
	}
	for _, s := range w.Skills {
		record.Skills = append(record.Skills, core.SkillCategory{
			Name:  s.Category,
			Items: s.Items,
		})
	}
	for _, l := range w.Leadership {
		record.Leadership = append(record.Leadership, core.LeadershipEntry{
			Role:         l.Role,
			Organization: l.Organization,
			Description:  l.Description,
		})
	}
	for _, c := range w.Certifications {
		record.Certifications = append(record.Certifications, core.CertificationEntry{
			Name:   c.Name,
			Issuer: c.Issuer,
			Date:   c.Date,
		})
	}
	for _, a := range w.Additional {
		record.Extra = append(record.Extra, core.ExtraSection{
			Name:  a.Name,
			Text:  a.Text,
			Items: a.Items,
		})
	}

	return record
}
