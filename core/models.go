package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is the content-addressed identifier of a stored record.
// It is the lowercase hex encoding of a 256-bit BLAKE2b digest of the raw
// text, so identical raw text always yields the same ID.
type ID string

// IDFromContent computes the deterministic ID for the given raw text.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(32, nil) // 32 bytes = 256 bits = 64 hex chars
	h.Write([]byte(text))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// Record is the canonical stored unit: one ingested CV document.
// Records are immutable after the first insert; changed raw text produces a
// new Record under a new ID.
type Record struct {
	Id         ID
	RawText    string
	Structured StructuredRecord
	Metadata   map[string]string // Free-form provenance (filename, counts, parser version)
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RecordSummary is the listing projection of a Record.
type RecordSummary struct {
	Id          ID
	DisplayName string
	CreatedAt   time.Time
}

// StructuredRecord holds the normalized section content produced by the
// text-understanding service. Each section is a closed, typed variant; the
// chunker dispatches on these fields rather than inspecting dynamic shapes.
type StructuredRecord struct {
	Summary        Summary
	Contact        Contact
	Experience     []ExperienceEntry
	Projects       []ProjectEntry
	Education      []EducationEntry
	Skills         []SkillCategory
	Leadership     []LeadershipEntry
	Certifications []CertificationEntry
	Extra          []ExtraSection
}

// Summary is the professional summary section.
type Summary struct {
	Text string
}

// Contact holds contact details. It is stored but never indexed.
type Contact struct {
	Name     string
	Email    string
	Phone    string
	Linkedin string
	Github   string
}

// ExperienceEntry is one employment entry with per-achievement bullets.
type ExperienceEntry struct {
	Company      string
	Title        string
	Location     string
	StartDate    string
	EndDate      string
	Bullets      []string
	Technologies []string
}

// ProjectEntry is one project entry.
type ProjectEntry struct {
	Name         string
	Description  string
	Technologies []string
	Link         string
	Bullets      []string
}

// EducationEntry is one education entry.
type EducationEntry struct {
	Institution string
	Degree      string
	Field       string
	GPA         string
	Location    string
	StartDate   string
	EndDate     string
}

// SkillCategory groups skills under a named category.
// Categories are an ordered slice, not a map, so chunk emission order is
// stable across runs.
type SkillCategory struct {
	Name  string
	Items []string
}

// LeadershipEntry is one leadership/volunteering entry.
type LeadershipEntry struct {
	Role         string
	Organization string
	Description  string
}

// CertificationEntry is one certification entry.
type CertificationEntry struct {
	Name   string
	Issuer string
	Date   string
}

// ExtraSection carries sections outside the fixed vocabulary: either a bare
// text blob or a list of strings, under the section's original name.
type ExtraSection struct {
	Name  string
	Text  string
	Items []string
}

// Chunk is an embeddable fragment of a record with provenance metadata.
// Chunks are ephemeral: they live between the chunker and the vector
// backend and are never persisted on their own.
type Chunk struct {
	RecordId  ID
	Section   string
	Text      string
	Metadata  map[string]any
	Embedding []float32 // nil until the embedding stage runs
}

// Chunk section vocabulary.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionEducation      = "education"
	SectionLeadership     = "leadership"
	SectionCertifications = "certifications"
)

// QueueMessage is the persisted framing of one queued event. Body carries
// the JSON wire payload; Attempts counts deliveries that ended in a
// handler failure.
type QueueMessage struct {
	Seq        uint64
	Body       []byte
	Attempts   uint32
	EnqueuedAt time.Time
}
