package mock

import (
	"context"
	"strings"

	"github.com/semcv/semcv/core"
)

// MockStructurer is a test double for ai.Structurer.
// It allows custom behavior injection via function fields.
type MockStructurer struct {
	// StructureFunc is called by Structure if set.
	// If nil, uses default line-based parsing.
	StructureFunc func(ctx context.Context, rawText string) (core.StructuredRecord, error)

	callCount int
}

// NewMockStructurer creates a mock structurer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockStructurer().
func NewMockStructurer() *MockStructurer {
	return &MockStructurer{}
}

// Structure produces a minimal structured record from raw text.
// Default behavior: the first non-empty line becomes the contact name and
// the whole text becomes the summary.
func (m *MockStructurer) Structure(ctx context.Context, rawText string) (core.StructuredRecord, error) {
	m.callCount++

	if m.StructureFunc != nil {
		return m.StructureFunc(ctx, rawText)
	}

	record := core.StructuredRecord{
		Summary: core.Summary{Text: strings.TrimSpace(rawText)},
	}
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			record.Contact.Name = line
			break
		}
	}
	return record, nil
}

// CallCount returns the number of times Structure was called.
func (m *MockStructurer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockStructurer) Reset() {
	m.callCount = 0
	m.StructureFunc = nil
}
