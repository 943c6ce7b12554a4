package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRawText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"valid text", "Jane Doe\nSoftware Engineer", nil},
		{"empty", "", ErrEmptyRawText},
		{"whitespace only", "   \n\t  ", ErrEmptyRawText},
		{"single character", "x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRawText(tt.text)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidRecord)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	valid := IDFromContent("anything")
	assert.NoError(t, ValidateID(valid))

	assert.ErrorIs(t, ValidateID("abc"), ErrInvalidID)
	assert.ErrorIs(t, ValidateID(""), ErrInvalidID)

	// Right length, bad characters
	bad := ID("zz" + string(valid)[2:])
	assert.ErrorIs(t, ValidateID(bad), ErrInvalidID)
}

func TestValidateRecord(t *testing.T) {
	t.Run("nil record", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRecord(nil), ErrInvalidRecord)
	})

	t.Run("empty raw text", func(t *testing.T) {
		assert.ErrorIs(t, ValidateRecord(&Record{}), ErrEmptyRawText)
	})

	t.Run("valid with derived id", func(t *testing.T) {
		rec := &Record{RawText: "text", Id: IDFromContent("text")}
		assert.NoError(t, ValidateRecord(rec))
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := &Record{RawText: "text", Id: "not-a-digest"}
		assert.ErrorIs(t, ValidateRecord(rec), ErrInvalidID)
	})
}
