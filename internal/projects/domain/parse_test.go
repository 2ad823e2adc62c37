package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{"lod with prefix", "LOD 350", intPtr(350)},
		{"plain digits", "15000", intPtr(15000)},
		{"digits with separators", "15,000 sqft", intPtr(15000)},
		{"no digits", "not applicable", nil},
		{"empty", "", nil},
		{"mixed text", "LOD", nil},
		{"zero", "LOD 0", intPtr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNumeric(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseNumeric_NeverZeroForNonMatching(t *testing.T) {
	// Absent must be nil, not a zero value.
	assert.Nil(t, ParseNumeric("unknown"))
}

func TestNewID_Format(t *testing.T) {
	id, err := NewID()
	require.NoError(t, err)
	assert.Regexp(t, `^prj-\d{5}-\d{4}$`, id)
}

func intPtr(n int) *int { return &n }
