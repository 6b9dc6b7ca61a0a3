package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
		ok       bool
	}{
		{"current", "2025-03-26", CurrentProtocolVersion, true},
		{"previous", "2024-11-05", OldProtocolVersion, true},
		{"v prefix", "v2025-03-26", CurrentProtocolVersion, true},
		{"latest keyword", "latest", CurrentProtocolVersion, true},
		{"padded", " 2024-11-05 ", OldProtocolVersion, true},
		{"unsupported", "2023-01-01", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateVersion(tt.version)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	assert.Equal(t, "2025-03-26", NormalizeVersion("V2025-03-26"))
	assert.Equal(t, CurrentProtocolVersion, NormalizeVersion("current"))
	assert.Equal(t, "draft", NormalizeVersion("Draft"))
}
