package server_test

import (
	"testing"

	"enum-registry/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     bool
	}{
		{"Turkish", "tr", true},
		{"English", "en", true},
		{"Region", "en-US", true},
		{"Invalid", "not a language", false},
		{"TooLong", "en-US-x-private", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{DefaultLanguage: tt.language}
			assert.Equal(t, tt.want, c.IsValidLanguage())
		})
	}
}

func TestConfig_Language(t *testing.T) {
	assert.Equal(t, "en", server.Config{DefaultLanguage: "en"}.Language())
	assert.Equal(t, server.FallbackLanguage, server.Config{}.Language())
	assert.Equal(t, server.FallbackLanguage, server.Config{DefaultLanguage: "??"}.Language())
}
