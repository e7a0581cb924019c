package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"http://localhost:3000", "https://courses.example.com"}

	tests := []struct {
		origin string
		want   bool
	}{
		{"http://localhost:3000", true},
		{"https://courses.example.com", true},
		{"https://my-preview.workers.dev", true},
		{"https://anything-at-all.workers.dev", true},
		{"https://evil.example.org", false},
		{"http://localhost:4000", false},
		{"https://workers.dev.evil.com", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OriginAllowed(allowed, tt.origin), "origin %q", tt.origin)
	}
}

func TestOriginAllowedEmptyList(t *testing.T) {
	assert.False(t, OriginAllowed(nil, "https://courses.example.com"))
	assert.True(t, OriginAllowed(nil, "https://preview.workers.dev"))
}
