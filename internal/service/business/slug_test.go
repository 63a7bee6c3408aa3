package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Elit Berber", "elit-berber"},
		{"extra spaces collapse", "Elit   Berber  Salonu", "elit-berber-salonu"},
		{"special characters stripped", "Cafe & Bistro #1", "cafe-bistro-1"},
		{"turkish letters stripped", "Güzellik Salonu", "gzellik-salonu"},
		{"already a slug", "nail-studio", "nail-studio"},
		{"dashes collapse", "a -- b", "a-b"},
		{"nothing left falls back", "!!! ***", fallbackSlug},
		{"empty falls back", "", fallbackSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.in))
		})
	}
}
