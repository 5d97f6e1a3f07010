package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-u", "https://example.com", "-x", "1"},
			allowed: []string{"-u"},
			want:    []string{"-u", "https://example.com"},
		},
		{
			name:    "inline value kept",
			args:    []string{"--base-url=https://example.com", "--other=2"},
			allowed: []string{"--base-url"},
			want:    []string{"--base-url=https://example.com"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-z", "9"},
			allowed: []string{"-u"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-v", "-u", "x"},
			allowed: []string{"-v", "-u"},
			want:    []string{"-v", "-u", "x"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-u"},
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
