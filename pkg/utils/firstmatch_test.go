package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstMatch(t *testing.T) {
	rules := []MatchRule[string]{
		{Values: []string{"experience"}, Result: "virginexp"},
		{Values: []string{"personalised", "handmade"}, Result: "noths"},
	}

	tests := []struct {
		name       string
		candidates []string
		expected   string
	}{
		{"first rule wins over later", []string{"handmade", "experience"}, "virginexp"},
		{"second rule fires", []string{"romantic", "handmade"}, "noths"},
		{"case insensitive", []string{"EXPERIENCE"}, "virginexp"},
		{"no match falls back to default", []string{"practical"}, "amazon"},
		{"empty candidates", nil, "amazon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstMatch(tt.candidates, rules, "amazon"))
		})
	}
}
