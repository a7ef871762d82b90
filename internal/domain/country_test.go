package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Netherlands", expected: "NL"},
		{input: "  the netherlands ", expected: "NL"},
		{input: "nl", expected: "NL"},
		{input: "USA", expected: "US"},
		{input: "United States of America", expected: "US"},
		{input: "England", expected: "GB"},
		{input: "Brasil", expected: "BR"},
		{input: "xx", expected: "XX"},
		{input: "Atlantis", expected: "ATLANTIS"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCountry(tt.input))
		})
	}
}
