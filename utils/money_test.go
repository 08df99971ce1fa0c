package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "grouped with currency sign", input: "₱12,500", want: "12500"},
		{name: "plain digits", input: "990", want: "990"},
		{name: "spaces and letters", input: "about 1 200 php", want: "1200"},
		{name: "empty", input: "", want: ""},
		{name: "no digits at all", input: "n/a", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeMoney(tc.input))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "adds grouping", input: "1250000", want: "1,250,000"},
		{name: "small value untouched", input: "990", want: "990"},
		{name: "already formatted input is renormalized", input: "12,500", want: "12,500"},
		{name: "non numeric falls back to raw", input: "n/a", want: "n/a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMoney(tc.input))
		})
	}
}
