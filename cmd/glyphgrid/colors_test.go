package main

import (
	"slices"
	"testing"

	"github.com/vovakirdan/glyphgrid/internal/palette"
)

func TestParseColors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []int
		wantErr  bool
	}{
		{"names", []string{"black", "Base Blue"}, []int{0, 8}, false},
		{"numbers keep order", []string{"9", "3", "1"}, []int{8, 2, 0}, false},
		{"mixed", []string{"gelb", " 5 "}, []int{2, 4}, false},
		{"single", []string{"red"}, nil, true},
		{"duplicate", []string{"red", "5"}, nil, true},
		{"unknown", []string{"red", "teal"}, nil, true},
		{"out of range", []string{"0", "1"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := parseColors(palette.Default, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColors(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && !slices.Equal(sel.Indices(), tt.expected) {
				t.Errorf("parseColors(%v) = %v, expected %v", tt.args, sel.Indices(), tt.expected)
			}
		})
	}
}
