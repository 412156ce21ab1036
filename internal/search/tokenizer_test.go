package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"lowercases and splits", "Platform Engineering", []string{"platform", "engineering"}},
		{"runs of whitespace", "  ai \t agents\n", []string{"ai", "agents"}},
		{"single-char tokens dropped", "a b oracle", []string{"oracle"}},
		{"all tokens dropped", "a b c", []string{}},
		{"duplicates kept", "go go", []string{"go", "go"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query, 2)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
