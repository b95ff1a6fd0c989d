package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple words", "hello world", []string{"hello", "world"}},
		{"multiple spaces between words", "hello   world", []string{"hello", "world"}},
		{"leading/trailing spaces", "  hello world  ", []string{"hello", "world"}},
		{"case preserved", "Hello WORLD", []string{"Hello", "WORLD"}},
		{"punctuation kept", "hello, world!", []string{"hello,", "world!"}},
		{"tabs and newlines", "a\tb\nc", []string{"a", "b", "c"}},
		{"whitespace only", " \t \n", []string{}},
		{"numbers", "1999 film", []string{"1999", "film"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUniqueTerms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"no duplicates", "the cat sat", []string{"the", "cat", "sat"}},
		{"duplicates collapse", "the cat the mat", []string{"the", "cat", "mat"}},
		{"all duplicates", "go go go", []string{"go"}},
		{"case sensitive terms", "The the", []string{"The", "the"}},
		{"punctuation makes distinct terms", "cat cat.", []string{"cat", "cat."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueTerms(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UniqueTerms(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
