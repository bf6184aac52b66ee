package normalize

import "testing"

func TestQuestion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase and punctuation", "Hello, World!!", "hello world"},
		{"collapse spaces", "  multiple   spaces  ", "multiple spaces"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"already normalized", "what is the capital of france", "what is the capital of france"},
		{"tabs and newlines collapse", "one\ttwo\nthree", "one two three"},
		{"apostrophes removed", "Qu'est-ce que C'EST?", "questce que cest"},
		{"all punctuation", "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", ""},
		{"digits kept", "What is 2+2?", "what is 22"},
		{"unicode letters lowered, unicode punctuation kept", "Écoute — MOI", "écoute — moi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Question(tt.input); got != tt.want {
				t.Errorf("Question(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuestionIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, World!!",
		"  multiple   spaces  ",
		"",
		"Mixed CASE with 123 numbers & symbols!",
		"already normalized text",
	}

	for _, in := range inputs {
		once := Question(in)
		twice := Question(once)
		if once != twice {
			t.Errorf("Question not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
