package tokenize_test

import (
	"reflect"
	"testing"

	"wordbag/internal/tokenize"
)

func TestWordTokenize(t *testing.T) {
	tests := []struct {
		name string
		opts tokenize.Options
		text string
		want []string
	}{
		{
			name: "splits on punctuation and lowercases",
			opts: tokenize.DefaultOptions(),
			text: "Call me Ishmael. Some years ago—never mind how long",
			want: []string{"call", "me", "ishmael", "some", "years", "ago", "never", "mind", "how", "long"},
		},
		{
			name: "drops single characters",
			opts: tokenize.DefaultOptions(),
			text: "I saw a cat, and a dog",
			want: []string{"saw", "cat", "and", "dog"},
		},
		{
			name: "keeps digits and underscores",
			opts: tokenize.DefaultOptions(),
			text: "chapter_12 in 1851 or 7",
			want: []string{"chapter_12", "in", "1851", "or"},
		},
		{
			name: "apostrophes and hyphens split words",
			opts: tokenize.DefaultOptions(),
			text: "don't well-known",
			want: []string{"don", "well", "known"},
		},
		{
			name: "unicode letters are word characters",
			opts: tokenize.DefaultOptions(),
			text: "Über café — ÑANDÚ",
			want: []string{"über", "café", "ñandú"},
		},
		{
			name: "case preserved when lowercase disabled",
			opts: tokenize.Options{MinLength: 2},
			text: "Moby Dick",
			want: []string{"Moby", "Dick"},
		},
		{
			name: "min length counts runes",
			opts: tokenize.Options{Lowercase: true, MinLength: 4},
			text: "the whale über alles",
			want: []string{"whale", "über", "alles"},
		},
		{
			name: "nfc joins combining accents",
			opts: tokenize.Options{Lowercase: true, MinLength: 2, NormalizeUnicode: true},
			text: "café",
			want: []string{"café"},
		},
		{
			name: "combining accents split without nfc",
			opts: tokenize.DefaultOptions(),
			text: "cafés",
			want: []string{"cafe"},
		},
		{
			name: "empty document",
			opts: tokenize.DefaultOptions(),
			text: " \n\t ,. ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize.NewWord(tt.opts).Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNewWordDefaultsMinLength(t *testing.T) {
	w := tokenize.NewWord(tokenize.Options{})
	if got := w.Options().MinLength; got != tokenize.DefaultMinLength {
		t.Fatalf("MinLength = %d, want %d", got, tokenize.DefaultMinLength)
	}
}

func TestSetDeduplicates(t *testing.T) {
	set := tokenize.Set(tokenize.NewWord(tokenize.DefaultOptions()), "Banana banana BANANA apple")
	if len(set) != 2 {
		t.Fatalf("expected 2 distinct tokens, got %v", set)
	}
	for _, want := range []string{"banana", "apple"} {
		if _, ok := set[want]; !ok {
			t.Fatalf("missing %q in %v", want, set)
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	var tok tokenize.Tokenizer = tokenize.Func(func(text string) []string { return []string{text} })
	if got := tok.Tokenize("x"); len(got) != 1 || got[0] != "x" {
		t.Fatalf("unexpected tokens %q", got)
	}
}
