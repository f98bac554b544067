package corpus_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"wordbag/internal/corpus"
	"wordbag/internal/logging"
)

func TestReadTitles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
		want  []string
	}{
		{"exact count", "a\nb\nc\n", 3, []string{"a", "b", "c"}},
		{"extra lines ignored", "a\nb\nc\nd\n", 2, []string{"a", "b"}},
		{"missing final newline", "a\nb", 2, []string{"a", "b"}},
		{"crlf stripped", "moby dick\r\nemma\r\n", 2, []string{"moby dick", "emma"}},
		{"until eof", "a\nb\nc\n", 0, []string{"a", "b", "c"}},
		{"blank line is a title", "a\n\nc\n", 3, []string{"a", "", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := corpus.ReadTitles(strings.NewReader(tt.input), tt.count)
			if err != nil {
				t.Fatalf("ReadTitles: %v", err)
			}
			if !reflect.DeepEqual(corpus.Strings(got), tt.want) {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestReadTitlesUnderflow(t *testing.T) {
	for _, input := range []string{"", "a\nb\n"} {
		_, err := corpus.ReadTitles(strings.NewReader(input), 6)
		if !errors.Is(err, corpus.ErrInputUnderflow) {
			t.Fatalf("input %q: expected ErrInputUnderflow, got %v", input, err)
		}
	}
	if _, err := corpus.ReadTitles(strings.NewReader(""), 0); !errors.Is(err, corpus.ErrInputUnderflow) {
		t.Fatalf("empty input with count 0: expected ErrInputUnderflow, got %v", err)
	}
}

func TestLoaderLoadsInOrder(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, dir, "b", "banana cherry")
	writeBook(t, dir, "a", "apple banana")

	loader := corpus.NewLoader(pathIn(dir), logging.NewNop())
	c, err := loader.Load(context.Background(), corpus.TitlesFromArgs([]string{"b", "a"}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", c.Len())
	}
	if got := corpus.Strings(c.Titles()); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Fatalf("unexpected order %q", got)
	}
	if c.Document(1).Text != "apple banana" {
		t.Fatalf("unexpected text %q", c.Document(1).Text)
	}
	if c.Bytes() != len("banana cherry")+len("apple banana") {
		t.Fatalf("unexpected byte total %d", c.Bytes())
	}
}

func TestLoaderMissingBook(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, dir, "a", "apple")

	loader := corpus.NewLoader(pathIn(dir), nil)
	_, err := loader.Load(context.Background(), corpus.TitlesFromArgs([]string{"a", "missing"}))
	if !errors.Is(err, corpus.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("error should name the title: %v", err)
	}
}

func TestLoaderHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loader := corpus.NewLoader(pathIn(t.TempDir()), nil)
	if _, err := loader.Load(ctx, corpus.TitlesFromArgs([]string{"a"})); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDocumentsReturnsCopy(t *testing.T) {
	c := corpus.New(corpus.Document{Title: "a", Text: "x"})
	docs := c.Documents()
	docs[0].Text = "changed"
	if c.Document(0).Text != "x" {
		t.Fatal("corpus must not be mutated through Documents")
	}
}

func writeBook(t *testing.T, dir, title, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, title+".txt"), []byte(text), 0o644); err != nil {
		t.Fatalf("write book: %v", err)
	}
}

func pathIn(dir string) corpus.PathFunc {
	return func(title string) string { return filepath.Join(dir, title+".txt") }
}
