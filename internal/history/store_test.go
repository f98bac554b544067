package history_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"wordbag/internal/history"
	"wordbag/internal/testsupport"
)

func TestRecordAndList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := history.NewRun("build", base)
	first.Books = []string{"Emma", "Persuasion"}
	first.TermCount = 42
	first.Output = "/tmp/vocabulary.csv"
	first.Finish(base.Add(1500*time.Millisecond), nil)

	second := history.NewRun("count", base.Add(time.Minute))
	second.Finish(base.Add(time.Minute+time.Second), errors.New("missing book"))

	for _, run := range []history.Run{first, second} {
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	runs, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second.ID {
		t.Fatalf("expected newest run first, got %s", runs[0].Command)
	}
	if runs[0].Status != history.StatusFailed || runs[0].Error != "missing book" {
		t.Fatalf("unexpected failed run: %#v", runs[0])
	}
	if runs[0].Books == nil || len(runs[0].Books) != 0 {
		t.Fatalf("expected empty book list, got %#v", runs[0].Books)
	}

	got := runs[1]
	if !reflect.DeepEqual(got.Books, first.Books) || got.TermCount != 42 || got.Output != first.Output {
		t.Fatalf("unexpected run: %#v", got)
	}
	if got.Duration != 1500*time.Millisecond {
		t.Fatalf("duration = %s", got.Duration)
	}
	if !got.StartedAt.Equal(base) {
		t.Fatalf("started_at = %s", got.StartedAt)
	}

	limited, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 run, got %d", len(limited))
	}
}

func TestGetAndClear(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	run := history.NewRun("build", time.Now())
	run.Finish(time.Now(), nil)
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record: %v", err)
	}

	fetched, err := store.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetched == nil || fetched.Command != "build" {
		t.Fatalf("unexpected run: %#v", fetched)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d", removed)
	}
	missing, err := store.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get after clear: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil, got %#v", missing)
	}
}

func TestRecordRequiresID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	if err := store.Record(context.Background(), history.Run{Command: "build"}); err == nil {
		t.Fatal("expected error for run without id")
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := history.OpenPath(ctx, path)
	if err != nil {
		t.Fatalf("OpenPath: %v", err)
	}
	run := history.NewRun("build", time.Now())
	if err := store.Record(ctx, run); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := history.OpenPath(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.List(ctx, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID {
		t.Fatalf("unexpected runs after reopen: %#v", runs)
	}
}
