package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abhisek/versemind/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestProgressRepo_LoadMissing(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()

	rec, err := repo.Load(context.Background(), "versemind")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec != nil {
		t.Errorf("Load = %+v, want nil for a fresh store", rec)
	}
}

func TestProgressRepo_SaveLoadRoundTrip(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	ctx := context.Background()

	rec := progress.NewRecord()
	rec.Decks["112"] = map[string]progress.Status{
		"112:1": progress.StatusMastered,
		"112:2": progress.StatusLearning,
	}
	rec.History = []progress.DayLog{{Date: "2025-03-10", MasteredCount: 1}}
	rec.Streak = progress.StreakRecord{Current: 3, Longest: 5, LastStudyDate: "2025-03-10"}

	if err := repo.Save(ctx, "versemind", rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Load(ctx, "versemind")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil {
		t.Fatal("Load = nil after Save")
	}
	if got.Decks["112"]["112:1"] != progress.StatusMastered {
		t.Errorf("status = %q, want mastered", got.Decks["112"]["112:1"])
	}
	if got.Streak != rec.Streak {
		t.Errorf("Streak = %+v, want %+v", got.Streak, rec.Streak)
	}
	if len(got.History) != 1 || got.History[0] != rec.History[0] {
		t.Errorf("History = %+v, want %+v", got.History, rec.History)
	}
}

func TestProgressRepo_SaveReplaces(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	ctx := context.Background()

	first := progress.NewRecord()
	first.Streak.Current = 1
	if err := repo.Save(ctx, "versemind", first); err != nil {
		t.Fatal(err)
	}

	second := progress.NewRecord()
	second.Streak.Current = 2
	if err := repo.Save(ctx, "versemind", second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx, "versemind")
	if err != nil {
		t.Fatal(err)
	}
	if got.Streak.Current != 2 {
		t.Errorf("Current = %d, want 2 (save replaces)", got.Streak.Current)
	}
}

func TestProgressRepo_NamespacesIsolated(t *testing.T) {
	repo := openTestStore(t).ProgressRepo()
	ctx := context.Background()

	rec := progress.NewRecord()
	rec.Streak.Current = 9
	if err := repo.Save(ctx, "alpha", rec); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx, "beta")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("Load(beta) = %+v, want nil", got)
	}
}

func TestProgressRepo_CorruptBlobErrors(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	_, err := st.DB().ExecContext(ctx, `
		INSERT INTO progress_records (namespace, data, updated_at)
		VALUES ('versemind', 'not json', CURRENT_TIMESTAMP)`)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := st.ProgressRepo().Load(ctx, "versemind"); err == nil {
		t.Error("Load accepted a corrupt blob, want error")
	}
}
