package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{CaseName: "astar/maze", GridSize: 31 * 31, Ops: 100, Duration: 50 * time.Millisecond},
		{CaseName: "astar/maze", GridSize: 31 * 31, Ops: 100, Duration: 40 * time.Millisecond},
		{CaseName: "flowfield/rooms", GridSize: 40 * 20, Ops: 10, Duration: 8 * time.Millisecond},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first.
	if recent[0].CaseName != "flowfield/rooms" {
		t.Errorf("Most recent run = %q, expected flowfield/rooms", recent[0].CaseName)
	}
	if recent[0].Duration != 8*time.Millisecond {
		t.Errorf("Duration round-trip = %v, expected 8ms", recent[0].Duration)
	}
	if recent[0].GridSize != 800 {
		t.Errorf("GridSize round-trip = %d, expected 800", recent[0].GridSize)
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	// Same case, different per-op times; a different case that must not
	// leak into results.
	store.SaveRun(Run{CaseName: "fov/r8", GridSize: 100, Ops: 100, Duration: 100 * time.Millisecond})
	store.SaveRun(Run{CaseName: "fov/r8", GridSize: 100, Ops: 200, Duration: 100 * time.Millisecond})
	store.SaveRun(Run{CaseName: "fov/r8", GridSize: 100, Ops: 50, Duration: 100 * time.Millisecond})
	store.SaveRun(Run{CaseName: "quadtree/churn", GridSize: 100, Ops: 1, Duration: time.Microsecond})

	best, err := store.BestRuns("fov/r8", 2)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(best))
	}
	// Fastest per-op first: 200 ops in 100ms beats 100 ops in 100ms.
	if best[0].Ops != 200 || best[1].Ops != 100 {
		t.Errorf("BestRuns order = %d, %d ops, expected 200, 100", best[0].Ops, best[1].Ops)
	}
	for _, r := range best {
		if r.CaseName != "fov/r8" {
			t.Errorf("BestRuns leaked case %q", r.CaseName)
		}
	}
}

func TestStorePerOp(t *testing.T) {
	r := Run{Ops: 4, Duration: 100 * time.Millisecond}
	if got := r.PerOp(); got != 25*time.Millisecond {
		t.Errorf("PerOp() = %v, expected 25ms", got)
	}

	zero := Run{Ops: 0, Duration: time.Second}
	if got := zero.PerOp(); got != time.Second {
		t.Errorf("PerOp() with zero ops = %v, expected full duration", got)
	}
}

func TestStoreCaseNames(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{CaseName: "b-case", Ops: 1, Duration: time.Millisecond})
	store.SaveRun(Run{CaseName: "a-case", Ops: 1, Duration: time.Millisecond})
	store.SaveRun(Run{CaseName: "b-case", Ops: 1, Duration: time.Millisecond})

	names, err := store.CaseNames()
	if err != nil {
		t.Fatalf("CaseNames() failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a-case" || names[1] != "b-case" {
		t.Errorf("CaseNames() = %v, expected [a-case b-case]", names)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
