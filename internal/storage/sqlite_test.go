package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreOpenFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rounds.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with a file path failed: %v", err)
	}
	defer store.Close()

	if _, err := store.RecordRound(Round{Score: 1, Cause: "collision", Speed: 5, FPS: 30}); err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}
}

func TestStoreRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	scores := []int{3, 9, 1}
	for _, sc := range scores {
		if _, err := store.RecordRound(Round{Score: sc, Moves: sc * 10, Length: 5 + sc, Cause: "collision", Speed: 5, FPS: 30}); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}

	rounds, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].Score != 1 || rounds[1].Score != 9 || rounds[2].Score != 3 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}
	if rounds[1].Moves != 90 || rounds[1].Length != 14 || rounds[1].Cause != "collision" {
		t.Errorf("Round fields not stored: %+v", rounds[1])
	}
	if rounds[0].EndedAt.IsZero() {
		t.Error("EndedAt was not set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordRound(Round{Score: i, Cause: "penalty_item", Speed: 1, FPS: 1})
	}

	rounds, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 4 || rounds[1].Score != 3 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}

	all, _ := store.Recent(0)
	if len(all) != 5 {
		t.Errorf("Default limit should return all 5 rounds, got %d", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (Stats{}) {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.RecordRound(Round{Score: 2, Moves: 100, Cause: "collision"})
	store.RecordRound(Round{Score: 4, Moves: 50, Cause: "board_full"})

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 2 || st.Best != 4 || st.AvgScore != 3 || st.TotalMoves != 150 {
		t.Errorf("Unexpected stats: %+v", st)
	}

	store.RecordRound(Round{Score: 1, Moves: 10, Cause: "collision"})

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 3 || st.Best != 4 || st.TotalMoves != 160 {
		t.Errorf("Stats after a lower score: %+v", st)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.RecordRound(Round{Score: 5, Cause: "collision"})

	st, err := b.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 0 {
		t.Errorf("In-memory stores should not share rounds, got %d", st.Rounds)
	}
}
