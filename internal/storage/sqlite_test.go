package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, level string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{Level: level, Score: score, Length: score + 2, Outcome: "hit_wall"}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	save(t, store, "easy", 4)
	save(t, store, "easy", 1)
	save(t, store, "easy", 9)
	save(t, store, "hard", 20)

	scores, err := store.TopScores("easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 9 || scores[1].Score != 4 || scores[2].Score != 1 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].Length != 11 || scores[0].Outcome != "hit_wall" || scores[0].Level != "easy" {
		t.Errorf("Entry fields not round-tripped: %+v", scores[0])
	}
	if scores[0].SessionID == "" {
		t.Error("SaveScore() should assign a session ID")
	}

	hard, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hard))
	}
}

func TestStoreKeepsSessionID(t *testing.T) {
	store := openTemp(t)

	id := NewSessionID()
	if _, err := store.SaveScore(ScoreEntry{SessionID: id, Level: "easy", Score: 3}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, _ := store.TopScores("easy", 1)
	if len(scores) != 1 || scores[0].SessionID != id {
		t.Errorf("expected session %s, got %+v", id, scores)
	}
}

func TestStoreRejectsMissingLevel(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 1}); err == nil {
		t.Error("SaveScore() without level should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 15; i++ {
		save(t, store, "test", i)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 14 || scores[2].Score != 12 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	scores, _ = store.TopScores("test", 0)
	if len(scores) != DefaultLimit {
		t.Errorf("Non-positive limit should use %d, got %d", DefaultLimit, len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty level, got %d", high)
	}

	save(t, store, "easy", 3)
	save(t, store, "easy", 7)
	save(t, store, "easy", 5)

	high, err = store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected high score of 7, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	save(t, store, "easy", 1)
	save(t, store, "easy", 2)
	save(t, store, "hard", 3)

	n, err := store.ClearScores("easy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 cleared rows, got %d", n)
	}

	if easy, _ := store.TopScores("easy", 10); len(easy) != 0 {
		t.Errorf("Expected 0 easy scores after clear, got %d", len(easy))
	}
	if hard, _ := store.TopScores("hard", 10); len(hard) != 1 {
		t.Error("hard scores should not be affected by clearing easy")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty level: %+v", empty)
	}

	save(t, store, "easy", 2)
	save(t, store, "easy", 6)

	stats, err := store.Stats("easy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.HighScore != 6 || stats.AvgScore != 4 || stats.MaxLength != 8 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
