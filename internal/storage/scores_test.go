package storage

import "testing"

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		key   string
		score int
	}{
		{"platformer", 100},
		{"platformer", 50},
		{"platformer", 200},
		{"platformer", 100},
		{"platformer:lvl02", 500},
	} {
		if _, err := store.SaveScore(s.key, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		key   string
		limit int
		want  []int
	}{
		{"platformer", 10, []int{200, 100, 100, 50}},
		{"platformer", 2, []int{200, 100}},
		{"platformer:lvl02", 10, []int{500}},
		{"platformer:lvl09", 10, nil},
	}

	for _, tt := range tests {
		scores, err := store.TopScores(tt.key, tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%q) failed: %v", tt.key, err)
		}
		if len(scores) != len(tt.want) {
			t.Errorf("TopScores(%q, %d) returned %d scores, expected %d", tt.key, tt.limit, len(scores), len(tt.want))
			continue
		}
		for i, s := range scores {
			if s.Score != tt.want[i] || s.GameID != tt.key {
				t.Errorf("TopScores(%q)[%d] = %+v, expected score %d", tt.key, i, s, tt.want[i])
			}
		}
	}

	// Equal scores keep insertion order
	scores, _ := store.TopScores("platformer", 10)
	if scores[1].ID > scores[2].ID {
		t.Error("tied scores should be ordered by insertion")
	}
}

func TestStoreAllScoresHasNoLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		store.SaveScore("platformer", i*10)
	}

	scores, err := store.AllScores("platformer")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 || scores[0].Score != 190 {
		t.Errorf("expected 20 scores led by 190, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("platformer"); err != nil || high != 0 {
		t.Fatalf("HighScore() on empty store = %d, %v", high, err)
	}

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveScore("platformer", 200)

	if high, _ := store.HighScore("platformer"); high != 300 {
		t.Errorf("expected high score 300, got %d", high)
	}
}

func TestStoreClearScoresKeepsOtherKeys(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("platformer", 100)
	store.SaveScore("platformer:lvl02", 300)

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("platformer", 10); len(scores) != 0 {
		t.Errorf("expected campaign scores cleared, got %d", len(scores))
	}
	if scores, _ := store.TopScores("platformer:lvl02", 10); len(scores) != 1 {
		t.Error("level scores should survive clearing the campaign")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	store.SaveScore("platformer", 100)
	store.SaveScore("platformer", 300)
	store.SaveScore("platformer:lvl02", 50)

	stats, err = store.GetGameStats("platformer")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.AvgScore != 200 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("expected LastPlayed to be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["platformer:lvl02"].HighScore != 50 {
		t.Errorf("unexpected per-key stats: %+v", all)
	}
}
