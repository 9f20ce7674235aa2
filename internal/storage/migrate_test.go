package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/routined/internal/model"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	ctx := context.Background()
	if err := repo.SaveSettings(ctx, model.Settings{
		CompletionThreshold: 70,
		StreakFreezeEnabled: true,
		Theme:               model.ThemeDark,
	}); err != nil {
		t.Fatalf("save after roundtrip failed: %v", err)
	}

	got, err := repo.LoadSettings(ctx)
	if err != nil {
		t.Fatalf("load after roundtrip failed: %v", err)
	}
	if got.CompletionThreshold != 70 {
		t.Fatalf("unexpected threshold after roundtrip: %d", got.CompletionThreshold)
	}
}
