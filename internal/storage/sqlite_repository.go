package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/routined/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

const (
	kindSchedule = "schedule"
	kindLogs     = "logs"
	kindStreak   = "streak"
	kindSettings = "settings"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// DB exposes the underlying handle for migrations.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) LoadSchedule(ctx context.Context) (model.Schedule, error) {
	var out model.Schedule
	if err := r.loadKind(ctx, kindSchedule, &out); err != nil {
		return model.Schedule{}, err
	}
	return out, nil
}

func (r *SQLiteRepository) SaveSchedule(ctx context.Context, in model.Schedule) error {
	return r.saveKind(ctx, kindSchedule, in)
}

func (r *SQLiteRepository) LoadLogs(ctx context.Context) (model.LogMap, error) {
	out := make(model.LogMap)
	if err := r.loadKind(ctx, kindLogs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteRepository) SaveLogs(ctx context.Context, in model.LogMap) error {
	return r.saveKind(ctx, kindLogs, in)
}

func (r *SQLiteRepository) LoadStreak(ctx context.Context) (model.StreakState, error) {
	var out model.StreakState
	if err := r.loadKind(ctx, kindStreak, &out); err != nil {
		return model.StreakState{}, err
	}
	return out, nil
}

func (r *SQLiteRepository) SaveStreak(ctx context.Context, in model.StreakState) error {
	return r.saveKind(ctx, kindStreak, in)
}

func (r *SQLiteRepository) LoadSettings(ctx context.Context) (model.Settings, error) {
	var out model.Settings
	if err := r.loadKind(ctx, kindSettings, &out); err != nil {
		return model.Settings{}, err
	}
	return out, nil
}

func (r *SQLiteRepository) SaveSettings(ctx context.Context, in model.Settings) error {
	return r.saveKind(ctx, kindSettings, in)
}

func (r *SQLiteRepository) loadKind(ctx context.Context, kind string, dest any) error {
	row := r.db.QueryRowContext(ctx, `SELECT payload FROM app_state WHERE kind = ?`, kind)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return fmt.Errorf("decode %s payload: %w", kind, err)
	}
	return nil
}

func (r *SQLiteRepository) saveKind(ctx context.Context, kind string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", kind, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO app_state (kind, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(kind) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		kind, string(payload), time.Now().UTC().Format(sqliteTimeLayout),
	)
	return err
}
