package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/routined/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Repository persists each state kind as a whole value; every save replaces
// the previous payload for that kind.
type Repository interface {
	LoadSchedule(ctx context.Context) (model.Schedule, error)
	SaveSchedule(ctx context.Context, in model.Schedule) error

	LoadLogs(ctx context.Context) (model.LogMap, error)
	SaveLogs(ctx context.Context, in model.LogMap) error

	LoadStreak(ctx context.Context) (model.StreakState, error)
	SaveStreak(ctx context.Context, in model.StreakState) error

	LoadSettings(ctx context.Context) (model.Settings, error)
	SaveSettings(ctx context.Context, in model.Settings) error
}
