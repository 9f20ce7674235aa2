package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/storage"
)

var (
	ErrInvalidDate = errors.New("engine: invalid date key")
	ErrUnknownTask = errors.New("engine: task not in schedule")
)

// catchUpLimit bounds how many past days a single catch-up will close.
const catchUpLimit = 3660

// Service is the injected state handle owning schedule, logs, streak and
// settings. All engine operations run to completion on the caller's
// goroutine; persistence happens after each in-memory commit and its failure
// never rolls state back.
type Service struct {
	repo     storage.Repository
	now      func() time.Time
	schedule model.Schedule
	logs     model.LogMap
	streak   model.StreakState
	settings model.Settings

	subscribers []func()
	persistErr  func(error)
}

type Option func(*Service)

// WithClock overrides the wall clock, used by tests and by "today" queries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPersistErrorHandler installs the host's sink for persistence failures.
func WithPersistErrorHandler(fn func(error)) Option {
	return func(s *Service) { s.persistErr = fn }
}

// NewService builds a service around repo. A nil repo keeps all state in
// memory, which the tests rely on.
func NewService(repo storage.Repository, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		now:        time.Now,
		schedule:   model.DefaultSchedule(),
		logs:       make(model.LogMap),
		streak:     model.DefaultStreak(),
		settings:   model.DefaultSettings(),
		persistErr: func(error) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load pulls every state kind from the repository, defaulting any missing
// piece: bundled schedule, empty logs, zero streak, threshold 80.
func (s *Service) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	schedule, err := s.repo.LoadSchedule(ctx)
	switch {
	case err == nil:
		s.schedule = schedule
	case errors.Is(err, storage.ErrNotFound):
		s.schedule = model.DefaultSchedule()
	default:
		return fmt.Errorf("load schedule: %w", err)
	}

	logs, err := s.repo.LoadLogs(ctx)
	switch {
	case err == nil:
		s.logs = logs
	case errors.Is(err, storage.ErrNotFound):
		s.logs = make(model.LogMap)
	default:
		return fmt.Errorf("load logs: %w", err)
	}

	streak, err := s.repo.LoadStreak(ctx)
	switch {
	case err == nil:
		if streak.FreezeLedger == nil {
			streak.FreezeLedger = []string{}
		}
		s.streak = streak
	case errors.Is(err, storage.ErrNotFound):
		s.streak = model.DefaultStreak()
	default:
		return fmt.Errorf("load streak: %w", err)
	}

	settings, err := s.repo.LoadSettings(ctx)
	switch {
	case err == nil:
		s.settings = settings
	case errors.Is(err, storage.ErrNotFound):
		s.settings = model.DefaultSettings()
	default:
		return fmt.Errorf("load settings: %w", err)
	}
	return nil
}

// Subscribe registers a callback invoked after every mutation.
func (s *Service) Subscribe(fn func()) {
	if fn != nil {
		s.subscribers = append(s.subscribers, fn)
	}
}

func (s *Service) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Today is the current local calendar date key.
func (s *Service) Today() string {
	return model.FormatDay(s.now())
}

func (s *Service) Schedule() model.Schedule {
	return s.schedule.Clone()
}

func (s *Service) Logs() model.LogMap {
	return s.logs.Clone()
}

// Log returns the log for date, or an empty log when none exists yet.
func (s *Service) Log(date string) (model.DailyLog, bool) {
	log, ok := s.logs[date]
	if !ok {
		return model.NewDailyLog(date, s.now()), false
	}
	return log, true
}

func (s *Service) Streak() model.StreakState {
	out := s.streak
	out.FreezeLedger = append([]string{}, s.streak.FreezeLedger...)
	return out
}

func (s *Service) Settings() model.Settings {
	return s.settings
}

// Evaluate scores date's log against the current schedule and threshold.
// Dates without a log evaluate as an empty day.
func (s *Service) Evaluate(date string) Evaluation {
	if !model.IsValidDay(date) {
		return Evaluation{}
	}
	log, _ := s.Log(date)
	return EvaluateDay(log, s.schedule, s.settings.CompletionThreshold)
}

// SetSchedule replaces the whole schedule. Logs and streak are untouched;
// old logs keep referencing removed task ids and are tolerated everywhere.
func (s *Service) SetSchedule(ctx context.Context, schedule model.Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	s.schedule = schedule.Clone()
	s.persistSchedule(ctx)
	s.notify()
	return nil
}

// ResetSchedule restores the bundled default schedule.
func (s *Service) ResetSchedule(ctx context.Context) {
	s.schedule = model.DefaultSchedule()
	s.persistSchedule(ctx)
	s.notify()
}

// UpdateSettings applies a partial settings update.
func (s *Service) UpdateSettings(ctx context.Context, patch model.SettingsPatch) error {
	next := patch.Apply(s.settings)
	if err := next.Validate(); err != nil {
		return err
	}
	s.settings = next
	s.persistSettings(ctx)
	s.notify()
	return nil
}

// ToggleTask flips taskID in date's log, creating the log lazily, then runs
// the streak transition for the new day state. It is the sole streak-growth
// trigger. Toggling the same task twice restores the prior log and produces
// no net streak change.
func (s *Service) ToggleTask(ctx context.Context, date, taskID string) (Evaluation, error) {
	if !model.IsValidDay(date) {
		return Evaluation{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	log, exists := s.logs[date]
	if !exists {
		log = model.NewDailyLog(date, s.now())
	}
	if _, known := s.schedule.TaskByID(taskID); !known && !log.Completed(taskID) {
		return Evaluation{}, fmt.Errorf("%w: %q", ErrUnknownTask, taskID)
	}

	s.logs[date] = log.Toggle(taskID, s.now())
	eval := EvaluateDay(s.logs[date], s.schedule, s.settings.CompletionThreshold)
	if eval.IsKept {
		next := recordKeptDay(s.streak, s.settings, date)
		if next.LastStreakDate != s.streak.LastStreakDate || next.CurrentStreak != s.streak.CurrentStreak {
			s.streak = next
			s.persistStreak(ctx)
		}
	}
	s.persistLogs(ctx)
	s.notify()
	return eval, nil
}

// CloseDay confirms date as past and applies the breakage transition: a
// missed day beyond the last counted one zeroes the current streak unless a
// freeze could still bridge it on the following day.
func (s *Service) CloseDay(ctx context.Context, date string) error {
	if !model.IsValidDay(date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	log, _ := s.Log(date)
	kept := IsStreakKept(log, s.schedule, s.settings.CompletionThreshold)
	next := closeDay(s.streak, s.settings, date, kept)
	if next.CurrentStreak != s.streak.CurrentStreak || next.LastClosedDate != s.streak.LastClosedDate {
		s.streak.CurrentStreak = next.CurrentStreak
		s.streak.LastClosedDate = next.LastClosedDate
		s.persistStreak(ctx)
		s.notify()
	}
	return nil
}

// CatchUp closes every unclosed date strictly before today, oldest first.
// It anchors on the last closed date, falling back to the last streak date,
// and returns how many days were closed.
func (s *Service) CatchUp(ctx context.Context) (int, error) {
	today := s.Today()
	yesterday, err := model.AddDays(today, -1)
	if err != nil {
		return 0, err
	}

	start := ""
	switch {
	case s.streak.LastClosedDate != "":
		start, err = model.AddDays(s.streak.LastClosedDate, 1)
	case s.streak.LastStreakDate != "":
		start, err = model.AddDays(s.streak.LastStreakDate, 1)
	default:
		// Nothing ever counted or closed: anchor at yesterday so future
		// sessions have a close horizon.
		if s.streak.LastClosedDate != yesterday {
			s.streak.LastClosedDate = yesterday
			s.persistStreak(ctx)
		}
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	closed := 0
	for date := start; date <= yesterday && closed < catchUpLimit; {
		if err := s.CloseDay(ctx, date); err != nil {
			return closed, err
		}
		closed++
		date, err = model.AddDays(date, 1)
		if err != nil {
			return closed, err
		}
	}
	return closed, nil
}

// ExportBackup snapshots all state kinds into the interop document.
func (s *Service) ExportBackup() storage.BackupDocument {
	return storage.BackupDocument{
		Schedule: s.Schedule(),
		Logs:     s.Logs(),
		Settings: s.settings,
		Streak:   s.Streak(),
	}
}

// ImportBackup replaces all state kinds from a backup document.
func (s *Service) ImportBackup(ctx context.Context, doc storage.BackupDocument) error {
	if err := doc.Schedule.Validate(); err != nil {
		return err
	}
	if err := doc.Settings.Validate(); err != nil {
		return err
	}
	s.schedule = doc.Schedule.Clone()
	s.logs = doc.Logs.Clone()
	s.streak = doc.Streak
	if s.streak.FreezeLedger == nil {
		s.streak.FreezeLedger = []string{}
	}
	s.settings = doc.Settings
	s.persistSchedule(ctx)
	s.persistLogs(ctx)
	s.persistStreak(ctx)
	s.persistSettings(ctx)
	s.notify()
	return nil
}

func (s *Service) persistSchedule(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveSchedule(ctx, s.schedule); err != nil {
		s.persistErr(fmt.Errorf("persist schedule: %w", err))
	}
}

func (s *Service) persistLogs(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveLogs(ctx, s.logs); err != nil {
		s.persistErr(fmt.Errorf("persist logs: %w", err))
	}
}

func (s *Service) persistStreak(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveStreak(ctx, s.streak); err != nil {
		s.persistErr(fmt.Errorf("persist streak: %w", err))
	}
}

func (s *Service) persistSettings(ctx context.Context) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveSettings(ctx, s.settings); err != nil {
		s.persistErr(fmt.Errorf("persist settings: %w", err))
	}
}
