package model

import (
	"errors"
	"fmt"
)

var ErrInvalidThreshold = errors.New("model: completion threshold must be between 0 and 100")

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}

// Settings holds the user-tunable knobs. Only CompletionThreshold and
// StreakFreezeEnabled affect the engine; Theme is a view concern.
type Settings struct {
	CompletionThreshold int   `json:"completionThreshold"`
	StreakFreezeEnabled bool  `json:"streakFreezeEnabled"`
	Theme               Theme `json:"theme"`
}

func (s Settings) Validate() error {
	if s.CompletionThreshold < 0 || s.CompletionThreshold > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidThreshold, s.CompletionThreshold)
	}
	if !s.Theme.IsValid() {
		return fmt.Errorf("model: invalid theme %q", s.Theme)
	}
	return nil
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	CompletionThreshold *int
	StreakFreezeEnabled *bool
	Theme               *Theme
}

// Apply merges the patch over s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	out := s
	if p.CompletionThreshold != nil {
		out.CompletionThreshold = *p.CompletionThreshold
	}
	if p.StreakFreezeEnabled != nil {
		out.StreakFreezeEnabled = *p.StreakFreezeEnabled
	}
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	return out
}

func DefaultSettings() Settings {
	return Settings{
		CompletionThreshold: 80,
		StreakFreezeEnabled: true,
		Theme:               ThemeDark,
	}
}
