package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "routined.db"
)

type Keymap struct {
	Quit     string `toml:"quit"`
	Today    string `toml:"today"`
	Calendar string `toml:"calendar"`
	Stats    string `toml:"stats"`
	Settings string `toml:"settings"`
	Toggle   string `toml:"toggle"`
	Up       string `toml:"up"`
	Down     string `toml:"down"`
	PrevDay  string `toml:"prev_day"`
	NextDay  string `toml:"next_day"`
	Help     string `toml:"help"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	DefaultPeriod string `toml:"default_period"`
	Keys          Keymap `toml:"keys"`
}

// LoadOrCreate reads the TOML config at path, writing the defaults first if
// the file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.DefaultPeriod == "" {
		cfg.DefaultPeriod = "days"
	}
	return cfg, nil
}

// DefaultPath is the config location under the user config dir, falling back
// to the working directory when the home lookup fails.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(base, "routined", DefaultConfigFileName)
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:        DefaultDBName,
		DefaultPeriod: "days",
		Keys: Keymap{
			Quit:     "q",
			Today:    "1",
			Calendar: "2",
			Stats:    "3",
			Settings: "4",
			Toggle:   " ",
			Up:       "k",
			Down:     "j",
			PrevDay:  "h",
			NextDay:  "l",
			Help:     "?",
		},
	}
}
