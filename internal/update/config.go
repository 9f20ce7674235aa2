package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	RolloverBuffer int
	DefaultPeriod  string
	CatchUpOnStart bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		RolloverBuffer: 64,
		DefaultPeriod:  "days",
		CatchUpOnStart: true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("ROUTINED_ROLLOVER_BUFFER"); ok && v > 0 {
		cfg.RolloverBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("ROUTINED_DEFAULT_PERIOD")); v != "" {
		cfg.DefaultPeriod = v
	}
	if v, ok := getEnvBool("ROUTINED_CATCHUP_ON_START"); ok {
		cfg.CatchUpOnStart = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
