package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/iamasit07/connectx/internal/domain"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

const DefaultPlayers = "Red:red,Yellow:yellow"

type Config struct {
	Rows           int
	Columns        int
	InARow         int
	PlayersSpec    string
	InclusiveBound bool
	ContractChecks bool
	LogLevel       string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Rows:           GetEnvAsInt("CONNECTX_ROWS", domain.DefaultRows),
		Columns:        GetEnvAsInt("CONNECTX_COLUMNS", domain.DefaultColumns),
		InARow:         GetEnvAsInt("CONNECTX_IN_A_ROW", domain.DefaultInARow),
		PlayersSpec:    GetEnv("CONNECTX_PLAYERS", DefaultPlayers),
		InclusiveBound: GetEnvAsBool("CONNECTX_INCLUSIVE_BOUND", false),
		ContractChecks: GetEnvAsBool("CONNECTX_CONTRACT_CHECKS", true),
		LogLevel:       GetEnv("CONNECTX_LOG_LEVEL", "info"),
	}

	return AppConfig
}

// Players parses PlayersSpec, a comma separated list of name:color pairs.
// A missing color takes the next unused one from the palette.
func (c *Config) Players() ([]domain.Player, error) {
	return ParsePlayers(c.PlayersSpec)
}

func ParsePlayers(spec string) ([]domain.Player, error) {
	type entry struct {
		raw, name string
		color     domain.Color
	}

	// explicit colors are reserved first so defaults never collide with them
	used := make(map[domain.Color]bool)
	var entries []entry
	for _, raw := range strings.Split(spec, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, colorName, hasColor := strings.Cut(raw, ":")
		e := entry{raw: raw, name: strings.TrimSpace(name)}
		if hasColor {
			color, ok := domain.ColorByName(strings.ToLower(strings.TrimSpace(colorName)))
			if !ok {
				return nil, errors.Errorf("unknown color %q for player %q", colorName, e.name)
			}
			e.color = color
			used[color] = true
		}
		entries = append(entries, e)
	}

	players := make([]domain.Player, 0, len(entries))
	for _, e := range entries {
		if e.color.IsNone() {
			e.color = nextFreeColor(used)
			if e.color.IsNone() {
				return nil, errors.Errorf("no color left for player %q", e.name)
			}
			used[e.color] = true
		}

		p, err := domain.NewPlayer(e.name, domain.NewDisc(e.color))
		if err != nil {
			return nil, errors.Wrapf(err, "player entry %q", e.raw)
		}
		players = append(players, p)
	}

	return players, nil
}

func nextFreeColor(used map[domain.Color]bool) domain.Color {
	for _, c := range domain.Palette {
		if !used[c] {
			return c
		}
	}
	return domain.NoColor
}

// GameOptions turns the bound policy into domain options.
func (c *Config) GameOptions() []domain.Option {
	if c.InclusiveBound {
		return []domain.Option{domain.WithInclusiveInARowBound()}
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logx.Errorf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		logx.Errorf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
