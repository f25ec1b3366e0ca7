package main

import (
	"fmt"
	"strings"

	"github.com/quenio/gomoku/pkg/gomoku"
	"github.com/quenio/gomoku/pkg/player"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ModePlay  = "play"
	ModeArena = "arena"
)

type Config struct {
	Mode          string `mapstructure:"mode"`
	Skill         int    `mapstructure:"skill"`
	AIMarker      string `mapstructure:"ai-marker"`
	HumanFirst    bool   `mapstructure:"human-first"`
	Movetime      int    `mapstructure:"movetime"`
	Color         bool   `mapstructure:"color"`
	Trace         bool   `mapstructure:"trace"`
	Games         int    `mapstructure:"games"`
	Workers       int    `mapstructure:"workers"`
	OpponentSkill int    `mapstructure:"opponent-skill"`
	Opening       int    `mapstructure:"opening"`
}

func (c Config) AISkill() player.Skill {
	return player.Skill(c.Skill)
}

func (c Config) Marker() gomoku.Marker {
	marker, _ := gomoku.ParseMarker(c.AIMarker)
	return marker
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("gomoku", pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("mode", ModePlay, "play against the AI, or run an AI arena")
	fs.Int("skill", int(player.Medium), "AI skill, 1 (novice) to 4 (master)")
	fs.String("ai-marker", "O", "marker of the AI, X or O")
	fs.Bool("human-first", true, "human makes the first play")
	fs.Int("movetime", -1, "AI thinking time limit in ms, negative for none")
	fs.Bool("color", true, "colored board")
	fs.Bool("trace", false, "log the search to stderr")
	fs.Int("games", 10, "arena games")
	fs.Int("workers", 2, "arena worker goroutines")
	fs.Int("opponent-skill", int(player.Novice), "skill of the second arena agent")
	fs.Int("opening", 2, "random opening plies of arena games")
	return fs
}

// Defaults, then the optional config file, GOMOKU_* environment variables
// and finally command line flags
func Setup(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("GOMOKU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if c.Mode != ModePlay && c.Mode != ModeArena {
		return fmt.Errorf("mode %q is unknown", c.Mode)
	}
	if !player.Skill(c.Skill).Valid() {
		return fmt.Errorf("skill %d out of range [%d, %d]", c.Skill, player.Novice, player.Master)
	}
	if !player.Skill(c.OpponentSkill).Valid() {
		return fmt.Errorf("opponent skill %d out of range [%d, %d]", c.OpponentSkill, player.Novice, player.Master)
	}
	if _, err := gomoku.ParseMarker(c.AIMarker); err != nil {
		return err
	}
	if c.Games < 1 || c.Workers < 1 {
		return fmt.Errorf("arena needs at least one game and one worker")
	}
	return nil
}
