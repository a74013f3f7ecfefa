// Package config loads the settings of the joker-poker binaries from
// defaults, an optional YAML file and JOKERPOKER_ environment variables.
package config

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/joker-poker/domain/game"
	"github.com/luca-patrignani/joker-poker/logging"
)

const (
	codespace = "config"
	EnvPrefix = "JOKERPOKER"
)

var (
	ErrRead    = errorsmod.Register(codespace, 2, "cannot read config")
	ErrInvalid = errorsmod.Register(codespace, 3, "invalid config")
)

type GameConfig struct {
	MinPlayers   int `mapstructure:"min_players"`
	MaxPlayers   int `mapstructure:"max_players"`
	StartingAnte int `mapstructure:"starting_ante"`
	AnteIncrease int `mapstructure:"ante_increase"`
	// RewardThresholdMultiplier is a decimal string such as "1.5".
	RewardThresholdMultiplier string `mapstructure:"reward_threshold_multiplier"`
	BossMaxCardValue          int    `mapstructure:"boss_max_card_value"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type Config struct {
	Game GameConfig `mapstructure:"game"`
	Log  LogConfig  `mapstructure:"log"`
	// Seed makes shuffles reproducible. Empty means random.
	Seed string `mapstructure:"seed"`
}

func setDefaults(v *viper.Viper) {
	d := game.DefaultConfig()
	v.SetDefault("game.min_players", d.MinPlayers)
	v.SetDefault("game.max_players", d.MaxPlayers)
	v.SetDefault("game.starting_ante", d.StartingAnte)
	v.SetDefault("game.ante_increase", d.AnteIncrease)
	v.SetDefault("game.reward_threshold_multiplier", "1.5")
	v.SetDefault("game.boss_max_card_value", d.BossMaxCardValue)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("seed", "")
}

// New returns a viper instance with the defaults and environment bindings
// in place, for callers that want to bind flags before loading.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, if not empty, on top of the defaults and environment.
func Load(path string) (Config, error) {
	return LoadFrom(New(), path)
}

// LoadFrom is Load with a caller prepared viper instance.
func LoadFrom(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errorsmod.Wrapf(ErrRead, "%s: %v", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errorsmod.Wrapf(ErrRead, "%v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Game.ToGame(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errorsmod.Wrapf(ErrInvalid, "%v", err)
	}
	return nil
}

// ToGame converts the settings into the rules of a game.
func (g GameConfig) ToGame() (game.Config, error) {
	mult, err := sdkmath.LegacyNewDecFromStr(g.RewardThresholdMultiplier)
	if err != nil {
		return game.Config{}, errorsmod.Wrapf(ErrInvalid, "reward threshold multiplier %q", g.RewardThresholdMultiplier)
	}
	cfg := game.Config{
		MinPlayers:                g.MinPlayers,
		MaxPlayers:                g.MaxPlayers,
		StartingAnte:              g.StartingAnte,
		AnteIncrease:              g.AnteIncrease,
		RewardThresholdMultiplier: mult,
		BossMaxCardValue:          g.BossMaxCardValue,
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, errorsmod.Wrapf(ErrInvalid, "%v", err)
	}
	return cfg, nil
}

// Logging returns the logger options of the config.
func (c Config) Logging() logging.Options {
	return logging.Options{Level: c.Log.Level, JSON: c.Log.JSON}
}
