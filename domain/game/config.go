package game

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/round"
)

// Config holds the rules of a game.
type Config struct {
	MinPlayers   int `json:"minPlayers"`
	MaxPlayers   int `json:"maxPlayers"`
	StartingAnte int `json:"startingAnte"`
	AnteIncrease int `json:"anteIncrease"`
	// RewardThresholdMultiplier scales the ante into the reward threshold.
	RewardThresholdMultiplier sdkmath.LegacyDec `json:"rewardThresholdMultiplier"`
	// BossMaxCardValue is the cap used when a boss draws MAX_CARD_VALUE.
	BossMaxCardValue int `json:"bossMaxCardValue"`
}

func DefaultConfig() Config {
	return Config{
		MinPlayers:                2,
		MaxPlayers:                8,
		StartingAnte:              300,
		AnteIncrease:              200,
		RewardThresholdMultiplier: sdkmath.LegacyNewDecWithPrec(15, 1),
		BossMaxCardValue:          10,
	}
}

// MaxSeats is the most players a single deck can deal a full round to.
func MaxSeats() int {
	r, _ := round.RequirementsFor(poker.River)
	return (len(poker.StandardCards()) - r.BoardCards) / r.PlayerCards
}

func (c Config) Validate() error {
	switch {
	case c.MinPlayers < 2:
		return errorsmod.Wrapf(ErrInvalidConfig, "min players %d < 2", c.MinPlayers)
	case c.MaxPlayers < c.MinPlayers:
		return errorsmod.Wrapf(ErrInvalidConfig, "max players %d < min players %d", c.MaxPlayers, c.MinPlayers)
	case c.MaxPlayers > MaxSeats():
		return errorsmod.Wrapf(ErrInvalidConfig, "max players %d > %d", c.MaxPlayers, MaxSeats())
	case c.StartingAnte < 0 || c.AnteIncrease < 0:
		return errorsmod.Wrapf(ErrInvalidConfig, "ante %d increase %d", c.StartingAnte, c.AnteIncrease)
	case c.RewardThresholdMultiplier.IsNil() || c.RewardThresholdMultiplier.IsNegative():
		return ErrInvalidConfig.Wrap("reward threshold multiplier must be non-negative")
	case c.BossMaxCardValue < int(poker.Two) || c.BossMaxCardValue > int(poker.Ace):
		return errorsmod.Wrapf(ErrInvalidConfig, "boss max card value %d", c.BossMaxCardValue)
	}
	return nil
}

// Threshold is floor(ante * RewardThresholdMultiplier).
func (c Config) Threshold(ante int) int {
	return int(sdkmath.LegacyNewDec(int64(ante)).Mul(c.RewardThresholdMultiplier).TruncateInt64())
}
