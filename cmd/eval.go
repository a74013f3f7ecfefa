package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/scoring"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		hole      string
		phase     string
		jokerIDs  []string
		handicaps []string
		maxValue  int
	)
	cmd := &cobra.Command{
		Use:   "eval CARDS",
		Short: "Score five cards with up to three jokers",
		Example: `  joker-poker eval "AH KH QH JH 10H"
  joker-poker eval "8H 8S 8C 2H 2D" --hole "8H 8S" --jokers pocket_eights,early_bird
  joker-poker eval "QH QD 10C 6S 3H" --handicap NO_PAIRS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := evalInput(args[0], hole, phase, jokerIDs, handicaps, maxValue)
			if err != nil {
				return err
			}
			b, err := scoring.Score(in)
			if err != nil {
				return err
			}
			a.logger.Debug("hand scored", "rank", b.Evaluation.HandRank.String(), "total", b.Total)
			fmt.Fprintln(cmd.OutOrStdout(), renderBreakdown(in.Played, b, in.Handicaps))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&hole, "hole", "", "hole cards of the player, for jokers that look at them")
	f.StringVar(&phase, "phase", string(poker.River), "phase the hand is played in")
	f.StringSliceVar(&jokerIDs, "jokers", nil, "joker ids, optionally id:level")
	f.StringSliceVar(&handicaps, "handicap", nil, "boss handicaps to apply")
	f.IntVar(&maxValue, "max-card-value", 0, "cap for the MAX_CARD_VALUE handicap")
	return cmd
}

func evalInput(played, hole, phase string, jokerIDs, handicaps []string, maxValue int) (scoring.Input, error) {
	cards, err := poker.ParseCards(played)
	if err != nil {
		return scoring.Input{}, err
	}
	var holeCards []poker.Card
	if hole != "" {
		if holeCards, err = poker.ParseCards(hole); err != nil {
			return scoring.Input{}, err
		}
	}
	p, err := poker.ParsePhase(phase)
	if err != nil {
		return scoring.Input{}, err
	}
	jokers, err := parseJokers(jokerIDs)
	if err != nil {
		return scoring.Input{}, err
	}
	set := scoring.HandicapSet{MaxCardValue: maxValue}
	for _, h := range handicaps {
		set.Handicaps = append(set.Handicaps, scoring.Handicap(h))
	}
	return scoring.Input{Hole: holeCards, Played: cards, Jokers: jokers, Phase: p, Handicaps: set}, nil
}

// parseJokers reads "id" or "id:level" entries.
func parseJokers(specs []string) ([]*joker.Joker, error) {
	var out []*joker.Joker
	for _, s := range specs {
		id, lv, hasLevel := strings.Cut(s, ":")
		level := joker.MinLevel
		if hasLevel {
			n, err := strconv.Atoi(lv)
			if err != nil {
				return nil, joker.ErrInvalidLevel.Wrapf("%q", s)
			}
			level = n
		}
		j, err := joker.New(id, level)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}
