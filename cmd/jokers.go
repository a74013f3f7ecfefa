package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/joker-poker/domain/joker"
)

func newJokersCmd() *cobra.Command {
	var rarity string
	cmd := &cobra.Command{
		Use:   "jokers",
		Short: "List every joker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs := joker.Catalog()
			if rarity != "" {
				r, err := joker.ParseRarity(rarity)
				if err != nil {
					return err
				}
				var kept []joker.Definition
				for _, d := range defs {
					if d.Rarity == r {
						kept = append(kept, d)
					}
				}
				defs = kept
			}
			out, err := renderCatalog(defs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&rarity, "rarity", "", "only list jokers of this rarity")
	return cmd
}
