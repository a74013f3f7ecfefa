package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/joker-poker/domain/game"
	"github.com/luca-patrignani/joker-poker/domain/joker"
	"github.com/luca-patrignani/joker-poker/domain/poker"
	"github.com/luca-patrignani/joker-poker/domain/reward"
	"github.com/luca-patrignani/joker-poker/domain/scoring"
)

func renderCards(cards []poker.Card) string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Symbol()
	}
	return strings.Join(out, " ")
}

func renderBreakdown(played []poker.Card, b scoring.Breakdown, h scoring.HandicapSet) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var sb strings.Builder
	sb.WriteString(pterm.Sprintfln("%s", renderCards(played)))
	sb.WriteString(pterm.Sprintfln("%s (base %d)", pterm.LightCyan(b.Description), b.Base))
	for _, d := range h.Describe() {
		sb.WriteString(pterm.Sprintfln("%s %s", pterm.LightRed("boss:"), d))
	}
	if len(b.Contributions) > 0 {
		data := pterm.TableData{{"Joker", "Name", "Bonus"}}
		for _, c := range b.Contributions {
			data = append(data, []string{c.JokerID, c.Name, c.Bonus.String()})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err == nil {
			sb.WriteString(table + "\n")
		}
	}
	sb.WriteString(pterm.Sprintf("(%d + %d) x %s = %s", b.Base, b.Additive, b.Multiplier.String(), pterm.LightGreen(strconv.Itoa(b.Total))))
	return pbox.WithTitle(pterm.LightYellow("|SCORE|")).WithTitleTopCenter().Sprint(sb.String())
}

func renderCatalog(defs []joker.Definition) (string, error) {
	data := pterm.TableData{{"ID", "Name", "Rarity", "Ownership", "Effect"}}
	for _, d := range defs {
		data = append(data, []string{d.ID, d.Name, string(d.Rarity), string(d.Ownership), d.Effect})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderRewards(rs []reward.Reward) string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		switch {
		case r.Kind == reward.KindCoins:
			out = append(out, fmt.Sprintf("%d coins", r.Coins))
		case r.FromEliminated:
			out = append(out, "joker of the eliminated")
		default:
			out = append(out, fmt.Sprintf("%s joker", strings.ToLower(string(r.Rarity))))
		}
	}
	return strings.Join(out, ", ")
}

// renderRound prints one completed round, best score first.
func renderRound(rec game.RoundRecord, players []*game.Player) string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	data := pterm.TableData{{"Player", "Score", "Rewards"}}
	for _, id := range byScore(rec.Result.PlayerScores) {
		name := names[id]
		if id == rec.Result.EliminatedPlayerID {
			name = pterm.LightRed(name + " (out)")
		}
		data = append(data, []string{name, strconv.Itoa(rec.Result.PlayerScores[id]), renderRewards(rec.Result.Rewards[id])})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		table = err.Error()
	}
	title := fmt.Sprintf("|ROUND %d %s ante %d|", rec.Number, rec.Type, rec.Ante)
	body := table
	if d := rec.Handicaps.Describe(); len(d) > 0 {
		body = pterm.LightRed(strings.Join(d, "\n")) + "\n" + table
	}
	return pterm.DefaultBox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprint(body)
}

func byScore(scores map[string]int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

func renderStandings(g *game.Game) string {
	var panels []pterm.Panel
	for _, p := range g.Players() {
		status := pterm.LightGreen(string(p.Status))
		if p.IsEliminated() {
			status = pterm.LightRed(string(p.Status))
		}
		pbox := pterm.DefaultBox.WithHorizontalPadding(2)
		info := pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf("%s\nCoins: %d\nJokers: %d", status, p.Coins, len(p.OwnedJokers))
		panels = append(panels, pterm.Panel{Data: info})
	}
	out, err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Srender()
	if err != nil {
		out = err.Error()
	}
	if w, ok := g.Winner(); ok {
		out += "\n" + pterm.LightGreen(fmt.Sprintf("%s wins after %d rounds", w.Name, g.RoundNumber()))
	} else {
		out += "\n" + pterm.LightYellow(fmt.Sprintf("no winner after %d rounds", g.RoundNumber()))
	}
	return out
}

func errorLine(err error) string {
	return pterm.LightRed("error: ") + err.Error()
}
