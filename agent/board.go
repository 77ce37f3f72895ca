package agent

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/nstehr/foundry/model"
)

// writeBoard renders the turn state and the chosen targets as a table.
func writeBoard(w io.Writer, gs *model.GameState, targets []int) error {
	isTarget := make(map[int]bool, len(targets))
	for _, id := range targets {
		isTarget[id] = true
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Owner", "Bots", "Prod", "Inbound +", "Inbound -", "Nearest", "Target"}),
	)
	for _, f := range gs.Factories {
		nearest := "-"
		if d, ok := gs.Distances.Nearest(f.ID); ok {
			nearest = strconv.Itoa(d)
		}
		target := ""
		if isTarget[f.ID] {
			target = "*"
		}
		row := []string{
			strconv.Itoa(f.ID),
			ownerLabel(f.Owner),
			strconv.Itoa(f.Bots),
			strconv.Itoa(f.Production),
			strconv.Itoa(gs.IncomingBots(f.ID, true)),
			strconv.Itoa(gs.IncomingBots(f.ID, false)),
			nearest,
			target,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("board row %d: %w", f.ID, err)
		}
	}
	if _, err := fmt.Fprintf(w, "turn %d\n", gs.Turn); err != nil {
		return err
	}
	return table.Render()
}

func ownerLabel(owner int) string {
	switch {
	case owner > 0:
		return "me"
	case owner < 0:
		return "enemy"
	default:
		return "neutral"
	}
}
