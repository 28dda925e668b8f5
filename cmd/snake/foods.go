package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List the food types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), foodTable())
		return nil
	},
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// foodTable renders one row per food type.
func foodTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Food", "Glyph", "Score", "Effects")

	for _, ft := range snake.FoodTypes() {
		effects := make([]string, 0, len(ft.Effects()))
		for _, eff := range ft.Effects() {
			effects = append(effects, eff.String())
		}
		t.Row(ft.String(), string(ft.Glyph()), strconv.Itoa(ft.Score()), strings.Join(effects, ", "))
	}

	return t.Render()
}
