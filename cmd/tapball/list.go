package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tapball/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows every registered Tap the Ball variant with a short description.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants registered.")
		return
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Title", "How it plays").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, v := range variants {
		t.Row(v.ID, v.Title, v.Description)
	}

	fmt.Println(t)
	fmt.Println("Run 'tapball play <id>' to play a variant.")
}
