package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered game with the settings it would start with:
playfield size, the edge obstacles come from, spawn interval and whether a
hit ends on a game-over screen or drops back to the title.

User configs in ~/.dodge/configs and ./configs are taken into account;
--config is ignored here because it applies to a single game.`,
	Run: runList,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println(gameTable(games))
	fmt.Println()
	fmt.Println("Run 'dodge play <id>' to play a game, 'dodge config <id>' to see its full config.")
}

// gameTable renders one row per game. A game whose user config fails to
// load is listed with its built-in defaults and flagged.
func gameTable(games []registry.GameInfo) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "Title", "Field", "Edge", "Spawn", "On hit").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, g := range games {
		cfg, err := config.Load(g.ID, "")
		title := g.Title
		if err != nil {
			cfg, err = config.Default(g.ID)
			title += " (config error)"
		}
		if err != nil {
			t.Row(g.ID, title, "-", "-", "-", "-")
			continue
		}
		t.Row(g.ID, title, fieldSize(cfg.Playfield), string(cfg.Spawner.Edge), spawnEvery(cfg.Spawner), onHit(cfg.Flow))
	}
	return t.Render()
}

func fieldSize(p config.Playfield) string {
	return strconv.FormatFloat(p.Width, 'f', -1, 64) + "x" + strconv.FormatFloat(p.Height, 'f', -1, 64)
}

func spawnEvery(s config.SpawnerConfig) string {
	return s.SpawnInterval().String()
}

func onHit(f config.Flow) string {
	if f.GameOverScreen {
		return "game over"
	}
	return "title"
}
