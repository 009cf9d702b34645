package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/tetra/bot"
	"github.com/plus3/tetra/game"
)

func main() {
	modeName := flag.String("mode", "versus", "Game mode: marathon, 40l, survival or versus.")
	difficultyName := flag.String("difficulty", "hard", "Bot difficulty: easy, medium, hard or insane.")
	seed := flag.Uint64("seed", 0, "Seed for piece order and garbage. Zero picks one at random.")
	flag.Parse()

	mode, err := game.ParseMode(*modeName)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}
	difficulty, err := bot.ParseDifficulty(*difficultyName)
	if err != nil {
		log.Fatalf("Invalid -difficulty: %v", err)
	}

	program := tea.NewProgram(NewModel(mode, difficulty, *seed), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("Spectator stopped: %v", err)
	}
}
