package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetra/bot"
	"github.com/plus3/tetra/game"
	debugui_ebiten "github.com/plus3/tetra/match/debugui/ebiten"
	"github.com/plus3/tetra/settings"
)

type config struct {
	mode       game.Mode
	level      int
	opponent   string
	difficulty bot.Difficulty
	seed       uint64
	seeded     bool
	scoresDir  string
	weights    string
	settings   settings.Settings
}

func main() {
	arcade := flag.Bool("arcade", false, "Use the arcade cabinet key bindings.")
	train := flag.Bool("train", false, "Train bot weights headless, print a report and exit.")
	modeName := flag.String("mode", "marathon", "Game mode: marathon, 40l, survival or versus.")
	level := flag.Int("level", 1, "Starting level for marathon (1-15).")
	opponent := flag.String("opponent", "bot", "Versus opponent: human or bot.")
	difficultyName := flag.String("difficulty", "medium", "Bot difficulty: easy, medium, hard or insane.")
	seed := flag.Uint64("seed", 0, "Seed for piece order and garbage. Zero picks one at random.")
	scoresDir := flag.String("scores", "", "Directory for high score tables. Defaults to the settings directory.")
	name := flag.String("name", "", "Player name for high scores.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	weightsPath := flag.String("weights", "", "JSON file with bot weights. Training writes the best weights there.")

	population := flag.Int("population", 20, "Trainer population size.")
	generations := flag.Int("generations", 20, "Trainer generations.")
	games := flag.Int("games", 3, "Headless games per individual and generation.")
	pieces := flag.Int("pieces", 500, "Piece budget of a headless game.")
	workers := flag.Int("workers", 0, "Parallel trainer workers. Zero uses every CPU.")
	fullSearch := flag.Bool("full-search", false, "Train with the full placement search instead of the fast one.")
	flag.Parse()

	st, err := settings.Load()
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
	}
	if *arcade {
		st.Profile = settings.ProfileArcade
	}
	if *name != "" {
		st.Name = *name
	}

	mode, err := game.ParseMode(*modeName)
	if err != nil {
		log.Fatalf("Invalid -mode: %v", err)
	}
	difficulty, err := bot.ParseDifficulty(*difficultyName)
	if err != nil {
		log.Fatalf("Invalid -difficulty: %v", err)
	}
	if *opponent != "bot" && *opponent != "human" {
		log.Fatalf("Invalid -opponent %q: want human or bot", *opponent)
	}

	cfg := config{
		mode:       mode,
		level:      *level,
		opponent:   *opponent,
		difficulty: difficulty,
		seed:       *seed,
		seeded:     *seed != 0,
		scoresDir:  *scoresDir,
		weights:    *weightsPath,
		settings:   st,
	}
	if cfg.scoresDir == "" {
		cfg.scoresDir = st.ScoresDir
	}
	if cfg.scoresDir == "" {
		if dir, err := settings.Dir(); err == nil {
			cfg.scoresDir = dir
		} else {
			log.Printf("No config directory, high scores go to the working directory: %v", err)
			cfg.scoresDir = "."
		}
	}

	if *train {
		tc := bot.TrainerConfig{
			Population:  *population,
			Generations: *generations,
			Games:       *games,
			PieceBudget: *pieces,
			Workers:     *workers,
			FullSearch:  *fullSearch,
			Seed:        cfg.seed,
		}
		runTraining(tc, cfg.weights)
		return
	}

	var backend *debugui_ebiten.ImguiBackend
	if *debug {
		backend = debugui_ebiten.New("tetra", 1280, 720)
	} else {
		ebiten.SetWindowSize(1280, 720)
		ebiten.SetWindowTitle("tetra")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app, err := newApp(cfg, backend)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
	if err := settings.Save(st); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

func newBot(cfg config) *bot.Driver {
	d := bot.NewDriver(cfg.difficulty)
	if cfg.weights == "" {
		return d
	}
	w, err := loadWeights(cfg.weights)
	if err != nil {
		log.Printf("Failed to load bot weights, using defaults: %v", err)
		return d
	}
	d.Weights = w
	return d
}

func loadWeights(path string) (bot.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return bot.Weights{}, fmt.Errorf("read weights: %w", err)
	}
	var w bot.Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return bot.Weights{}, fmt.Errorf("parse weights %s: %w", path, err)
	}
	return w, nil
}

func saveWeights(path string, w bot.Weights) error {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("encode weights: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write weights: %w", err)
	}
	return nil
}

func runTraining(tc bot.TrainerConfig, weightsPath string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	trainer := bot.NewTrainer(tc)
	trainer.Logger = log.Default()
	cfg := trainer.Config()

	log.Printf("Training %d individuals for %d generations on %d workers...\n", cfg.Population, cfg.Generations, cfg.Workers)
	start := time.Now()
	result, err := trainer.Run(ctx)
	if err != nil {
		log.Printf("Training stopped early: %v", err)
	}
	log.Printf("Training finished in %s.\n", time.Since(start).Round(time.Millisecond))

	report := &Report{Result: result, Interrupted: err != nil}
	fmt.Println("\n\n--- Training Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if weightsPath != "" && len(result.History) > 0 {
		if err := saveWeights(weightsPath, result.Best.Weights); err != nil {
			log.Fatalf("Failed to save weights: %v", err)
		}
		log.Printf("Best weights written to %s\n", weightsPath)
	}
}
