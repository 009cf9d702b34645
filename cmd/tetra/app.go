package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetra/game"
	"github.com/plus3/tetra/highscore"
	"github.com/plus3/tetra/match"
	"github.com/plus3/tetra/match/debugui"
	debugui_ebiten "github.com/plus3/tetra/match/debugui/ebiten"
	"github.com/plus3/tetra/settings"
)

const margin = 20

// App implements ebiten.Game around one match at a time.
type App struct {
	cfg       config
	match     *match.Match
	scheduler *match.Scheduler
	ui        *debugui.ImguiSystem
	backend   *debugui_ebiten.ImguiBackend

	scores []highscore.Entry
	paused bool
}

func newApp(cfg config, backend *debugui_ebiten.ImguiBackend) (*App, error) {
	a := &App{cfg: cfg, backend: backend}
	if err := a.restart(); err != nil {
		return nil, err
	}
	return a, nil
}

// restart throws the current match away and seats a new one.
func (a *App) restart() error {
	opts := []match.Option{match.WithLogger(log.Default())}
	if a.cfg.seeded {
		opts = append(opts, match.WithSeed(a.cfg.seed))
	}
	m := match.New(a.cfg.mode, opts...)
	m.OnFinish = a.finished

	sessionOpts := []game.Option{
		game.WithLevel(a.cfg.level),
		game.WithHandling(a.cfg.settings.Handling()),
		game.WithCountdown(3 * time.Second),
	}

	humans := 1
	if a.cfg.mode == game.Versus && a.cfg.opponent == "human" {
		humans = 2
	}
	if _, err := m.Join(a.cfg.settings.Name, a.keyboard(0, humans), sessionOpts...); err != nil {
		return err
	}
	if a.cfg.mode == game.Versus {
		var c match.Controller
		name := "player 2"
		if humans == 2 {
			c = a.keyboard(1, humans)
		} else {
			d := newBot(a.cfg)
			c = d
			name = "bot (" + d.Difficulty.String() + ")"
		}
		if _, err := m.Join(name, c, sessionOpts...); err != nil {
			return err
		}
	}

	a.match = m
	a.scheduler = match.NewGameplayScheduler(m)
	if a.backend != nil {
		a.ui = &debugui.ImguiSystem{}
		a.ui.Add(debugui.NewPerformancePanel(a.scheduler, 120))
		a.ui.Add(&debugui.SessionInspector{})
		a.scheduler.Register(a.ui)
	}
	a.loadScores()
	return nil
}

func (a *App) keyboard(seat, humans int) *keyboard {
	return &keyboard{
		binding: bindingFor(a.cfg.settings.Profile == settings.ProfileArcade, seat, humans),
		muted: func() bool {
			return a.paused || (a.ui != nil && a.ui.InputState.WantCaptureKeyboard)
		},
	}
}

func (a *App) scorePath() string {
	return highscore.Path(a.cfg.scoresDir, a.cfg.mode)
}

func (a *App) loadScores() {
	a.scores = nil
	if a.cfg.mode == game.Versus {
		return
	}
	scores, err := highscore.Load(a.scorePath())
	if err != nil {
		log.Printf("Failed to load high scores: %v", err)
		return
	}
	a.scores = scores
}

// finished records a single player result in the high score table.
func (a *App) finished(m *match.Match) {
	if m.Mode == game.Versus || len(m.Players) != 1 {
		return
	}
	s := m.Players[0].Session
	score := s.Score()
	if m.Mode == game.FortyLines {
		if !s.Completed() {
			return
		}
		score = int(s.PlayTime() / time.Millisecond)
	}
	scores, err := highscore.Submit(a.scorePath(), m.Players[0].Name, score, highscore.OrderFor(m.Mode))
	if err != nil {
		log.Printf("Failed to save high score: %v", err)
		return
	}
	a.scores = scores
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || (a.match.Finished() && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		if err := a.restart(); err != nil {
			return err
		}
	}

	if a.backend != nil {
		a.backend.BeginFrame()
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	if a.paused {
		dt = 0
	}
	a.scheduler.Once(dt)
	if a.backend != nil {
		a.backend.EndFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for i, p := range a.match.Players {
		drawPlayer(screen, p, margin+float32(i)*(panelWidth+margin), margin)
	}

	status := "R restart  P pause  Esc quit"
	if a.paused {
		status = "PAUSED  " + status
	}
	if a.match.Finished() {
		status = "Enter for a new game  " + status
	}
	ebitenutil.DebugPrintAt(screen, status, margin, panelHeight+margin)

	if len(a.scores) > 0 {
		x := margin + panelWidth + margin
		ebitenutil.DebugPrintAt(screen, "HIGH SCORES ("+a.cfg.mode.String()+")", x, margin)
		for i, e := range a.scores {
			value := game.FormatScore(e.Score)
			if a.cfg.mode == game.FortyLines && e != highscore.Placeholder {
				value = game.FormatTime(time.Duration(e.Score) * time.Millisecond)
			}
			ebitenutil.DebugPrintAt(screen, e.Name+"  "+value, x, margin+20*(i+1))
		}
	}

	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
