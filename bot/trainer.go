package bot

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/tetra/game"
)

// TrainerConfig sizes a training run. Zero fields take their defaults.
type TrainerConfig struct {
	Population    int
	Generations   int
	Games         int
	PieceBudget   int
	Workers       int
	EliteFraction float64
	TournamentK   int
	MutationRate  float64
	MutationDecay float64
	MutationSigma float64
	// FullSearch makes headless games use Search instead of FastSearch.
	FullSearch bool
	Seed       uint64
}

// DefaultTrainerConfig returns the stock training parameters.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		Population:    20,
		Generations:   20,
		Games:         3,
		PieceBudget:   500,
		Workers:       runtime.GOMAXPROCS(0),
		EliteFraction: 0.1,
		TournamentK:   3,
		MutationRate:  0.3,
		MutationDecay: 0.95,
		MutationSigma: 0.2,
	}
}

func (c TrainerConfig) withDefaults() TrainerConfig {
	d := DefaultTrainerConfig()
	if c.Population <= 0 {
		c.Population = d.Population
	}
	if c.Generations <= 0 {
		c.Generations = d.Generations
	}
	if c.Games <= 0 {
		c.Games = d.Games
	}
	if c.PieceBudget <= 0 {
		c.PieceBudget = d.PieceBudget
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.EliteFraction <= 0 {
		c.EliteFraction = d.EliteFraction
	}
	if c.TournamentK <= 0 {
		c.TournamentK = d.TournamentK
	}
	if c.MutationRate <= 0 {
		c.MutationRate = d.MutationRate
	}
	if c.MutationDecay <= 0 {
		c.MutationDecay = d.MutationDecay
	}
	if c.MutationSigma <= 0 {
		c.MutationSigma = d.MutationSigma
	}
	return c
}

// Individual is one candidate weight set and how it played.
type Individual struct {
	Weights Weights
	Fitness float64
	Lines   float64
	Pieces  float64
}

// Generation summarizes one evaluated population.
type Generation struct {
	Index   int
	Best    Individual
	Mean    float64
	Elapsed time.Duration
}

// Result is the outcome of a training run.
type Result struct {
	ID      uuid.UUID
	Config  TrainerConfig
	Best    Individual
	History []Generation
	Elapsed time.Duration
}

// Trainer evolves evaluation weights by playing headless games.
type Trainer struct {
	cfg TrainerConfig
	rng *rand.Rand

	// Logger receives a line per generation when set.
	Logger *log.Logger
	// Progress is called after every generation when set.
	Progress func(Generation)
}

// NewTrainer creates a trainer. Runs with the same config, seed included,
// produce the same result.
func NewTrainer(cfg TrainerConfig) *Trainer {
	cfg = cfg.withDefaults()
	return &Trainer{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x94d049bb133111eb)),
	}
}

// Config returns the effective configuration.
func (t *Trainer) Config() TrainerConfig {
	return t.cfg
}

// Run trains for the configured number of generations. It stops early with
// the context's error when ctx is cancelled.
func (t *Trainer) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{ID: uuid.New(), Config: t.cfg}

	pop := make([]Individual, t.cfg.Population)
	for i := range pop {
		pop[i].Weights = t.randomWeights()
	}

	for gen := range t.cfg.Generations {
		genStart := time.Now()
		seeds := make([]uint64, t.cfg.Games)
		for i := range seeds {
			seeds[i] = t.rng.Uint64()
		}
		if err := t.evaluate(ctx, pop, seeds); err != nil {
			return res, fmt.Errorf("generation %d: %w", gen, err)
		}
		slices.SortStableFunc(pop, func(a, b Individual) int {
			return cmp.Compare(b.Fitness, a.Fitness)
		})

		g := Generation{Index: gen, Best: pop[0], Elapsed: time.Since(genStart)}
		for _, ind := range pop {
			g.Mean += ind.Fitness
		}
		g.Mean /= float64(len(pop))
		res.History = append(res.History, g)
		if gen == 0 || g.Best.Fitness > res.Best.Fitness {
			res.Best = g.Best
		}

		if t.Logger != nil {
			t.Logger.Printf("generation %d: best %.2f mean %.2f (%s)", gen, g.Best.Fitness, g.Mean, g.Elapsed.Round(time.Millisecond))
		}
		if t.Progress != nil {
			t.Progress(g)
		}

		if gen < t.cfg.Generations-1 {
			pop = t.breed(pop, gen)
		}
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

func (t *Trainer) evaluate(ctx context.Context, pop []Individual, seeds []uint64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.Workers)
	opts := Options{Fast: !t.cfg.FullSearch}

	for i := range pop {
		g.Go(func() error {
			var lines, pieces float64
			for _, seed := range seeds {
				if err := ctx.Err(); err != nil {
					return err
				}
				l, p := PlayHeadless(pop[i].Weights, opts, seed, t.cfg.PieceBudget)
				lines += float64(l)
				pieces += float64(p)
			}
			n := float64(len(seeds))
			pop[i].Lines = lines / n
			pop[i].Pieces = pieces / n
			pop[i].Fitness = Fitness(pop[i].Lines, pop[i].Pieces)
			return nil
		})
	}
	return g.Wait()
}

// Fitness rewards cleared lines first and survival second.
func Fitness(lines, pieces float64) float64 {
	return lines + pieces/100
}

// PlayHeadless plays one game without a clock until the session tops out or
// maxPieces pieces have been placed. It returns lines cleared and pieces
// placed.
func PlayHeadless(w Weights, opts Options, seed uint64, maxPieces int) (lines, pieces int) {
	s := game.New(
		game.WithSeed(seed),
		game.WithMode(game.Survival),
		game.WithHandling(game.HeadlessHandling()),
	)
	d := &Driver{Weights: w, Difficulty: Insane, Options: opts}

	// Every placement needs only a handful of ticks; the cap guards against
	// a plan that never locks.
	for tick := 0; tick < maxPieces*64 && !s.Over() && s.Pieces() < maxPieces; tick++ {
		s.Update(0, d.Poll(s, 0))
	}
	return s.Lines(), s.Pieces()
}

func (t *Trainer) randomWeights() Weights {
	var v [genes]float64
	for i := range v {
		v[i] = t.rng.NormFloat64()
	}
	return fromVector(v).Normalized()
}

func (t *Trainer) breed(pop []Individual, gen int) []Individual {
	n := len(pop)
	elites := max(int(math.Ceil(float64(n)*t.cfg.EliteFraction)), 1)
	next := make([]Individual, 0, n)
	for _, e := range pop[:elites] {
		next = append(next, Individual{Weights: e.Weights})
	}

	rate := t.cfg.MutationRate * math.Pow(t.cfg.MutationDecay, float64(gen))
	for len(next) < n {
		a := t.tournament(pop)
		b := t.tournament(pop)
		child := t.mutate(crossover(a, b), rate)
		next = append(next, Individual{Weights: child})
	}
	return next
}

func (t *Trainer) tournament(pop []Individual) Individual {
	best := pop[t.rng.IntN(len(pop))]
	for range t.cfg.TournamentK - 1 {
		if c := pop[t.rng.IntN(len(pop))]; c.Fitness > best.Fitness {
			best = c
		}
	}
	return best
}

// crossover blends two parents, each weighted by its fitness.
func crossover(a, b Individual) Weights {
	fa, fb := max(a.Fitness, 0), max(b.Fitness, 0)
	if fa+fb == 0 {
		fa, fb = 1, 1
	}
	va, vb := a.Weights.vector(), b.Weights.vector()
	var v [genes]float64
	for i := range v {
		v[i] = (va[i]*fa + vb[i]*fb) / (fa + fb)
	}
	return fromVector(v).Normalized()
}

func (t *Trainer) mutate(w Weights, rate float64) Weights {
	v := w.vector()
	for i := range v {
		if t.rng.Float64() < rate {
			v[i] += t.rng.NormFloat64() * t.cfg.MutationSigma
		}
	}
	return fromVector(v).Normalized()
}
