package experiments

import (
	"context"
	"errors"

	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/search"
	"pacman/searcher"
	"pacman/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames  = 10 // Per agent config
	GhostProb = 0.8
)

// SearchLayouts are the built-in layouts with a single food dot.
var SearchLayouts = []string{"tinyMaze", "smallMaze", "openMaze", "blockedMaze"}

// GameConfigs are the pacman agents the game experiment compares by default.
var GameConfigs = []string{
	"reflex",
	"minimax:depth=2",
	"alphabeta:depth=2,eval=better",
	"expectimax:depth=2,eval=better",
}

// RunSearchExperiment runs every search strategy on the maze problem of each
// layout. Records are ordered by layout, then by strategy.
func RunSearchExperiment(ctx context.Context, layouts []string) ([]metrics.SearchRecord, error) {
	problems := make([]*game.PositionProblem, len(layouts))
	for i, name := range layouts {
		l, err := game.GetLayout(name)
		if err != nil {
			return nil, err
		}
		problems[i], err = game.NewMazeProblem(l)
		if err != nil {
			return nil, err
		}
	}

	log.Info().Int("layouts", len(layouts)).Msg("starting search experiment...")

	records := make([]metrics.SearchRecord, len(layouts)*len(search.StrategyNames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(meta.GO_ROUTINES)
	for li, problem := range problems {
		for si, name := range search.StrategyNames {
			problem, name := problem, name
			i := li*len(search.StrategyNames) + si
			layout := layouts[li]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				record, err := runSearch(problem, name)
				if err != nil {
					return err
				}
				record.Layout = layout
				records[i] = record
				log.Info().Str("layout", layout).Str("algorithm", name).Bool("found", record.Found).Int("expanded", record.Expanded).Msg("completed search")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info().Msg("completed search experiment")
	return records, nil
}

func runSearch(problem *game.PositionProblem, name string) (metrics.SearchRecord, error) {
	strategy, err := search.Lookup[game.Position, game.Direction](name, game.ManhattanHeuristic)
	if err != nil {
		return metrics.SearchRecord{}, err
	}

	collector := metrics.NewCollector()
	path, err := strategy(problem, search.WithMetrics(collector))
	if err != nil && !errors.Is(err, search.ErrNoPath) {
		return metrics.SearchRecord{}, err
	}

	record := metrics.SearchRecord{
		Found:        err == nil,
		PathLength:   len(path),
		SearchMetric: collector.Complete(),
	}
	if record.Found {
		record.Cost = problem.CostOfActions(path)
	}
	return record, nil
}

// RunGameExperiment plays games of each pacman config on layout against
// directional ghosts. Game i of the experiment is seeded with seed+i, so
// results do not depend on scheduling. Reflex agents without a seed use the
// game's seed.
func RunGameExperiment(ctx context.Context, configs []string, layout string, games int, seed uint64) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	l, err := game.GetLayout(layout)
	if err != nil {
		return nil, nil, err
	}
	// Fail on bad configs before playing anything
	for _, config := range configs {
		if _, err := searcher.ParseConfig(config); err != nil {
			return nil, nil, err
		}
	}

	log.Info().Str("layout", layout).Int("configs", len(configs)).Int("games", games).Msg("starting game experiment...")

	gameRecords := make([]metrics.GameRecord, len(configs)*games)
	moveMetrics := make([][]metrics.MoveMetric, len(gameRecords))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(meta.GO_ROUTINES)
	for ci, config := range configs {
		config := config
		for gi := 0; gi < games; gi++ {
			i := ci*games + gi
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				gameSeed := seed + uint64(i)
				gameMetric, mm, err := runGame(l, config, gameSeed)
				if err != nil {
					return err
				}
				gameRecords[i] = metrics.GameRecord{ID: i + 1, Seed: gameSeed, GameMetric: gameMetric}
				moveMetrics[i] = mm
				log.Info().Int("game", i+1).Str("agent", config).Bool("won", gameMetric.Won).Float64("score", gameMetric.Score).Msg("completed game")
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var moveRecords []metrics.MoveRecord
	for i, mm := range moveMetrics {
		for _, m := range mm {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: m})
		}
	}

	log.Info().Msg("completed game experiment")
	return gameRecords, moveRecords, nil
}

// runGame executes a single game of pacman against directional ghosts.
func runGame(l *game.Layout, config string, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	pacman, err := agent.FromConfigWithSeed(config, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	state := game.NewGameState(l, -1)
	rng := rand.New(rand.NewSource(seed))
	ghosts := make([]agent.Agent, state.NumAgents()-1)
	for i := range ghosts {
		ghosts[i] = agent.NewDirectionalGhost(i+1, rng, GhostProb)
	}

	gameMetric, moveMetrics := engine.LocalEngine(state, pacman, ghosts).Run()
	gameMetric.Agent = config
	return gameMetric, moveMetrics, nil
}

// AgentConfigs numbers configs in order for the agents file.
func AgentConfigs(configs []string) []metrics.AgentConfig {
	out := make([]metrics.AgentConfig, len(configs))
	for i, config := range configs {
		out[i] = metrics.AgentConfig{ID: i + 1, Config: config}
	}
	return out
}
