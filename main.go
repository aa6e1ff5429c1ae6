package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"pacman/engine"
	"pacman/experiments"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/search"
	"pacman/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var costFns = map[string]func(game.Position) float64{
	"unit": nil,
	"east": game.StayEastCost,
	"west": game.StayWestCost,
}

func main() {
	mode := flag.String("mode", "play", "One of search, play or experiment")
	layout := flag.String("layout", "", "Layout name, defaults to tinyMaze for search and smallClassic for play")
	strategy := flag.String("strategy", "astar", "Search strategy: "+strings.Join(search.StrategyNames, ", "))
	heuristic := flag.String("heuristic", "manhattan", "A* heuristic: null, manhattan or euclidean")
	cost := flag.String("cost", "unit", "Step cost of search: unit, east or west")
	pacman := flag.String("pacman", "alphabeta:depth=2,eval=better", "Pacman searcher, e.g. expectimax:depth=3,eval=better")
	ghosts := flag.Int("ghosts", -1, "Number of ghosts, negative for all of the layout's ghosts")
	ghost := flag.String("ghost", "directional", "Ghost behaviour: random or directional")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Random seed")
	maxMoves := flag.Int("max-moves", meta.MAX_MOVES, "Maximum number of agent moves in a game")
	experiment := flag.String("experiment", "search", "Experiment to run: search, games or pruning")
	games := flag.Int("games", experiments.NumGames, "Games per agent config in the games experiment")
	out := flag.String("out", "results", "Directory experiment results are written to")
	verbose := flag.Bool("verbose", false, "Log every search and move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch *mode {
	case "search":
		err = runSearch(withDefault(*layout, "tinyMaze"), *strategy, *heuristic, *cost)
	case "play":
		err = runPlay(withDefault(*layout, "smallClassic"), *pacman, *ghost, *ghosts, *seed, *maxMoves)
	case "experiment":
		err = runExperiment(ctx, *experiment, *out, withDefault(*layout, "smallClassic"), *games, *seed)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("failed")
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func runSearch(layout, strategy, heuristic, cost string) error {
	l, err := game.GetLayout(layout)
	if err != nil {
		return err
	}
	h, err := game.LookupHeuristic(heuristic)
	if err != nil {
		return err
	}
	find, err := search.Lookup(strategy, h)
	if err != nil {
		return err
	}
	costFn, ok := costFns[cost]
	if !ok {
		return fmt.Errorf("unknown cost function %q", cost)
	}

	maze, err := game.NewMazeProblem(l)
	if err != nil {
		return err
	}
	problem := game.NewPositionProblem(l, maze.StartState(), maze.Goal(), costFn)

	collector := metrics.NewCollector()
	path, err := find(problem, search.WithMetrics(collector))
	if errors.Is(err, search.ErrNoPath) {
		log.Warn().Str("layout", layout).Str("strategy", strategy).Int("expanded", collector.Complete().Expanded).Msg("no path to the goal")
		return nil
	}
	if err != nil {
		return err
	}

	m := collector.Complete()
	log.Info().
		Str("layout", layout).
		Str("strategy", strategy).
		Int("actions", len(path)).
		Float64("cost", problem.CostOfActions(path)).
		Int("expanded", m.Expanded).
		Dur("duration", m.Duration).
		Msg("found path")
	return nil
}

func runPlay(layout, pacmanConfig, ghostKind string, numGhosts int, seed uint64, maxMoves int) error {
	l, err := game.GetLayout(layout)
	if err != nil {
		return err
	}
	pacman, err := agent.FromConfigWithSeed(pacmanConfig, seed)
	if err != nil {
		return err
	}

	state := game.NewGameState(l, numGhosts)
	rng := rand.New(rand.NewSource(seed))
	ghosts := make([]agent.Agent, state.NumAgents()-1)
	for i := range ghosts {
		switch ghostKind {
		case "random":
			ghosts[i] = agent.NewRandomGhost(i+1, rng)
		case "directional":
			ghosts[i] = agent.NewDirectionalGhost(i+1, rng, experiments.GhostProb)
		default:
			return fmt.Errorf("unknown ghost %q", ghostKind)
		}
	}

	gameMetric, _ := engine.LocalEngine(state, pacman, ghosts, engine.WithMaxMoves(maxMoves)).Run()
	log.Info().
		Str("pacman", pacmanConfig).
		Uint64("seed", seed).
		Bool("won", gameMetric.Won).
		Float64("score", gameMetric.Score).
		Int("moves", gameMetric.Moves).
		Dur("duration", gameMetric.Duration).
		Msg("result")
	return nil
}

func runExperiment(ctx context.Context, name, out, layout string, games int, seed uint64) error {
	if name != "search" && name != "games" && name != "pruning" {
		return fmt.Errorf("unknown experiment %q", name)
	}
	writer, err := metrics.NewWriter(out, name)
	if err != nil {
		return err
	}

	switch name {
	case "search":
		records, err := experiments.RunSearchExperiment(ctx, experiments.SearchLayouts)
		if err != nil {
			return err
		}
		err = writer.WriteSearchRecords(records)
		if err != nil {
			return err
		}
	case "games":
		gameRecords, moveRecords, err := experiments.RunGameExperiment(ctx, experiments.GameConfigs, layout, games, seed)
		if err != nil {
			return err
		}
		if err := writer.WriteAgentConfigs(experiments.AgentConfigs(experiments.GameConfigs)); err != nil {
			return err
		}
		if err := writer.WriteGameRecords(gameRecords); err != nil {
			return err
		}
		if err := writer.WriteMoveRecords(moveRecords); err != nil {
			return err
		}
	case "pruning":
		records, err := experiments.RunPruningExperiment(ctx, layout, []int{1, 2, 3})
		if err != nil {
			return err
		}
		if err := writer.WriteDepthRecords(records); err != nil {
			return err
		}
	}

	log.Info().Str("experiment", name).Str("dir", writer.Dir()).Msg("stored results")
	return nil
}
