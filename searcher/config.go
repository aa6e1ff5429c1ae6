package searcher

import (
	"slices"
	"strconv"
	"strings"

	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Kinds lists the searcher kinds New understands.
var Kinds = []string{"minimax", "alphabeta", "expectimax", "reflex"}

// Config is a parsed searcher configuration.
type Config struct {
	Kind     string
	Depth    int
	Eval     string
	Seed     uint64
	Original string
}

// ParseConfig parses "<kind>[:key=value,...]". Known keys are depth, eval
// and seed. Unset keys keep their zero value.
func ParseConfig(config string) (Config, error) {
	c := Config{Original: config}
	kind, params, _ := strings.Cut(strings.TrimSpace(config), ":")
	c.Kind = strings.ToLower(kind)
	if !slices.Contains(Kinds, c.Kind) {
		return c, errors.Errorf("unknown searcher %q (want one of %s)", kind, strings.Join(Kinds, ", "))
	}
	if params == "" {
		return c, nil
	}

	for _, part := range strings.Split(params, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return c, errors.Errorf("searcher parameter %q in %q is not of the form key=value", part, config)
		}
		switch key {
		case "depth":
			depth, err := strconv.Atoi(value)
			if err != nil {
				return c, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
			}
			if depth < 1 {
				return c, errors.Errorf("depth must be at least 1, got %d", depth)
			}
			c.Depth = depth
		case "eval":
			if _, err := game.LookupEvaluate(value); err != nil {
				return c, err
			}
			c.Eval = value
		case "seed":
			seed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return c, errors.Wrapf(err, "failed to parse configuration %s=%q to uint", key, value)
			}
			c.Seed = seed
		default:
			return c, errors.Errorf("unknown searcher parameter %q in %q", key, config)
		}
	}
	return c, nil
}

// New builds a searcher from a configuration string, see ParseConfig.
func New(config string, opts ...Option) (Searcher, error) {
	c, err := ParseConfig(config)
	if err != nil {
		return nil, err
	}
	return c.Build(opts...)
}

// Build creates the configured searcher. Options given here are applied
// before the configured depth and evaluation.
func (c Config) Build(opts ...Option) (Searcher, error) {
	if c.Depth > 0 {
		opts = append(opts, WithDepth(c.Depth))
	}
	if c.Eval != "" {
		evaluate, err := game.LookupEvaluate(c.Eval)
		if err != nil {
			return nil, errors.WithMessagef(err, "searcher %q", c.Original)
		}
		opts = append(opts, WithEvaluationFn(evaluate))
	}

	switch c.Kind {
	case "minimax":
		return NewMinimax(opts...), nil
	case "alphabeta":
		return NewAlphaBeta(opts...), nil
	case "expectimax":
		return NewExpectimax(opts...), nil
	case "reflex":
		return NewReflex(rand.New(rand.NewSource(c.Seed)), nil, opts...), nil
	}
	return nil, errors.Errorf("unknown searcher %q", c.Kind)
}

// Collected wraps a searcher with a collector so callers can read the
// metrics of the last decision.
func Collected(config string) (Searcher, metrics.Collector, error) {
	collector := metrics.NewCollector()
	s, err := New(config, WithMetrics(collector))
	if err != nil {
		return nil, nil, err
	}
	return s, collector, nil
}
