package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
)

type Agent interface {
	// Index is the agent's position in the turn order, 0 is pacman
	Index() int
	// FindMove returns a move and performance metrics (if collected) from the search process
	FindMove(state game.State) (game.Direction, metrics.SearchMetric)
}

type pacman struct {
	searcher searcher.Searcher
	metrics  metrics.Collector
}

// NewPacman returns an agent that plays pacman with s. The collector must be
// the one s reports to, or nil.
func NewPacman(s searcher.Searcher, collector metrics.Collector) Agent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return pacman{searcher: s, metrics: collector}
}

// FromConfig builds a pacman agent that collects search metrics.
func FromConfig(config string) (Agent, error) {
	s, collector, err := searcher.Collected(config)
	if err != nil {
		return nil, err
	}
	return NewPacman(s, collector), nil
}

// FromConfigWithSeed is FromConfig, except that a reflex agent without a
// seed of its own draws its ties from seed.
func FromConfigWithSeed(config string, seed uint64) (Agent, error) {
	c, err := searcher.ParseConfig(config)
	if err != nil {
		return nil, err
	}
	if c.Kind == "reflex" && c.Seed == 0 {
		c.Seed = seed
	}
	collector := metrics.NewCollector()
	s, err := c.Build(searcher.WithMetrics(collector))
	if err != nil {
		return nil, err
	}
	return NewPacman(s, collector), nil
}

func (a pacman) Index() int {
	return 0
}

func (a pacman) FindMove(state game.State) (game.Direction, metrics.SearchMetric) {
	move := a.searcher.FindMove(state)
	return move, a.metrics.Complete()
}
