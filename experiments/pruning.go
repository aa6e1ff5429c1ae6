package experiments

import (
	"context"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
)

// RunPruningExperiment decides pacman's first move on layout with minimax and
// alpha-beta at each depth and records how many states each expands.
func RunPruningExperiment(ctx context.Context, layout string, depths []int) ([]metrics.DepthRecord, error) {
	l, err := game.GetLayout(layout)
	if err != nil {
		return nil, err
	}
	state := game.NewGameState(l, -1)

	log.Info().Str("layout", layout).Ints("depths", depths).Msg("starting pruning experiment...")

	var records []metrics.DepthRecord
	for _, depth := range depths {
		collector := metrics.NewCollector()
		searchers := []interface {
			Decide(game.State) (game.Direction, float64)
		}{
			searcher.NewMinimax(searcher.WithDepth(depth), searcher.WithMetrics(collector)),
			searcher.NewAlphaBeta(searcher.WithDepth(depth), searcher.WithMetrics(collector)),
		}
		for _, s := range searchers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			move, value := s.Decide(state)
			record := metrics.DepthRecord{
				Layout:       layout,
				Depth:        depth,
				Move:         string(move),
				Value:        value,
				SearchMetric: collector.Complete(),
			}
			records = append(records, record)
			log.Info().Int("depth", depth).Str("algorithm", record.Algorithm).Int("expanded", record.Expanded).Msg("completed search")
		}
	}

	log.Info().Msg("completed pruning experiment")
	return records, nil
}
