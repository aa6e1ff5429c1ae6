package experiments

import (
	"context"
	"testing"

	"pacman/search"

	"github.com/stretchr/testify/require"
)

func TestRunSearchExperiment(t *testing.T) {
	t.Run("runs every strategy on every layout", func(t *testing.T) {
		records, err := RunSearchExperiment(context.Background(), []string{"tinyMaze", "blockedMaze"})
		require.NoError(t, err)
		require.Len(t, records, 2*len(search.StrategyNames))

		for i, record := range records {
			require.Equal(t, search.StrategyNames[i%len(search.StrategyNames)], record.Algorithm)
			if record.Layout == "blockedMaze" {
				require.False(t, record.Found)
				continue
			}
			require.Equal(t, "tinyMaze", record.Layout)
			require.True(t, record.Found)
			require.Positive(t, record.Expanded)
			require.Equal(t, float64(record.PathLength), record.Cost)
		}

		// bfs, ucs and astar are optimal under unit costs
		for _, i := range []int{1, 2, 3} {
			require.Equal(t, 8, records[i].PathLength)
		}
		require.LessOrEqual(t, records[3].Expanded, records[2].Expanded, "A* should expand no more than UCS")
	})

	t.Run("rejects unknown layouts", func(t *testing.T) {
		_, err := RunSearchExperiment(context.Background(), []string{"nowhere"})

		require.Error(t, err)
	})

	t.Run("rejects layouts that are not mazes", func(t *testing.T) {
		_, err := RunSearchExperiment(context.Background(), []string{"smallClassic"})

		require.Error(t, err)
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := RunSearchExperiment(ctx, SearchLayouts)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunGameExperiment(t *testing.T) {
	t.Run("plays every config", func(t *testing.T) {
		configs := []string{"reflex", "alphabeta:depth=1"}

		games, moves, err := RunGameExperiment(context.Background(), configs, "testClassic", 2, 100)
		require.NoError(t, err)
		require.Len(t, games, 4)

		for i, g := range games {
			require.Equal(t, i+1, g.ID)
			require.Equal(t, uint64(100+i), g.Seed)
			require.Equal(t, configs[i/2], g.Agent)
			require.Equal(t, "testClassic", g.Layout)
			require.Equal(t, 1, g.Ghosts)
		}

		total := 0
		for _, g := range games {
			total += g.Moves
		}
		require.Len(t, moves, total)
	})

	t.Run("is reproducible with a seed", func(t *testing.T) {
		run := func() []float64 {
			games, _, err := RunGameExperiment(context.Background(), []string{"expectimax:depth=1"}, "testClassic", 3, 7)
			require.NoError(t, err)
			var scores []float64
			for _, g := range games {
				scores = append(scores, g.Score)
			}
			return scores
		}

		require.Equal(t, run(), run())
	})

	t.Run("rejects bad configs", func(t *testing.T) {
		_, _, err := RunGameExperiment(context.Background(), []string{"mcts"}, "testClassic", 1, 0)

		require.Error(t, err)
	})
}

func TestRunPruningExperiment(t *testing.T) {
	records, err := RunPruningExperiment(context.Background(), "testClassic", []int{1, 2})
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i := 0; i < len(records); i += 2 {
		full, pruned := records[i], records[i+1]
		require.Equal(t, "minimax", full.Algorithm)
		require.Equal(t, "alphabeta", pruned.Algorithm)
		require.Equal(t, full.Move, pruned.Move)
		require.Equal(t, full.Value, pruned.Value)
		require.LessOrEqual(t, pruned.Expanded, full.Expanded)
	}
}

func TestAgentConfigs(t *testing.T) {
	got := AgentConfigs([]string{"reflex", "minimax"})

	require.Equal(t, 1, got[0].ID)
	require.Equal(t, "minimax", got[1].Config)
}
