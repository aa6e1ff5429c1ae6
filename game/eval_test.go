package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupEvaluate(t *testing.T) {
	t.Run("resolves registered names", func(t *testing.T) {
		require.Equal(t, []string{"better", "score"}, EvaluationNames())
		for _, name := range EvaluationNames() {
			evaluate, err := LookupEvaluate(name)
			require.NoError(t, err)
			require.NotNil(t, evaluate)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := LookupEvaluate("cunning")

		require.ErrorContains(t, err, "cunning")
	})
}

func TestEvaluateScore(t *testing.T) {
	gs := NewGameState(MustGetLayout("testClassic"), -1).Play(0, West)

	require.Equal(t, gs.Score(), EvaluateScore(gs))
}

func TestEvaluateBetter(t *testing.T) {
	t.Run("terminal states", func(t *testing.T) {
		won := NewGameState(mustParse(t, "%%%%\n%P.%\n%%%%"), -1).Play(0, East)
		require.Equal(t, won.Score()+terminalBonus, EvaluateBetter(won))

		gs := NewGameState(MustGetLayout("testClassic"), -1)
		lost := gs.Play(0, East).Play(1, West).Play(0, East).Play(1, West)
		require.Equal(t, lost.Score()-terminalBonus, EvaluateBetter(lost))
	})

	t.Run("terminal values are finite", func(t *testing.T) {
		won := NewGameState(mustParse(t, "%%%%\n%P.%\n%%%%"), -1).Play(0, East)
		gs := NewGameState(MustGetLayout("testClassic"), -1)
		lost := gs.Play(0, East).Play(1, West).Play(0, East).Play(1, West)

		for _, v := range []float64{EvaluateBetter(won), EvaluateBetter(lost)} {
			require.False(t, math.IsInf(v, 0))
			require.False(t, math.IsNaN(v))
		}
		require.Greater(t, EvaluateBetter(won), EvaluateBetter(gs))
		require.Less(t, EvaluateBetter(lost), EvaluateBetter(gs))
	})

	t.Run("prefers states closer to food", func(t *testing.T) {
		l := mustParse(t, "%%%%%%%\n%P   .%\n%%%%%%%")
		gs := NewGameState(l, -1)

		closer := gs.Play(0, East)
		stayed := gs.Play(0, Stop)

		require.Greater(t, EvaluateBetter(closer), EvaluateBetter(stayed))
	})

	t.Run("prefers keeping away from active ghosts", func(t *testing.T) {
		l := mustParse(t, "%%%%%%%%%\n%.  P  G%\n%%%%%%%%%")
		gs := NewGameState(l, -1)

		away := gs.Play(0, West)
		toward := gs.Play(0, East)

		require.Greater(t, EvaluateBetter(away), EvaluateBetter(toward))
	})

	t.Run("panics on foreign states", func(t *testing.T) {
		require.Panics(t, func() { EvaluateBetter(nil) })
	})
}

func TestEvaluateReflex(t *testing.T) {
	gs := NewGameState(MustGetLayout("testClassic"), -1)

	west := EvaluateReflex(gs, West)
	east := EvaluateReflex(gs, East)
	stop := EvaluateReflex(gs, Stop)

	require.Greater(t, west, east, "Eating food should beat moving toward the ghost")
	require.Greater(t, west, stop, "Eating food should beat stopping")
}
