package game

import (
	"testing"

	"pacman/meta"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) *Layout {
	t.Helper()
	l, err := ParseLayout(t.Name(), text)
	require.NoError(t, err)
	return l
}

func TestNewGameState(t *testing.T) {
	t.Run("places every ghost by default", func(t *testing.T) {
		gs := NewGameState(MustGetLayout("smallClassic"), -1)

		require.Equal(t, 3, gs.NumAgents())
		require.Equal(t, Position{X: 9, Y: 5}, gs.PacmanPosition())
		require.Equal(t, []Position{{X: 8, Y: 1}, {X: 11, Y: 1}}, gs.GhostPositions())
		require.Equal(t, 55, gs.NumFood())
		require.Len(t, gs.Capsules(), 2)
		require.Zero(t, gs.Score())
		require.False(t, gs.IsWin())
		require.False(t, gs.IsLose())
	})

	t.Run("keeps the first ghosts only", func(t *testing.T) {
		gs := NewGameState(MustGetLayout("smallClassic"), 1)

		require.Equal(t, 2, gs.NumAgents())
		require.Equal(t, []Position{{X: 8, Y: 1}}, gs.GhostPositions())
	})
}

func TestLegalActions(t *testing.T) {
	gs := NewGameState(MustGetLayout("testClassic"), -1)

	t.Run("pacman may stop", func(t *testing.T) {
		require.Equal(t, []Direction{East, West, Stop}, gs.LegalActions(0))
	})

	t.Run("ghost may not stop", func(t *testing.T) {
		require.Equal(t, []Direction{East, West}, gs.LegalActions(1))
	})

	t.Run("ghost may not reverse when it has another way", func(t *testing.T) {
		next := gs.Play(1, East)

		require.Equal(t, []Direction{South}, next.LegalActions(1))
	})

	t.Run("panics on unknown agent", func(t *testing.T) {
		require.Panics(t, func() { gs.LegalActions(2) })
	})
}

func TestPlay(t *testing.T) {
	t.Run("eating food", func(t *testing.T) {
		gs := NewGameState(MustGetLayout("testClassic"), -1)

		next := gs.Play(0, West)

		require.Equal(t, Position{X: 1, Y: 1}, next.PacmanPosition())
		require.Equal(t, float64(FOOD_REWARD-TIME_PENALTY), next.Score())
		require.Equal(t, 2, next.NumFood())
		require.False(t, next.HasFood(Position{X: 1, Y: 1}))
		require.Equal(t, 3, gs.NumFood(), "Original state should not change")
		require.True(t, gs.HasFood(Position{X: 1, Y: 1}), "Original state should not change")
		require.Zero(t, gs.Score(), "Original state should not change")
	})

	t.Run("eating the last food wins", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%\n%P.%\n%%%%"), -1)

		next := gs.Play(0, East)

		require.True(t, next.IsWin())
		require.Equal(t, float64(FOOD_REWARD+WIN_REWARD-TIME_PENALTY), next.Score())
		require.Empty(t, next.LegalActions(0), "Terminal states have no legal actions")
		require.Panics(t, func() { next.Play(0, Stop) })
	})

	t.Run("meeting an active ghost loses", func(t *testing.T) {
		gs := NewGameState(MustGetLayout("testClassic"), -1)

		state := gs.Play(0, East).Play(1, West).Play(0, East).Play(1, West)

		require.True(t, state.IsLose())
		require.Equal(t, float64(-2*TIME_PENALTY-LOSE_PENALTY), state.Score())
	})

	t.Run("a capsule lets pacman eat a ghost", func(t *testing.T) {
		gs := NewGameState(mustParse(t, "%%%%%%%\n%Po G.%\n%%%%%%%"), -1)

		scared := gs.Play(0, East)
		require.Empty(t, scared.Capsules())
		require.Equal(t, meta.SCARED_TIME, scared.AgentState(1).ScaredTimer)

		approached := scared.Play(1, West)
		require.Equal(t, meta.SCARED_TIME-1, approached.AgentState(1).ScaredTimer)

		eaten := approached.Play(0, East)
		require.False(t, eaten.IsLose())
		require.Equal(t, float64(GHOST_EAT_REWARD-2*TIME_PENALTY), eaten.Score())
		ghost := eaten.AgentState(1)
		require.Equal(t, ghost.Start, ghost.Position, "Eaten ghost should respawn")
		require.False(t, ghost.IsScared())
	})

	t.Run("panics on illegal action", func(t *testing.T) {
		gs := NewGameState(MustGetLayout("testClassic"), -1)

		require.Panics(t, func() { gs.Play(0, North) })
		require.Panics(t, func() { gs.Play(1, Stop) })
	})

	t.Run("successor satisfies the state interface", func(t *testing.T) {
		var s State = NewGameState(MustGetLayout("testClassic"), -1)

		next := s.Successor(0, West)

		require.IsType(t, &GameState{}, next)
		require.Equal(t, float64(FOOD_REWARD-TIME_PENALTY), next.Score())
	})
}
