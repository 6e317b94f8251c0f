package maze

import (
	"math"
	"testing"

	"multiagent/game"

	"github.com/stretchr/testify/require"
)

func TestEvaluateBetter(t *testing.T) {
	t.Run("terminal states map to sentinels", func(t *testing.T) {
		won := play(t, mustState(t, "%%%%%\n%P.G%\n%%%%%"), 0, East)
		require.Equal(t, float64(game.WinUtility), EvaluateBetter(won))

		lost := mustState(t, "%%%%%%\n%P .G%\n%%%%%%")
		lost = play(t, lost, 0, East)
		lost = play(t, lost, 1, West)
		lost = play(t, lost, 1, West)
		require.Equal(t, float64(game.LoseUtility), EvaluateBetter(lost))
	})

	t.Run("closer food scores higher", func(t *testing.T) {
		s := mustState(t, `
%%%%%%%%%
%P  .   %
%       %
%      G%
%%%%%%%%%
`)
		closer := play(t, s, 0, East)
		further := play(t, s, 0, South)

		require.Greater(t, EvaluateBetter(closer), EvaluateBetter(further))
	})

	t.Run("less food left scores higher", func(t *testing.T) {
		s := mustState(t, `
%%%%%%%%%
%P.. .  %
%       %
%      G%
%%%%%%%%%
`)
		ate := play(t, s, 0, East)
		stayed := play(t, s, 0, Stop)

		require.Greater(t, EvaluateBetter(ate), EvaluateBetter(stayed))
	})

	t.Run("dangerous adversary nearby is penalised", func(t *testing.T) {
		s := mustState(t, `
%%%%%%%%
%.   . %
%P G   %
%%%%%%%%
`)
		near := play(t, s, 0, East)
		away := play(t, s, 0, North)

		require.Less(t, EvaluateBetter(near), EvaluateBetter(away)-DangerPenalty/2)
	})

	t.Run("scared adversary nearby is rewarded", func(t *testing.T) {
		scared := play(t, mustState(t, `
%%%%%%%%%
%.      %
%Po    G%
%%%%%%%%%
`), 0, East)
		unscared := play(t, mustState(t, `
%%%%%%%%%
%.      %
%P     G%
%%%%%%%%%
`), 0, East)
		require.Equal(t, []int{ScaredDuration}, scared.ScaredTimers())
		require.Equal(t, unscared.AgentPosition(), scared.AgentPosition())

		require.Greater(t, EvaluateBetter(scared), EvaluateBetter(unscared))
	})

	t.Run("registered under its name", func(t *testing.T) {
		evaluate, err := game.LookupEvaluation("better")
		require.NoError(t, err)

		s := mustState(t, "%%%%%\n%P.G%\n%%%%%")
		require.Equal(t, EvaluateBetter(s), evaluate(s))
	})

	t.Run("panicking on a foreign state", func(t *testing.T) {
		require.Panics(t, func() {
			EvaluateBetter(nil)
		})
	})
}

func TestProximityWithoutFood(t *testing.T) {
	won := play(t, mustState(t, "%%%%%\n%P.G%\n%%%%%"), 0, East)

	got := proximity(won)

	require.False(t, math.IsInf(got, 0), "No food should not divide by zero")
	require.False(t, math.IsNaN(got))
}

func TestEvaluateReflex(t *testing.T) {
	s := mustState(t, `
%%%%%%%
%P.   %
%    G%
%%%%%%%
`)

	require.Greater(t, EvaluateReflex(s, East), EvaluateReflex(s, Stop), "Eating food should beat standing still")
	require.Panics(t, func() {
		EvaluateReflex(s, West)
	}, "Illegal actions are a programming error")
}
