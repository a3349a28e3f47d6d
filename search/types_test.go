package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/search"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"random":   search.AlgorithmRandom,
		"BFS":      search.AlgorithmBreadthFirst,
		"dfs":      search.AlgorithmDepthFirst,
		"ucs":      search.AlgorithmDijkstra,
		"greedy":   search.AlgorithmGreedy,
		" A* ":     search.AlgorithmAStar,
		"a-star":   search.AlgorithmAStar,
		"Dijkstra": search.AlgorithmDijkstra,
	}
	for name, want := range cases {
		got, err := search.ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := search.ParseAlgorithm("bogo")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithmNamesRoundTrip(t *testing.T) {
	for _, alg := range search.Algorithms() {
		got, err := search.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	assert.Equal(t, "Algorithm(42)", search.Algorithm(42).String())
}

func TestRunUnknownAlgorithm(t *testing.T) {
	res, err := search.Run[pt](openGrid(2, 2), search.Algorithm(42), pt{0, 0}, pt{1, 1})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestResultNilSafe(t *testing.T) {
	var r *search.Result[int]
	assert.False(t, r.Found())
	assert.Equal(t, -1, r.Len())
}
