package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccalmels/volcano/core"
	"github.com/ccalmels/volcano/matrix"
)

// randomNetwork builds n valves with up to three one-way tunnels each.
func randomNetwork(t *testing.T, rng *rand.Rand, n int) *core.Network {
	t.Helper()

	valves := make([]core.Valve, n)
	for i := range valves {
		valves[i].Name = fmt.Sprintf("R%d", i)
		for k := rng.Intn(4); k > 0; k-- {
			valves[i].Tunnels = append(valves[i].Tunnels, fmt.Sprintf("R%d", rng.Intn(n)))
		}
	}
	net, err := core.NewNetwork(valves)
	require.NoError(t, err)

	return net
}

func TestBreadthFirst_NilNetwork(t *testing.T) {
	d, err := matrix.BreadthFirst(nil)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, matrix.ErrNilNetwork)
}

func TestBreadthFirst_MatchesFloydWarshall(t *testing.T) {
	nets := []*core.Network{sampleNetwork(t), chainNetwork(t, 9)}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		nets = append(nets, randomNetwork(t, rng, 3+rng.Intn(25)))
	}

	for i, net := range nets {
		fw, err := matrix.FloydWarshall(net)
		require.NoError(t, err)
		bf, err := matrix.BreadthFirst(net)
		require.NoError(t, err)
		assert.True(t, fw.Equal(bf), "network #%d:\nfw:\n%s\nbfs:\n%s", i, fw, bf)
	}
}
