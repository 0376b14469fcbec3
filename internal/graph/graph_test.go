package graph_test

import (
	"testing"

	"github.com/alexiusacademia/goframe/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedVertexDisconnects(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddVertex(3)
	assert.False(t, g.IsConnected())
}

func TestSharedNodeConnects(t *testing.T) {
	g := graph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	assert.True(t, g.IsConnected())

	g.RemoveEdge(2, 3)
	assert.False(t, g.IsConnected())
	assert.Equal(t, [][]int{{1, 2}, {3}}, g.Components())
}

func TestEmptyGraphIsConnected(t *testing.T) {
	assert.True(t, graph.New().IsConnected())
	assert.Nil(t, graph.New().Reachable(1))
}

func TestReachableOrderAndParallelEdges(t *testing.T) {
	g := graph.New()
	g.AddEdge(10, 30)
	g.AddEdge(30, 10)
	g.AddEdge(10, 20)
	g.AddEdge(20, 40)
	g.AddEdge(5, 5)

	require.Equal(t, 5, g.Order())
	assert.Equal(t, []int{20, 30}, g.Neighbors(10))
	assert.Equal(t, []int{10, 20, 40, 30}, g.Reachable(10))
	assert.Empty(t, g.Neighbors(5))
}

func TestLongChainDoesNotRecurse(t *testing.T) {
	g := graph.New()
	const n = 200000
	for i := 0; i < n; i++ {
		g.AddEdge(i, i+1)
	}
	assert.True(t, g.IsConnected())
	assert.Len(t, g.Reachable(0), n+1)
}
