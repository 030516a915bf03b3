package transition

import (
	"testing"

	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	g, err := NewGraph(levels.Transitions{
		1: {
			"Map1": {
				"LEFT":  {edge(0, 9, 1, "West", 2)},
				"RIGHT": {edge(0, 9, 2, "Elsewhere", 0)},
				"DOWN":  {edge(0, 19, 1, "Below", -5)},
			},
			"Below": {"UP": {edge(5, 24, 1, "Map1", 5)}},
		},
	})
	require.NoError(t, err)
	sz := sizes{
		{1, "Map1"}:      {20, 10},
		{1, "West"}:      {8, 14},
		{1, "Below"}:     {30, 6},
		{1, "Orphan"}:    {5, 5},
		{2, "Elsewhere"}: {5, 5},
	}

	got := g.Layout(1, "Map1", sz)
	assert.Equal(t, map[string]common.Vec{
		"Map1":  {X: 0, Y: 0},
		"West":  {X: -8, Y: -2},
		"Below": {X: 5, Y: 10},
	}, got)

	assert.Nil(t, g.Layout(1, "Missing", sz))
}

func TestLayoutEmbeddedRegion(t *testing.T) {
	world, err := levels.Open("")
	require.NoError(t, err)
	g, err := NewGraph(world.Transitions)
	require.NoError(t, err)

	got := g.Layout(1, world.Regions[1].Start, world)
	assert.Equal(t, common.Vec{X: -20, Y: 0}, got["Map2"])
	assert.Equal(t, common.Vec{X: 40, Y: 0}, got["Map3"])
	assert.Equal(t, common.Vec{X: 40, Y: 10}, got["Map4"])
}
