package sim

import (
	"testing"

	"github.com/milk9111/worldtree/levels"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContentEmbedded(t *testing.T) {
	c, err := LoadContent("", true, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, c.World.RegionIDs())
	assert.NotNil(t, c.Graph)
	assert.Equal(t, 48, c.Game.TileSize)
}

func TestCheckRoomsReportsEveryBadRoom(t *testing.T) {
	spawns, err := prefabs.LoadSpawnTable()
	require.NoError(t, err)
	game, err := prefabs.LoadGameSpec()
	require.NoError(t, err)

	bad := flatRoom(5, 5)
	bad.Mapcodes[2][2] = 77
	short := flatRoom(5, 5)
	short.Layout = short.Layout[:3]

	world := &levels.World{Regions: map[int]*levels.Region{
		1: {ID: 1, Start: "A", Rooms: map[string]*levels.Room{
			"A": flatRoom(5, 5),
			"B": bad,
			"C": short,
		}},
	}}
	err = CheckRooms(world, RoomConfig(game), spawns)
	require.Error(t, err)
	assert.ErrorIs(t, err, room.ErrUnknownMapcode)
	assert.ErrorIs(t, err, levels.ErrMalformedRoom)
}
