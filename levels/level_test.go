package levels

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenEmbedded(t *testing.T) {
	world, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, world.RegionIDs())
	assert.Equal(t, []string{"Map1", "Map2", "Map3", "Map4"}, world.RoomNames(1))

	w, h, ok := world.RoomSize(1, "Map1")
	require.True(t, ok)
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)

	_, _, ok = world.RoomSize(1, "Nope")
	assert.False(t, ok)
	_, err = world.Room(9, "Map1")
	assert.ErrorIs(t, err, ErrUnknownRoom)

	edges := world.Transitions[1]["Map1"]["RIGHT"]
	require.Len(t, edges, 2)
	assert.Equal(t, Edge{First: 10, Last: 19, Region: 1, Dest: "Map4", Offset: -10}, edges[1])
}

func TestTMXRoomFromRegion(t *testing.T) {
	world, err := Open("")
	require.NoError(t, err)

	room, err := world.Room(2, "Map2")
	require.NoError(t, err)
	assert.Equal(t, 16, room.Width)
	assert.Equal(t, 10, room.Height)
	assert.Equal(t, "roots", room.Tileset)
	assert.Equal(t, "boss", room.Music)
	assert.Equal(t, 15, room.Bounds[9][0])
	assert.Equal(t, 1, room.Bounds[6][5])
	assert.Equal(t, 2, room.Layout[6][5])
	assert.Equal(t, 0, room.Bounds[6][0])
	assert.Equal(t, 11, room.Mapcodes[8][11])
	assert.NoError(t, room.Check())
}

func TestLoadRejectsMalformedRoom(t *testing.T) {
	fsys := fstest.MapFS{
		"region1.json": {Data: []byte(`{"region": 1, "start": "A", "rooms": {"A": {
			"width": 2, "height": 2, "tileset": "t",
			"layout": [[0, 0], [0, 0]],
			"bounds": [[0, 0]],
			"mapcodes": [[0, 0], [0, 0]]}}}`)},
		"transitions.json": {Data: []byte(`{}`)},
	}
	_, err := Load(fsys)
	require.ErrorIs(t, err, ErrMalformedRoom)
	assert.Contains(t, err.Error(), "bounds")
}

func TestLoadRejectsUnknownStart(t *testing.T) {
	fsys := fstest.MapFS{
		"region1.json": {Data: []byte(`{"region": 1, "start": "B", "rooms": {"A": {
			"width": 1, "height": 1, "tileset": "t",
			"layout": [[0]], "bounds": [[0]], "mapcodes": [[0]]}}}`)},
		"transitions.json": {Data: []byte(`{}`)},
	}
	_, err := Load(fsys)
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestLoadNeedsTransitions(t *testing.T) {
	fsys := fstest.MapFS{
		"region1.json": {Data: []byte(`{"region": 1, "rooms": {}}`)},
	}
	_, err := Load(fsys)
	assert.Error(t, err)
}

func TestClassifyContent(t *testing.T) {
	assert.Equal(t, ContentLevel, ClassifyContent("levels/region1.json"))
	assert.Equal(t, ContentLevel, ClassifyContent("levels/a.TMX"))
	assert.Equal(t, ContentPrefab, ClassifyContent("prefabs/hero.yaml"))
	assert.Equal(t, ContentScript, ClassifyContent("prefabs/scripts/walker.tengo"))
	assert.Equal(t, ContentOther, ClassifyContent("README.md"))
}
