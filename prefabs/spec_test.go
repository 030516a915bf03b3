package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	require.NoError(t, err)
	assert.Equal(t, 48, spec.TileSize)
	assert.Equal(t, ViewportSpec{X: 0, Y: 80, Width: 960, Height: 640}, spec.Viewport)
	assert.Equal(t, PointSpec{X: 360, Y: 240}, spec.ScrollMargin)
	assert.Equal(t, "Map1", spec.Start.Room)
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0xff, B: 0x66, A: 0xff}, spec.Colors.Hero.Color)
}

func TestLoadHeroSpec(t *testing.T) {
	spec, err := LoadHeroSpec()
	require.NoError(t, err)
	assert.Equal(t, 72, spec.Width)
	assert.Equal(t, 96, spec.Height)
	assert.Equal(t, InsetSpec{Left: 1, Top: 1, Right: 1, Bottom: 1}, spec.Hitbox)
	assert.Equal(t, 22, spec.JumpDuration)
	assert.Equal(t, "seed", spec.Projectile.Name)
}

func TestSpawnTableLookup(t *testing.T) {
	table, err := LoadSpawnTable()
	require.NoError(t, err)

	tests := []struct {
		code int
		area bool
		ok   bool
	}{
		{1, false, true},
		{11, false, true},
		{129, false, true},
		{131, false, true},
		{254, true, true},
		{255, true, true},
		{12, false, false},
		{200, false, false},
	}
	for _, tt := range tests {
		area, ok := table.Lookup(tt.code)
		assert.Equal(t, tt.ok, ok, "code %d", tt.code)
		assert.Equal(t, tt.area, area, "code %d", tt.code)
	}
	assert.True(t, table.Enemies[11].Boss)
	assert.Len(t, table.Drops, 2)
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "hero.yaml"), []byte("width: 10\nheight: 20\n"), 0o644))
	spec, err := LoadHeroSpec()
	require.NoError(t, err)
	assert.Equal(t, 10, spec.Width)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#10203040")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	_, err = ParseHexColor("#123")
	assert.Error(t, err)

	var unset *YAMLColor
	assert.Equal(t, color.Black, unset.Or(color.Black))
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("prefabs/scripts/walker.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "ground_ahead")
}
