package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldsmith/worldsmith/internal/geom"
)

func testRegion(id, name string) *Region {
	return &Region{
		ID:             id,
		Name:           name,
		Points:         []geom.Point{{X: 0, Z: 0}, {X: 10, Z: 0}, {X: 10, Z: 10}, {X: 0, Z: 10}},
		ChallengeLevel: Vanilla,
	}
}

func TestHeart(t *testing.T) {
	r := testRegion("a", "Alpha")

	t.Run("defaults to centroid", func(t *testing.T) {
		assert.Equal(t, geom.Point{X: 5, Z: 5}, r.Heart())
	})

	t.Run("center override wins", func(t *testing.T) {
		r.CenterPoint = &geom.Point{X: 2, Z: 3}
		assert.Equal(t, geom.Point{X: 2, Z: 3}, r.Heart())
	})
}

func TestExportable(t *testing.T) {
	tests := []struct {
		name   string
		region *Region
		want   bool
	}{
		{"full polygon", testRegion("a", "Alpha"), true},
		{"two points", &Region{Name: "x", Points: []geom.Point{{}, {X: 1}}}, false},
		{"no points", &Region{Name: "x"}, false},
		{"empty name", &Region{Points: []geom.Point{{}, {X: 1}, {Z: 1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.region.Exportable())
		})
	}
}

func TestSetSpawnClearsOthers(t *testing.T) {
	a := testRegion("a", "Alpha")
	b := testRegion("b", "Beta")
	c := Collection{a, b}

	require.True(t, c.SetSpawn("a"))
	assert.True(t, a.HasSpawn)
	assert.False(t, b.HasSpawn)

	require.True(t, c.SetSpawn("b"))
	assert.False(t, a.HasSpawn)
	assert.True(t, b.HasSpawn)
	assert.Same(t, b, c.SpawnRegion())

	assert.False(t, c.SetSpawn("missing"))
	assert.Nil(t, c.SpawnRegion())
}

func TestFindParentFirstMatchWins(t *testing.T) {
	outer := testRegion("outer", "Outer")
	inner := testRegion("inner", "Inner") // same footprint, later in list
	c := Collection{outer, inner}

	assert.Same(t, outer, c.FindParent(5, 5))
	assert.Nil(t, c.FindParent(50, 50))

	// Regions still being drawn never match.
	sketch := &Region{ID: "s", Name: "Sketch", Points: []geom.Point{{}, {X: 1}}}
	assert.Nil(t, Collection{sketch}.FindParent(0.5, 0.5))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Test Vale", "test_vale"},
		{"  Frost-Hollow  ", "frost_hollow"},
		{"Dragon's Rest", "dragons_rest"},
		{"Zone 42", "zone_42"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestSubregionNamesAndClear(t *testing.T) {
	a := testRegion("a", "Alpha")
	a.Subregions = []Subregion{{Name: "Oakbrook"}, {Name: "Ashford"}}
	b := testRegion("b", "Beta")
	b.Subregions = []Subregion{{Name: "Thornvale"}}
	c := Collection{a, b}

	names := c.SubregionNames()
	assert.Len(t, names, 3)
	assert.Contains(t, names, "Oakbrook")

	c.ClearSubregions()
	assert.Empty(t, a.Subregions)
	assert.Empty(t, b.Subregions)
}
