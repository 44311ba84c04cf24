package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldsmith/worldsmith/internal/geom"
	"github.com/worldsmith/worldsmith/internal/region"
)

func TestRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	doc := New("Skyreach Realm", region.Overworld, now)
	doc.Seed = "8132904"
	doc.SpawnCoordinates = &geom.Point{X: 12, Z: -40}
	doc.Regions = region.Collection{{
		ID:             "r1",
		Name:           "Test Vale",
		Points:         []geom.Point{{X: 0, Z: 0}, {X: 10, Z: 0}, {X: 10, Z: 10}},
		ChallengeLevel: region.Gold,
		HasSpawn:       true,
		Subregions: []region.Subregion{{
			ID: "v1", Name: "Oakbrook", X: 3, Z: 4, Radius: 64, Type: "village", ParentRegionID: "r1",
		}},
	}}

	data, err := doc.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Version, back.Version)
	assert.Equal(t, "Skyreach Realm", back.WorldName)
	assert.Equal(t, doc.SpawnCoordinates, back.SpawnCoordinates)
	require.Len(t, back.Regions, 1)
	assert.Equal(t, doc.Regions[0], back.Regions[0])
	assert.Equal(t, doc.ExportSettings, back.ExportSettings)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", "{nope"},
		{"missing version", `{"regions": [], "mapState": {"exportDate": "x"}}`},
		{"missing regions", `{"version": "1.0.0", "mapState": {"exportDate": "x"}}`},
		{"regions not array", `{"version": "1.0.0", "regions": {}, "mapState": {"exportDate": "x"}}`},
		{"missing mapState", `{"version": "1.0.0", "regions": []}`},
		{"mapState without exportDate", `{"version": "1.0.0", "regions": [], "mapState": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestParseLegacyDefaults(t *testing.T) {
	doc, err := Parse([]byte(`{
		"version": "1.0.0",
		"regions": [],
		"mapState": {"exportDate": "2023-01-01T00:00:00Z"},
		"someFutureField": {"ignored": true}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "world", doc.WorldName)
	assert.Equal(t, region.Overworld, doc.WorldType)
	assert.Equal(t, "world", doc.Slug())
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 5, 20, 23, 59, 0, 0, time.UTC)
	doc := New("Skyreach Realm", region.Nether, now)
	assert.Equal(t, "skyreach_realm-nether-2024-05-20.json", doc.Filename(now))
}

func TestMarshalDeterministic(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	a, err := New("world", region.Overworld, now).Marshal()
	require.NoError(t, err)
	b, err := New("world", region.Overworld, now).Marshal()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
