// Package export serializes the region model into the YAML dialects
// consumed by the downstream plugins: WorldGuard region definitions, an
// achievements list, an event-conditions list, and a mob-leveling rule
// list. All serializers are deterministic for identical input except the
// deny-spawn mob sampling, which draws from an injectable random source.
package export

import (
	"github.com/worldsmith/worldsmith/internal/geom"
	"github.com/worldsmith/worldsmith/internal/region"
)

// GreetingSize selects how greeting text is laid out across the two title
// lines of a WorldGuard greeting flag.
type GreetingSize string

const (
	GreetingLarge GreetingSize = "large"
	GreetingSmall GreetingSize = "small"
	GreetingChat  GreetingSize = "chat"
)

// Options is the export option set threaded through every serializer.
// It is not domain data but is persisted alongside the project so a
// reopened project exports the same way.
type Options struct {
	UseModernWorldHeight     bool         `json:"useModernWorldHeight" yaml:"use_modern_world_height"`
	IncludeVillages          bool         `json:"includeVillages" yaml:"include_villages"`
	IncludeHeartRegions      bool         `json:"includeHeartRegions" yaml:"include_heart_regions"`
	IncludeSpawnRegion       bool         `json:"includeSpawnRegion" yaml:"include_spawn_region"`
	IncludeRandomMobSpawn    bool         `json:"includeRandomMobSpawn" yaml:"include_random_mob_spawn"`
	UseGreetingsAndFarewells bool         `json:"useGreetingsAndFarewells" yaml:"use_greetings_and_farewells"`
	ShowChallengeSubheading  bool         `json:"showChallengeSubheading" yaml:"show_challenge_subheading"`
	GreetingSize             GreetingSize `json:"greetingSize" yaml:"greeting_size"`
	SpawnRadius              int          `json:"spawnRadius" yaml:"spawn_radius"`
}

// DefaultOptions returns the option set a fresh project starts with.
func DefaultOptions() Options {
	return Options{
		UseModernWorldHeight:     true,
		IncludeVillages:          true,
		IncludeHeartRegions:      true,
		IncludeSpawnRegion:       true,
		IncludeRandomMobSpawn:    false,
		UseGreetingsAndFarewells: true,
		ShowChallengeSubheading:  true,
		GreetingSize:             GreetingLarge,
		SpawnRadius:              16,
	}
}

// worldBounds returns the vertical bounds for the selected world-height
// profile.
func (o Options) worldBounds() (minY, maxY int) {
	if o.UseModernWorldHeight {
		return -64, 320
	}
	return 0, 255
}

// World identifies the world a project annotates.
type World struct {
	Name  string
	Type  region.WorldType
	Spawn *geom.Point
}

// hasSpawnCuboid reports whether the artifact gets a synthetic spawn
// protection cuboid. The nether has no spawn-region concept.
func (o Options) hasSpawnCuboid(w World) bool {
	return o.IncludeSpawnRegion && w.Spawn != nil && w.Type != region.Nether
}
