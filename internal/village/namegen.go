package village

import (
	"math/rand/v2"

	"github.com/worldsmith/worldsmith/internal/region"
)

var overworldPrefixes = []string{
	"Oak", "Ash", "Elm", "Briar", "Stone", "Mill", "Fox", "Raven",
	"Wolf", "Amber", "Frost", "Thorn", "Green", "River", "Moss", "Hazel",
	"Fern", "Elder", "Willow", "Cinder",
}

var overworldSuffixes = []string{
	"brook", "field", "stead", "haven", "hollow", "vale", "ford",
	"shire", "glen", "wick", "crest", "meadow", "marsh", "bury",
}

var netherPrefixes = []string{
	"Soul", "Ember", "Cinder", "Obsidian", "Basalt", "Crimson",
	"Warped", "Magma", "Blaze", "Gloom", "Wither", "Char",
}

var netherSuffixes = []string{
	"spire", "forge", "maw", "crag", "pyre", "fissure", "reach",
	"hold", "scar", "deep",
}

// NewNameGenerator returns a NameGenerator drawing from world-flavored
// syllable tables using r. Pass a seeded source for reproducible names.
func NewNameGenerator(r *rand.Rand) NameGenerator {
	return func(worldType region.WorldType) string {
		prefixes, suffixes := overworldPrefixes, overworldSuffixes
		if worldType == region.Nether {
			prefixes, suffixes = netherPrefixes, netherSuffixes
		}
		return prefixes[r.IntN(len(prefixes))] + suffixes[r.IntN(len(suffixes))]
	}
}
