package export

import "math/rand/v2"

// mobRoster is the fixed pool deny-spawn entries are drawn from.
var mobRoster = []string{
	"allay", "armadillo", "axolotl", "bat", "bee", "blaze", "bogged",
	"breeze", "camel", "cat", "cave_spider", "chicken", "cow", "creeper",
	"dolphin", "donkey", "drowned", "elder_guardian", "enderman",
	"endermite", "evoker", "fox", "frog", "ghast", "glow_squid", "goat",
	"guardian", "hoglin", "horse", "husk", "llama", "magma_cube",
	"mooshroom", "mule", "ocelot", "panda", "parrot", "phantom", "pig",
	"piglin", "piglin_brute", "pillager", "polar_bear", "rabbit",
	"ravager", "sheep", "shulker", "silverfish", "skeleton", "slime",
	"sniffer", "spider", "squid", "stray", "turtle", "vex", "vindicator",
	"warden", "witch", "wither_skeleton", "wolf", "zoglin", "zombie",
	"zombie_villager", "zombified_piglin",
}

// MobSampler draws the deny-spawn list for one region. Injectable so
// tests can pin the randomness.
type MobSampler func() []string

// NewMobSampler returns a sampler drawing 1-8 distinct mobs uniformly
// from the roster using r.
func NewMobSampler(r *rand.Rand) MobSampler {
	return func() []string {
		n := 1 + r.IntN(8)
		pool := make([]string, len(mobRoster))
		copy(pool, mobRoster)
		for i := range n {
			j := i + r.IntN(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		return pool[:n]
	}
}
