package village

import (
	"fmt"

	"github.com/worldsmith/worldsmith/internal/region"
)

const (
	// DefaultRadius is the fixed footprint radius of a village subregion.
	DefaultRadius = 64

	// SubregionType tags subregions produced by this package. Villages
	// are the only derived subregion kind today.
	SubregionType = "village"

	nameRetries   = 100
	suffixRetries = 1000
)

// NameGenerator produces a display name for a derived subregion. The
// world type selects the naming flavor.
type NameGenerator func(worldType region.WorldType) string

// FindParentRegion returns the first region in collection order whose
// polygon contains the village point, or nil if no region does. With
// overlapping regions the earliest wins; there is no deliberate priority
// scheme beyond list order.
func FindParentRegion(v Village, regions region.Collection) *region.Region {
	return regions.FindParent(float64(v.X), float64(v.Z))
}

// NewSubregion builds a subregion for a village assigned to the given
// parent. The name comes from gen, retried up to 100 times on collision
// with existing; if every retry collides a numeric suffix is appended
// instead, counting up until a free name is found. The chosen name is
// recorded in existing.
func NewSubregion(v Village, index int, parentID string, existing map[string]struct{}, worldType region.WorldType, gen NameGenerator) region.Subregion {
	name := gen(worldType)
	for range nameRetries {
		if _, taken := existing[name]; !taken {
			break
		}
		name = gen(worldType)
	}
	if _, taken := existing[name]; taken {
		base := name
		for i := 2; i <= suffixRetries; i++ {
			candidate := fmt.Sprintf("%s %d", base, i)
			if _, t := existing[candidate]; !t {
				name = candidate
				break
			}
		}
	}
	existing[name] = struct{}{}

	return region.Subregion{
		ID:             fmt.Sprintf("village-%d", index),
		Name:           name,
		X:              v.X,
		Z:              v.Z,
		Radius:         DefaultRadius,
		Type:           SubregionType,
		Details:        v.Details,
		ParentRegionID: parentID,
	}
}

// Stats summarizes a derivation pass.
type Stats struct {
	Assigned  int
	Unmatched int
}

// Derive replaces every region's subregions with ones derived from the
// given villages. Villages outside all regions are counted but dropped.
func Derive(villages []Village, regions region.Collection, worldType region.WorldType, gen NameGenerator) Stats {
	regions.ClearSubregions()
	existing := regions.SubregionNames()

	var stats Stats
	for i, v := range villages {
		parent := FindParentRegion(v, regions)
		if parent == nil {
			stats.Unmatched++
			continue
		}
		sub := NewSubregion(v, i, parent.ID, existing, worldType, gen)
		parent.Subregions = append(parent.Subregions, sub)
		stats.Assigned++
	}
	return stats
}
