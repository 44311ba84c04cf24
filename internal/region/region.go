// Package region defines the annotation data model: named polygon regions
// with derived village subregions, challenge levels, and the collection
// rules that keep the model consistent while editing.
package region

import "github.com/worldsmith/worldsmith/internal/geom"

// ChallengeLevel is the ordered difficulty tag on a region. It drives
// greeting flavor text and the mob-leveling preset; Vanilla is the
// default and produces neither.
type ChallengeLevel string

const (
	Vanilla  ChallengeLevel = "Vanilla"
	Bronze   ChallengeLevel = "Bronze"
	Silver   ChallengeLevel = "Silver"
	Gold     ChallengeLevel = "Gold"
	Platinum ChallengeLevel = "Platinum"
)

// Levels lists all challenge levels in ascending order.
var Levels = []ChallengeLevel{Vanilla, Bronze, Silver, Gold, Platinum}

// Valid reports whether c is a known challenge level.
func (c ChallengeLevel) Valid() bool {
	for _, l := range Levels {
		if c == l {
			return true
		}
	}
	return false
}

// WorldType selects the dimension a project annotates. It changes export
// phrasing and disables the spawn region for the nether.
type WorldType string

const (
	Overworld WorldType = "overworld"
	Nether    WorldType = "nether"
)

// Subregion is a named square footprint nested inside a region, produced
// in bulk from a village import pass.
type Subregion struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	X              int    `json:"x"`
	Z              int    `json:"z"`
	Radius         int    `json:"radius"`
	Type           string `json:"type"`
	Details        string `json:"details,omitempty"`
	ParentRegionID string `json:"parentRegionId"`
}

// Region is the primary annotatable unit: a named polygon with metadata.
type Region struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Points         []geom.Point   `json:"points"`
	CenterPoint    *geom.Point    `json:"centerPoint,omitempty"`
	ChallengeLevel ChallengeLevel `json:"challengeLevel"`
	HasSpawn       bool           `json:"hasSpawn"`
	Subregions     []Subregion    `json:"subregions"`
}

// Heart returns the region's heart location: the explicit center override
// when set, otherwise the polygon centroid. Every caller that places the
// heart (rendering, heart cuboids) must go through this method so the two
// can never disagree.
func (r *Region) Heart() geom.Point {
	if r.CenterPoint != nil {
		return *r.CenterPoint
	}
	return geom.PolygonCenter(r.Points)
}

// Exportable reports whether the region participates in plugin-affecting
// generation. Degenerate polygons may exist while editing but are skipped
// at export.
func (r *Region) Exportable() bool {
	return len(r.Points) >= 3 && r.Name != ""
}

// Contains reports whether the plane point (x, z) lies inside the region
// polygon. Regions with fewer than 3 points contain nothing.
func (r *Region) Contains(x, z float64) bool {
	if len(r.Points) < 3 {
		return false
	}
	return geom.PointInPolygon(geom.Point{X: x, Z: z}, r.Points)
}
