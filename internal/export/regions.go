package export

import (
	"fmt"
	"math"

	"github.com/worldsmith/worldsmith/internal/geom"
	"github.com/worldsmith/worldsmith/internal/region"
	"github.com/worldsmith/worldsmith/internal/yamldoc"
)

// heartHalf is the half-extent of the 7x7 heart cuboid.
const heartHalf = 3

// Regions generates the WorldGuard regions.yml artifact: a poly2d block
// per exportable region, a spawn cuboid when spawn coordinates exist
// (never for the nether), and optionally a heart cuboid per region and a
// cuboid per village subregion.
func (e *Exporter) Regions(w World, regions region.Collection) (Artifact, error) {
	exportable := regions.Exportable()
	if len(exportable) == 0 && !e.opts.hasSpawnCuboid(w) {
		e.notify("nothing to export: no regions with 3 or more points and no spawn point", SevError)
		return Artifact{}, fmt.Errorf("no exportable regions")
	}

	ks := e.buildKeys(w, regions)
	body := yamldoc.NewMap()

	if ks.spawn != "" {
		body.SetNode(ks.spawn, e.spawnBlock(w))
	}

	villages := 0
	for _, r := range exportable {
		body.SetNode(ks.regions[r.ID], e.regionBlock(r))
		if e.opts.IncludeHeartRegions {
			body.SetNode(ks.hearts[r.ID], e.heartBlock(r))
		}
		if e.opts.IncludeVillages {
			for _, s := range r.Subregions {
				body.SetNode(ks.villages[s.ID], e.villageBlock(s))
				villages++
			}
		}
	}

	text, err := yamldoc.Render(yamldoc.NewMap().SetNode("regions", body))
	if err != nil {
		e.notify("failed to render regions.yml: "+err.Error(), SevError)
		return Artifact{}, err
	}

	e.notifyf(SevInfo, "exported %d regions and %d villages to regions.yml", len(exportable), villages)
	return Artifact{Filename: "regions.yml", Content: text}, nil
}

func (e *Exporter) regionBlock(r *region.Region) *yamldoc.Map {
	minY, maxY := e.opts.worldBounds()
	b := yamldoc.NewMap().
		Set("type", "poly2d").
		Set("min-y", minY).
		Set("max-y", maxY).
		Set("priority", 0)

	flags := yamldoc.NewMap().Set("passthrough", "allow")
	if e.opts.UseGreetingsAndFarewells {
		e.setGreetingFlags(flags, r)
	}
	if e.opts.IncludeRandomMobSpawn && e.mobs != nil {
		deny := yamldoc.NewFlowSeq()
		for _, mob := range e.mobs() {
			deny.Add(mob)
		}
		flags.SetNode("deny-spawn", deny)
	}
	if flags.Len() == 1 {
		flags.Flow()
	}
	b.SetNode("flags", flags)

	points := yamldoc.NewSeq()
	for _, p := range r.Points {
		points.AddNode(pointMap(p))
	}
	b.SetNode("points", points)
	return b
}

// setGreetingFlags writes the greeting/farewell flags for the configured
// greeting size. Large puts the region name on title line 1 with an
// optional colored challenge subheading on line 2; small shifts an
// uncolored entry text onto line 2; chat drops the title flags entirely
// in favor of plain chat greetings.
func (e *Exporter) setGreetingFlags(flags *yamldoc.Map, r *region.Region) {
	switch e.opts.GreetingSize {
	case GreetingSmall:
		flags.Set("greeting-title", " \n&7Now entering "+r.Name)
		flags.Set("farewell-title", " \n&7Now leaving "+r.Name)
	case GreetingChat:
		flags.Set("greeting", "&7Now entering "+r.Name)
		flags.Set("farewell", "&7Now leaving "+r.Name)
	default:
		greeting := "&f" + r.Name
		if e.opts.ShowChallengeSubheading {
			greeting += "\n" + challengeColor(r.ChallengeLevel) + challengeText(r.ChallengeLevel)
		}
		flags.Set("greeting-title", greeting)
		flags.Set("farewell-title", "&f"+r.Name)
	}
}

// heartBlock emits the fixed 7x7 cuboid marking the region's heart,
// placed through Region.Heart so it can never drift from the rendered
// heart marker.
func (e *Exporter) heartBlock(r *region.Region) *yamldoc.Map {
	minY, maxY := e.opts.worldBounds()
	heart := r.Heart()
	hx := int(math.Floor(heart.X))
	hz := int(math.Floor(heart.Z))
	return cuboidBlock(
		hx-heartHalf, hz-heartHalf, hx+heartHalf, hz+heartHalf, minY, maxY, 10,
		yamldoc.NewMap().
			Set("build", "deny").
			Set("pvp", "deny").
			Set("other-explosion", "deny"),
	)
}

// villageBlock emits the square cuboid for a village subregion. Villages
// are overworld-only, so the greeting always uses "Welcome to" phrasing.
func (e *Exporter) villageBlock(s region.Subregion) *yamldoc.Map {
	minY, maxY := e.opts.worldBounds()
	return cuboidBlock(
		s.X-s.Radius, s.Z-s.Radius, s.X+s.Radius, s.Z+s.Radius, minY, maxY, 5,
		yamldoc.NewFlowMap().Set("greeting", "&aWelcome to "+s.Name),
	)
}

// spawnBlock emits the synthetic spawn protection cuboid.
func (e *Exporter) spawnBlock(w World) *yamldoc.Map {
	minY, maxY := e.opts.worldBounds()
	sx := int(math.Floor(w.Spawn.X))
	sz := int(math.Floor(w.Spawn.Z))
	r := e.opts.SpawnRadius
	return cuboidBlock(
		sx-r, sz-r, sx+r, sz+r, minY, maxY, 10,
		yamldoc.NewMap().
			Set("build", "deny").
			Set("pvp", "deny").
			Set("mob-spawning", "deny").
			Set("other-explosion", "deny").
			Set("tnt", "deny"),
	)
}

func cuboidBlock(minX, minZ, maxX, maxZ, minY, maxY, priority int, flags *yamldoc.Map) *yamldoc.Map {
	return yamldoc.NewMap().
		Set("type", "cuboid").
		Set("min-y", minY).
		Set("max-y", maxY).
		Set("priority", priority).
		SetNode("flags", flags).
		SetNode("min", yamldoc.NewFlowMap().Set("x", minX).Set("y", minY).Set("z", minZ)).
		SetNode("max", yamldoc.NewFlowMap().Set("x", maxX).Set("y", maxY).Set("z", maxZ)).
		SetNode("members", yamldoc.NewFlowMap()).
		SetNode("owners", yamldoc.NewFlowMap())
}

func pointMap(p geom.Point) *yamldoc.Map {
	return yamldoc.NewFlowMap().
		Set("x", int(math.Round(p.X))).
		Set("z", int(math.Round(p.Z)))
}
