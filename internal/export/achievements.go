package export

import (
	"fmt"

	"github.com/worldsmith/worldsmith/internal/region"
	"github.com/worldsmith/worldsmith/internal/yamldoc"
)

// Achievements generates achievements.yml: a discovery achievement per
// region, one for each region's heart, and one per village subregion.
// Phrasing follows the world type.
func (e *Exporter) Achievements(w World, regions region.Collection) (Artifact, error) {
	exportable := regions.Exportable()
	if len(exportable) == 0 {
		e.notify("nothing to export: no regions with 3 or more points", SevError)
		return Artifact{}, fmt.Errorf("no exportable regions")
	}

	ks := e.buildKeys(w, regions)
	cmds := yamldoc.NewMap()
	count := 0

	add := func(key, message, displayName, achType string) {
		cmds.SetNode(key, yamldoc.NewMap().
			Set("Goal", 1).
			Set("Message", message).
			Set("Name", key).
			Set("DisplayName", displayName).
			Set("Type", achType))
		count++
	}

	for _, r := range exportable {
		add("discover_"+ks.regions[r.ID], regionMessage(w.Type, r.Name), r.Name, "location")
		add("discover_"+ks.hearts[r.ID], heartMessage(w.Type, r.Name), "Heart of "+r.Name, "special")
		for _, s := range r.Subregions {
			add("discover_"+ks.villages[s.ID], "You set foot in "+s.Name+"!", s.Name, "location")
		}
	}

	text, err := yamldoc.Render(yamldoc.NewMap().SetNode("Commands", cmds))
	if err != nil {
		e.notify("failed to render achievements.yml: "+err.Error(), SevError)
		return Artifact{}, err
	}

	e.notifyf(SevInfo, "exported %d achievements to achievements.yml", count)
	return Artifact{Filename: "achievements.yml", Content: text}, nil
}

func regionMessage(wt region.WorldType, name string) string {
	if wt == region.Nether {
		return "You braved the depths of " + name + "!"
	}
	return "You discovered " + name + "!"
}

func heartMessage(wt region.WorldType, name string) string {
	if wt == region.Nether {
		return "You found the burning heart of " + name + "!"
	}
	return "You found the heart of " + name + "!"
}
