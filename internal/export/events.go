package export

import (
	"fmt"

	"github.com/worldsmith/worldsmith/internal/region"
	"github.com/worldsmith/worldsmith/internal/yamldoc"
)

// Events generates event_conditions.yml: a one-time enter-region event
// per region, heart, and village, each firing the fixed command sequence
// (wait, grant achievement, bump a counter stat, grant a loot crate).
func (e *Exporter) Events(w World, regions region.Collection) (Artifact, error) {
	exportable := regions.Exportable()
	if len(exportable) == 0 {
		e.notify("nothing to export: no regions with 3 or more points", SevError)
		return Artifact{}, fmt.Errorf("no exportable regions")
	}

	ks := e.buildKeys(w, regions)
	events := yamldoc.NewMap()
	count := 0

	add := func(regionKey, stat string) {
		actions := yamldoc.NewSeq().
			Add("wait 2").
			Add("achievement grant %player% discover_" + regionKey).
			Add("stat increment %player% " + stat).
			Add("crate give %player% " + crateName(w.Type) + " 1")
		events.SetNode("enter_"+regionKey, yamldoc.NewMap().
			Set("type", "region_enter").
			SetNode("conditions", yamldoc.NewSeq().
				AddNode(yamldoc.NewFlowMap().Set("region", regionKey))).
			Set("one_time", true).
			SetNode("actions", yamldoc.NewMap().SetNode("default", actions)))
		count++
	}

	for _, r := range exportable {
		add(ks.regions[r.ID], statName(w.Type, "regions"))
		add(ks.hearts[r.ID], statName(w.Type, "hearts"))
		for _, s := range r.Subregions {
			add(ks.villages[s.ID], statName(w.Type, "villages"))
		}
	}

	text, err := yamldoc.Render(yamldoc.NewMap().SetNode("Events", events))
	if err != nil {
		e.notify("failed to render event_conditions.yml: "+err.Error(), SevError)
		return Artifact{}, err
	}

	e.notifyf(SevInfo, "exported %d events to event_conditions.yml", count)
	return Artifact{Filename: "event_conditions.yml", Content: text}, nil
}

func crateName(wt region.WorldType) string {
	if wt == region.Nether {
		return "nether_explorer"
	}
	return "explorer"
}

func statName(wt region.WorldType, kind string) string {
	if wt == region.Nether {
		return "nether_" + kind + "_found"
	}
	return kind + "_found"
}
