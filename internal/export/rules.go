package export

import (
	"fmt"

	"github.com/worldsmith/worldsmith/internal/region"
	"github.com/worldsmith/worldsmith/internal/yamldoc"
)

// Rules generates the mob-leveling rule list: a spawn-region rule when a
// spawn cuboid applies, one rule covering all hearts, one covering all
// villages, then one preset rule per region with a non-default challenge
// level, in collection order.
func (e *Exporter) Rules(w World, regions region.Collection) (Artifact, error) {
	exportable := regions.Exportable()
	ks := e.buildKeys(w, regions)

	root := yamldoc.NewSeq()

	if ks.spawn != "" {
		root.AddNode(rule(w.Name+"-spawn-protection", "spawn", w.Name, []string{ks.spawn}))
	}

	var heartKeys, villageKeys []string
	for _, r := range exportable {
		heartKeys = append(heartKeys, ks.hearts[r.ID])
		for _, s := range r.Subregions {
			villageKeys = append(villageKeys, ks.villages[s.ID])
		}
	}
	if e.opts.IncludeHeartRegions && len(heartKeys) > 0 {
		root.AddNode(rule(w.Name+"-heart-regions", "heart", w.Name, heartKeys))
	}
	if e.opts.IncludeVillages && len(villageKeys) > 0 {
		root.AddNode(rule(w.Name+"-village-regions", "village", w.Name, villageKeys))
	}

	for _, r := range exportable {
		preset := challengePreset(r.ChallengeLevel)
		if preset == "" {
			continue
		}
		key := ks.regions[r.ID]
		root.AddNode(rule(w.Name+"-"+key, preset, w.Name, []string{key}))
	}

	if root.Len() == 0 {
		e.notify("nothing to export: no spawn, hearts, villages, or challenge levels set", SevError)
		return Artifact{}, fmt.Errorf("no mob-leveling rules to export")
	}

	text, err := yamldoc.Render(root)
	if err != nil {
		e.notify("failed to render mob-leveling rules: "+err.Error(), SevError)
		return Artifact{}, err
	}

	filename := w.Name + "-rules.yml"
	e.notifyf(SevInfo, "exported %d mob-leveling rules to %s", root.Len(), filename)
	return Artifact{Filename: filename, Content: text}, nil
}

func rule(name, preset, world string, regionKeys []string) *yamldoc.Map {
	wgRegions := yamldoc.NewSeq()
	for _, k := range regionKeys {
		wgRegions.Add(k)
	}
	return yamldoc.NewMap().
		Set("custom-rule", name).
		Set("is-enabled", true).
		Set("use-preset", preset).
		SetNode("conditions", yamldoc.NewMap().
			SetNode("worlds", yamldoc.NewSeq().Add(world)).
			SetNode("worldguard-regions", wgRegions))
}
