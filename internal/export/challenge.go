package export

import "github.com/worldsmith/worldsmith/internal/region"

// challengeColor returns the legacy color code for a level's greeting
// subheading.
func challengeColor(l region.ChallengeLevel) string {
	switch l {
	case region.Bronze:
		return "&6"
	case region.Silver:
		return "&7"
	case region.Gold:
		return "&e"
	case region.Platinum:
		return "&b"
	default:
		return "&a"
	}
}

// challengeText returns the flavor line shown under the region name.
func challengeText(l region.ChallengeLevel) string {
	switch l {
	case region.Bronze:
		return "A land of modest danger"
	case region.Silver:
		return "A land of grave danger"
	case region.Gold:
		return "A land of deadly peril"
	case region.Platinum:
		return "Only legends return from here"
	default:
		return "A peaceful corner of the world"
	}
}

// challengePreset maps a non-default level to its mob-leveling preset
// name. Vanilla has no preset.
func challengePreset(l region.ChallengeLevel) string {
	switch l {
	case region.Bronze:
		return "bronze"
	case region.Silver:
		return "silver"
	case region.Gold:
		return "gold"
	case region.Platinum:
		return "platinum"
	default:
		return ""
	}
}
