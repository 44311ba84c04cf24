package export

import (
	"fmt"

	"github.com/worldsmith/worldsmith/internal/region"
)

// keyAllocator hands out unique lower_snake_case keys for a single
// artifact. Region names are assumed unique but nothing enforces that in
// the model, so duplicate slugs get a numeric suffix and a warning
// instead of silently overwriting each other.
type keyAllocator struct {
	used   map[string]bool
	notify Notify
}

func newKeyAllocator(notify Notify) *keyAllocator {
	return &keyAllocator{used: make(map[string]bool), notify: notify}
}

func (a *keyAllocator) alloc(name string) string {
	key := region.Slug(name)
	if key == "" {
		key = "region"
	}
	if !a.used[key] {
		a.used[key] = true
		return key
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", key, i)
		if !a.used[candidate] {
			a.used[candidate] = true
			a.notify(fmt.Sprintf("duplicate name %q exported as %q", name, candidate), SevWarning)
			return candidate
		}
	}
}

// keySet maps model identifiers to the WorldGuard keys of one export
// run. Every serializer builds keys through buildKeys in the same order,
// so the four artifacts always agree on key names, suffixes included.
type keySet struct {
	spawn    string            // "" when no spawn cuboid applies
	regions  map[string]string // region ID -> key
	hearts   map[string]string // region ID -> heart key
	villages map[string]string // subregion ID -> key
}

// buildKeys allocates keys for the spawn cuboid, then per region its
// polygon, heart, and village subregions, in collection order. Keys are
// allocated for hearts and villages even when an artifact omits them, so
// suffix numbering never shifts between artifacts.
func (e *Exporter) buildKeys(w World, regions region.Collection) keySet {
	a := newKeyAllocator(e.notify)
	ks := keySet{
		regions:  make(map[string]string),
		hearts:   make(map[string]string),
		villages: make(map[string]string),
	}
	if e.opts.hasSpawnCuboid(w) {
		ks.spawn = a.alloc("spawn")
	}
	for _, r := range regions.Exportable() {
		ks.regions[r.ID] = a.alloc(r.Name)
		ks.hearts[r.ID] = a.alloc("Heart of " + r.Name)
		for _, s := range r.Subregions {
			ks.villages[s.ID] = a.alloc(s.Name)
		}
	}
	return ks
}
