package region

// Collection is the ordered set of regions in a project. Order is
// significant: parent-region lookup and export artifacts follow it.
type Collection []*Region

// ByID returns the region with the given id, or nil.
func (c Collection) ByID(id string) *Region {
	for _, r := range c {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Exportable returns the regions that participate in export, preserving
// order.
func (c Collection) Exportable() Collection {
	out := make(Collection, 0, len(c))
	for _, r := range c {
		if r.Exportable() {
			out = append(out, r)
		}
	}
	return out
}

// SetSpawn marks the region with the given id as the spawn region and
// clears the flag on every other region. At most one region may carry
// hasSpawn; this mutator is the sole enforcement point. An unknown id
// clears the flag everywhere and reports false.
func (c Collection) SetSpawn(id string) bool {
	found := false
	for _, r := range c {
		r.HasSpawn = r.ID == id
		if r.HasSpawn {
			found = true
		}
	}
	return found
}

// SpawnRegion returns the region carrying hasSpawn, or nil.
func (c Collection) SpawnRegion() *Region {
	for _, r := range c {
		if r.HasSpawn {
			return r
		}
	}
	return nil
}

// FindParent returns the first region in collection order whose polygon
// contains (x, z), or nil. Overlapping regions resolve by list order;
// there is no area or priority scheme.
func (c Collection) FindParent(x, z float64) *Region {
	for _, r := range c {
		if r.Contains(x, z) {
			return r
		}
	}
	return nil
}

// SubregionNames collects every subregion name across the collection,
// for collision checking during village derivation.
func (c Collection) SubregionNames() map[string]struct{} {
	names := make(map[string]struct{})
	for _, r := range c {
		for _, s := range r.Subregions {
			names[s.Name] = struct{}{}
		}
	}
	return names
}

// ClearSubregions removes all subregions from every region, ahead of a
// bulk regeneration pass.
func (c Collection) ClearSubregions() {
	for _, r := range c {
		r.Subregions = nil
	}
}
