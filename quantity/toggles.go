package quantity

import "wrapshop-backend/catalog"

// The form layer toggles selections one flag at a time; these helpers
// keep the mutual-exclusion rules in one place so every screen behaves
// the same way.

func contains(set []string, key string) bool {
	for _, k := range set {
		if k == key {
			return true
		}
	}
	return false
}

func without(set []string, key string) []string {
	out := set[:0]
	for _, k := range set {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}

// ToggleDeckZone flips one deck-zone selection. Full coverage is
// mutually exclusive with manual zone picks: if it is active, touching
// any single zone clears the flag first and the selection restarts from
// just that zone.
func (in *Inputs) ToggleDeckZone(key string) {
	if in.FullDeck {
		in.FullDeck = false
		in.DeckZones = []string{key}
		return
	}
	if contains(in.DeckZones, key) {
		in.DeckZones = without(in.DeckZones, key)
	} else {
		in.DeckZones = append(in.DeckZones, key)
	}
}

// SetFullDeck selects every zone atomically (or clears the flag).
func (in *Inputs) SetFullDeck(on bool) {
	in.FullDeck = on
	if on {
		in.DeckZones = nil
	}
}

// ToggleZone flips one vehicle measurement zone, clearing full coverage
// first under the same exclusion rule as deck zones.
func (in *Inputs) ToggleZone(key string) {
	if in.FullCoverage {
		in.FullCoverage = false
		in.Zones = []string{key}
		return
	}
	if contains(in.Zones, key) {
		in.Zones = without(in.Zones, key)
	} else {
		in.Zones = append(in.Zones, key)
	}
}

// SetFullCoverage selects the full-wrap figure atomically.
func (in *Inputs) SetFullCoverage(on bool) {
	in.FullCoverage = on
	if on {
		in.Zones = nil
	}
}

// TogglePPFPackage flips one PPF package selection. The exclusive
// package (full body) clears every other pick when selected, and
// selecting any other package drops the exclusive one.
func (in *Inputs) TogglePPFPackage(cat *catalog.Catalog, key string) {
	p := cat.PPFPackage(key)
	if p == nil {
		return
	}
	if contains(in.Packages, key) {
		in.Packages = without(in.Packages, key)
		return
	}
	if p.Exclusive {
		in.Packages = []string{key}
		return
	}
	kept := make([]string, 0, len(in.Packages)+1)
	for _, k := range in.Packages {
		if sel := cat.PPFPackage(k); sel != nil && !sel.Exclusive {
			kept = append(kept, k)
		}
	}
	in.Packages = append(kept, key)
}
