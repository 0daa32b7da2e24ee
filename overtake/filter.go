package overtake

import (
	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/keymap"
)

// Filter rewrites raw snapshots so a translator sees at most one
// active member per exclusivity group, while tracking the overtaken
// queue per group so a release restores the next in line.
//
// The filter holds a read-only view of the translator's mapping table
// for group-membership lookups; it never mutates mapping state.
type Filter struct {
	mappings []keymap.Mapping
	byButton map[button.Button]int
	groups   map[ExclusivityGroupValue]*GroupActivation
}

// New returns an empty filter. SetMappings must run before the first
// Apply; a translator that owns the filter does this during its own
// construction.
func New() *Filter {
	return &Filter{
		byButton: map[button.Button]int{},
		groups:   map[ExclusivityGroupValue]*GroupActivation{},
	}
}

// SetMappings installs the mapping table view and resets every group
// queue. Rebinding at runtime therefore drops all activation state.
func (f *Filter) SetMappings(mappings []keymap.Mapping) {
	f.mappings = mappings
	f.byButton = make(map[button.Button]int, len(mappings))
	f.groups = make(map[ExclusivityGroupValue]*GroupActivation)
	for i := range mappings {
		f.byButton[mappings[i].Button] = i
		if g := mappings[i].Group; g != nil {
			if _, ok := f.groups[*g]; !ok {
				f.groups[*g] = NewGroupActivation(*g)
			}
		}
	}
}

// Apply rewrites one tick's raw snapshot. The returned down-visible
// snapshot contains at most one member per group, and that member is
// the one that should hold Down/Repeat state.
func (f *Filter) Apply(raw button.Snapshot) button.Snapshot {
	deferred := f.dropDuplicateGroupClaims(raw.Clone())
	visible := f.filterDowns(deferred)
	f.scanUps(raw)
	return visible
}

// dropDuplicateGroupClaims walks the snapshot left to right and keeps
// only the first *new* activation per group this tick; later claims of
// an already-claimed group are deferred to the next tick. Processing
// more than one new activation per group in one tick would update
// group state for downs the translator never saw.
func (f *Filter) dropDuplicateGroupClaims(snap button.Snapshot) button.Snapshot {
	var claimed []ExclusivityGroupValue
	var drop []button.Button
	for _, b := range snap {
		m := f.mappingFor(b)
		if m == nil || m.Group == nil {
			continue
		}
		g := *m.Group
		if f.groups[g].IsTracked(b) {
			continue
		}
		already := false
		for _, c := range claimed {
			if c == g {
				already = true
				break
			}
		}
		if already {
			drop = append(drop, b)
		} else {
			claimed = append(claimed, g)
		}
	}
	return snap.Remove(drop...)
}

// filterDowns consults each group for the remaining downs, removing
// suppressed presses (already overtaken, still waiting) and any
// just-overtaken previous activation (about to be released, not
// pressed).
func (f *Filter) filterDowns(snap button.Snapshot) button.Snapshot {
	var drop []button.Button
	for _, b := range snap {
		m := f.mappingFor(b)
		if m == nil || m.Group == nil {
			continue
		}
		suppress, syntheticUp := f.groups[*m.Group].OnNewDown(b)
		if suppress {
			drop = append(drop, b)
		}
		if syntheticUp != button.NotSet {
			drop = append(drop, syntheticUp)
		}
	}
	return snap.Remove(drop...)
}

// scanUps releases every grouped mapping absent from the raw snapshot.
// The restored front, if any, is discarded: it is still physically
// held, so the next raw snapshot reports it and the translator issues
// its down then; synthesizing it here would duplicate that down.
func (f *Filter) scanUps(raw button.Snapshot) {
	for i := range f.mappings {
		m := &f.mappings[i]
		if m.Group == nil || raw.Contains(m.Button) {
			continue
		}
		f.groups[*m.Group].OnNewUp(m.Button)
	}
}

// Clone returns an independent filter over the same mapping table view
// with every group queue copied verbatim.
func (f *Filter) Clone() *Filter {
	c := &Filter{
		mappings: f.mappings,
		byButton: f.byButton,
		groups:   make(map[ExclusivityGroupValue]*GroupActivation, len(f.groups)),
	}
	for g, a := range f.groups {
		c.groups[g] = a.clone()
	}
	return c
}

// GroupQueue returns a copy of the activation queue for g, front
// first. Absent groups return nil.
func (f *Filter) GroupQueue(g ExclusivityGroupValue) []button.Button {
	a, ok := f.groups[g]
	if !ok {
		return nil
	}
	return a.Queue()
}

func (f *Filter) mappingFor(b button.Button) *keymap.Mapping {
	i, ok := f.byButton[b]
	if !ok {
		return nil
	}
	return &f.mappings[i]
}
