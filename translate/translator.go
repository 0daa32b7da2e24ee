package translate

import (
	"fmt"

	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/keymap"
)

// Filter is the capability a snapshot pre-pass must provide. The
// overtake package supplies the stock implementation; callers wanting
// different exclusivity policies (priority rather than recency) plug
// in their own.
type Filter interface {
	// SetMappings hands the filter a read-only view of the mapping
	// table and resets any per-group state.
	SetMappings(mappings []keymap.Mapping)
	// Apply rewrites one tick's raw snapshot into the down-visible
	// snapshot the translator evaluates.
	Apply(raw button.Snapshot) button.Snapshot
}

// Translator owns the mapping table and produces one Batch per
// snapshot. It is not internally synchronized: one goroutine drives
// the tick loop, and callbacks complete before the next Translate.
type Translator struct {
	mappings []keymap.Mapping
	filter   Filter
}

// New validates the table, applies custom timer overrides, installs
// the optional filter, and returns the translator. The mapping slice
// is copied; the translator owns its table for its lifetime.
func New(mappings []keymap.Mapping, filter Filter) (*Translator, error) {
	if err := keymap.Validate(mappings); err != nil {
		return nil, fmt.Errorf("translator: %w", err)
	}
	t := &Translator{
		mappings: append([]keymap.Mapping(nil), mappings...),
		filter:   filter,
	}
	for i := range t.mappings {
		t.mappings[i].InitTimers()
	}
	if t.filter != nil {
		t.filter.SetMappings(t.mappings)
	}
	return t, nil
}

// Translate runs the filter (when present) over the raw snapshot and
// evaluates every mapping in table order against the filtered result.
// Deterministic: same state, snapshot, and clock produce the same
// batch. Infallible on the hot path.
func (t *Translator) Translate(raw button.Snapshot) Batch {
	snap := raw
	if t.filter != nil {
		snap = t.filter.Apply(raw)
	}
	var batch Batch
	for i := range t.mappings {
		m := &t.mappings[i]
		held := snap.Contains(m.Button)
		switch {
		case m.State.IsUp() && m.State.LastSent.Elapsed():
			batch.Resets = append(batch.Resets, newResult(KindReset, m))

		case m.State.IsInitial() && held:
			batch.Downs = append(batch.Downs, newResult(KindDown, m))

		case m.State.IsDown() && held &&
			m.Repeat != keymap.RepeatNone && m.State.FirstRepeat.Elapsed():
			batch.Repeats = append(batch.Repeats, newResult(KindFirstRepeat, m))

		case m.State.IsRepeat() && held &&
			m.Repeat == keymap.RepeatInfinite && m.State.LastSent.Elapsed():
			batch.Repeats = append(batch.Repeats, newResult(KindRepeat, m))

		case (m.State.IsDown() || m.State.IsRepeat()) && !held:
			batch.Ups = append(batch.Ups, newResult(KindUp, m))
		}
	}
	return batch
}

// Cleanup emits an up result for every mapping still in Down or
// Repeat. Callers fire these once at shutdown so no host key is left
// stuck; after firing, a second Cleanup returns nothing.
func (t *Translator) Cleanup() []Result {
	var out []Result
	for i := range t.mappings {
		if t.mappings[i].State.NeedsCleanup() {
			out = append(out, newResult(KindUp, &t.mappings[i]))
		}
	}
	return out
}

// Mappings exposes the owned table as a read-only view, primarily for
// filters constructed after the translator.
func (t *Translator) Mappings() []keymap.Mapping {
	return t.mappings
}
