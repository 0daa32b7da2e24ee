package translate

// Batch groups one tick's results into four ordered buckets. Releases
// fire before new acquisitions so a single tick can never leave the
// host observing two simultaneous downs for one logical key.
type Batch struct {
	Ups     []Result
	Downs   []Result
	Repeats []Result
	Resets  []Result
}

// Empty reports whether the batch carries no results.
func (b Batch) Empty() bool {
	return len(b.Ups) == 0 && len(b.Downs) == 0 && len(b.Repeats) == 0 && len(b.Resets) == 0
}

// Len returns the total number of results across buckets.
func (b Batch) Len() int {
	return len(b.Ups) + len(b.Downs) + len(b.Repeats) + len(b.Resets)
}

// Fire invokes every result in bucket order ups, downs, repeats,
// resets; insertion order within each bucket. Firing a batch twice is
// undefined: commits have already advanced the state machines.
func (b Batch) Fire() {
	for _, r := range b.Ups {
		r.Do()
	}
	for _, r := range b.Downs {
		r.Do()
	}
	for _, r := range b.Repeats {
		r.Do()
	}
	for _, r := range b.Resets {
		r.Do()
	}
}

// Each visits every result in firing order without invoking it, for
// callers that interleave their own observation with Do.
func (b Batch) Each(fn func(Result)) {
	for _, r := range b.Ups {
		fn(r)
	}
	for _, r := range b.Downs {
		fn(r)
	}
	for _, r := range b.Repeats {
		fn(r)
	}
	for _, r := range b.Resets {
		fn(r)
	}
}
