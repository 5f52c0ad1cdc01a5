package fragment

// Relocation maps a fragment's old runtime address to its new one,
// carried alongside a Patch for any loaded runtime to apply. The
// concrete runtime representation is out of the patch's scope (spec §9
// Design Notes: "MCU-runtime patch format is deliberately out of
// scope; the Patch shape is specified, the deployment is not").
type Relocation struct {
	From, To FragId
}

// Patch is the diff of the fragment table between two checkpoints.
// Rename is always represented as add+remove (spec §9 Open Questions:
// "Current spec: always add+remove; higher layers may reconcile").
type Patch struct {
	Added   []FragId
	Removed []FragId
	Updated []FragId

	// Fragments holds the new metadata for every added or updated
	// fragment, keyed by FragId.
	Fragments map[FragId]*Fragment

	Relocations []Relocation
}

// Empty reports whether the patch carries no changes.
func (p *Patch) Empty() bool {
	return len(p.Added) == 0 && len(p.Removed) == 0 && len(p.Updated) == 0
}

// Diff computes the patch moving the fragment table from before to
// after. A fragment present in both with an unchanged L3 is omitted;
// present in both with a changed L3 is Updated; present only in after
// is Added; present only in before is Removed.
func Diff(before, after map[FragId]*Fragment) *Patch {
	p := &Patch{Fragments: map[FragId]*Fragment{}}
	for id, frag := range after {
		prev, existed := before[id]
		switch {
		case !existed:
			p.Added = append(p.Added, id)
			p.Fragments[id] = frag
			p.Relocations = append(p.Relocations, Relocation{To: id})
		case prev.L3 != frag.L3:
			p.Updated = append(p.Updated, id)
			p.Fragments[id] = frag
			p.Relocations = append(p.Relocations, Relocation{From: id, To: id})
		}
	}
	for id := range before {
		if _, stillPresent := after[id]; !stillPresent {
			p.Removed = append(p.Removed, id)
		}
	}
	return p
}
