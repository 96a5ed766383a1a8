// Package sepset implements the separation-set store of spec §4.5: a p×p
// write-once-per-unordered-pair map from a deleted edge {i,j} to the
// conditioning set S that justified its removal.
//
// Writes are first-writer-wins (spec §9, "Separation-matrix write race"):
// if two workers race to delete the same edge with different witnesses,
// whichever SetIfEmpty call observes an empty slot first installs its S and
// the loser's S is discarded. This accepted non-determinism in the witness
// (never in the edge set itself) is documented, not a bug.
package sepset
