// Package shanten implements the shanten/ukiere engine (C3) and the
// hand-interpretation enumerator (C4): decomposing a 34-wide count vector
// into meld combinations, and returning either a scalar distance or the
// full set of structural interpretations at a target distance.
package shanten

import (
	"sync"

	"mahjong/internal/meld"
	"mahjong/internal/tiles"
)

// groupKind mirrors meld.Variant but stays suit-agnostic (ranks 0-8) so a
// single decomposition can be cached and reused across all three numbered
// suits regardless of tile-id offset.
type groupKind int

const (
	gSingle groupKind = iota
	gPair
	gPenchan
	gKanchan
	gRyanmen
	gSequence
	gTriplet
	gQuadruplet
)

// abstractGroup is one group in a suit-local decomposition: its kind and the
// lowest rank (0-8) it starts at.
type abstractGroup struct {
	kind    groupKind
	lowRank int
}

// suitDecomp is one candidate decomposition of a single suit's 9-wide count
// vector: the groups chosen (complete and partial; singles are dropped
// tiles and not recorded), plus precomputed tallies.
type suitDecomp struct {
	groups   []abstractGroup
	complete int
	partial  int
	pairs    int
}

var suitCache sync.Map // [9]uint8 -> []suitDecomp

// decomposeSuit returns every distinct decomposition of a 9-wide per-suit
// count vector, memoized per distinct pattern the way SPEC_FULL.md §4.3
// describes: "a precomputed index of per-suit count vector -> decompositions
// built lazily on first use." Correctness matches the plain recursive
// reference; the cache is purely an optimization.
func decomposeSuit(counts [9]uint8) []suitDecomp {
	if v, ok := suitCache.Load(counts); ok {
		return v.([]suitDecomp)
	}
	result := decomposeRec(counts)
	suitCache.Store(counts, result)
	return result
}

func decomposeRec(counts [9]uint8) []suitDecomp {
	idx := -1
	for i, n := range counts {
		if n > 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return []suitDecomp{{}}
	}

	var out []suitDecomp
	seen := map[string]bool{}
	add := func(group *abstractGroup, next [9]uint8) {
		for _, child := range decomposeRec(next) {
			d := suitDecomp{
				complete: child.complete,
				partial:  child.partial,
				pairs:    child.pairs,
			}
			if group != nil {
				d.groups = append(append([]abstractGroup{}, child.groups...), *group)
				switch group.kind {
				case gTriplet, gSequence, gQuadruplet:
					d.complete++
				case gPair:
					// Pairs are tracked separately (d.pairs), not folded into
					// d.partial: at most one pair serves as the hand's head,
					// and standardShantenValue decides how any extra pairs
					// count toward the taatsu total.
					d.pairs++
				case gPenchan, gKanchan, gRyanmen:
					d.partial++
				}
			} else {
				d.groups = child.groups
			}
			if d.complete+d.partial > 5 {
				continue
			}
			key := decompKey(d)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, d)
		}
	}

	// Triplet.
	if counts[idx] >= 3 {
		next := counts
		next[idx] -= 3
		add(&abstractGroup{kind: gTriplet, lowRank: idx}, next)
	}
	// Sequence.
	if idx+2 <= 8 && counts[idx] >= 1 && counts[idx+1] >= 1 && counts[idx+2] >= 1 {
		next := counts
		next[idx]--
		next[idx+1]--
		next[idx+2]--
		add(&abstractGroup{kind: gSequence, lowRank: idx}, next)
	}
	// Pair.
	if counts[idx] >= 2 {
		next := counts
		next[idx] -= 2
		add(&abstractGroup{kind: gPair, lowRank: idx}, next)
	}
	// Ryanmen/Penchan (adjacent two-tile partial).
	if idx+1 <= 8 && counts[idx+1] >= 1 {
		next := counts
		next[idx]--
		next[idx+1]--
		kind := gRyanmen
		if idx == 0 || idx == 7 {
			kind = gPenchan
		}
		add(&abstractGroup{kind: kind, lowRank: idx}, next)
	}
	// Kanchan (gap-of-one partial).
	if idx+2 <= 8 && counts[idx+2] >= 1 {
		next := counts
		next[idx]--
		next[idx+2]--
		add(&abstractGroup{kind: gKanchan, lowRank: idx}, next)
	}
	// Leave as a floating single tile: drop it, no group recorded.
	{
		next := counts
		next[idx]--
		add(nil, next)
	}

	return out
}

func decompKey(d suitDecomp) string {
	buf := make([]byte, 0, len(d.groups)*2)
	for _, g := range d.groups {
		buf = append(buf, byte(g.kind), byte(g.lowRank))
	}
	return string(buf)
}

// toMelds converts an abstract suit decomposition into concrete melds with
// tile ids offset by suitBase (the suit's id-0 value, e.g. tiles.Man1).
func (d suitDecomp) toMelds(suitBase tiles.ID) []meld.Meld {
	out := make([]meld.Meld, 0, len(d.groups))
	for _, g := range d.groups {
		lo := suitBase + tiles.ID(g.lowRank)
		var ids []tiles.ID
		switch g.kind {
		case gSingle:
			ids = []tiles.ID{lo}
		case gPair:
			ids = []tiles.ID{lo, lo}
		case gPenchan, gKanchan, gRyanmen:
			step := 1
			if g.kind == gKanchan {
				step = 2
			}
			ids = []tiles.ID{lo, lo + tiles.ID(step)}
		case gSequence:
			ids = []tiles.ID{lo, lo + 1, lo + 2}
		case gTriplet:
			ids = []tiles.ID{lo, lo, lo}
		case gQuadruplet:
			ids = []tiles.ID{lo, lo, lo, lo}
		}
		m, err := meld.New(ids, true)
		if err != nil {
			panic(err) // invariant: abstract groups are always valid shapes
		}
		out = append(out, m)
	}
	return out
}

// honorDecomp classifies a single honor tile's count deterministically, per
// §4.3: 0 ignored, 1 a SingleTile, 2 a Pair, 3 a Triplet, 4 a Quadruplet.
// Honors never form taatsu, so the only partial shape possible is a pair.
func honorDecomp(id tiles.ID, count uint8) (m meld.Meld, complete, pair bool, present bool) {
	switch count {
	case 0:
		return meld.Meld{}, false, false, false
	case 1:
		mm, _ := meld.New([]tiles.ID{id}, true)
		return mm, false, false, true
	case 2:
		mm, _ := meld.New([]tiles.ID{id, id}, true)
		return mm, false, true, true
	case 3:
		mm, _ := meld.New([]tiles.ID{id, id, id}, true)
		return mm, true, false, true
	case 4:
		mm, _ := meld.New([]tiles.ID{id, id, id, id}, true)
		return mm, true, false, true
	default:
		return meld.Meld{}, false, false, false
	}
}
