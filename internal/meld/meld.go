// Package meld implements the tagged meld variants of §3/§4.2: construction
// from a tile-id list, validity, and "tiles needed to complete" queries.
package meld

import (
	"sort"

	"mahjong/internal/errs"
	"mahjong/internal/tiles"
)

// Variant tags every kind of tile group, complete or partial.
type Variant int

const (
	SingleTile Variant = iota
	Pair
	Penchan
	Kanchan
	Ryanmen
	Sequence
	Triplet
	Quadruplet
)

func (v Variant) String() string {
	switch v {
	case SingleTile:
		return "SingleTile"
	case Pair:
		return "Pair"
	case Penchan:
		return "Penchan"
	case Kanchan:
		return "Kanchan"
	case Ryanmen:
		return "Ryanmen"
	case Sequence:
		return "Sequence"
	case Triplet:
		return "Triplet"
	case Quadruplet:
		return "Quadruplet"
	default:
		return "Unknown"
	}
}

// Meld is a tagged record of 1-4 tile ids, a closed flag, and a variant.
// Canonical form: Tiles sorted ascending.
type Meld struct {
	Variant Variant
	Tiles   []tiles.ID
	Closed  bool
}

// IsComplete reports whether the variant is one of Sequence/Triplet/Quadruplet.
func (m Meld) IsComplete() bool {
	switch m.Variant {
	case Sequence, Triplet, Quadruplet:
		return true
	default:
		return false
	}
}

// IsOpen is the negation of Closed.
func (m Meld) IsOpen() bool { return !m.Closed }

// IsPartial reports whether the variant is a two-tile wait shape
// (Ryanmen/Kanchan/Penchan) or a lone tile/pair awaiting completion.
func (m Meld) IsPartial() bool { return !m.IsComplete() }

// New determines the variant of an unordered tile-id list per the §3 rules,
// with the given closed flag. Fails with InvalidMeld if no variant matches.
func New(ids []tiles.ID, closed bool) (Meld, error) {
	sorted := append([]tiles.ID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, id := range sorted {
		if !id.Valid() {
			return Meld{}, errs.Wrapf(errs.ErrInvalidTile, "meld: id %d out of range", id)
		}
	}

	variant, ok := classify(sorted)
	if !ok {
		return Meld{}, errs.Wrapf(errs.ErrInvalidMeld, "meld: %v matches no variant", sorted)
	}
	return Meld{Variant: variant, Tiles: sorted, Closed: closed}, nil
}

func classify(sorted []tiles.ID) (Variant, bool) {
	switch len(sorted) {
	case 1:
		return SingleTile, true
	case 2:
		return classifyPair(sorted)
	case 3:
		return classifyTriple(sorted)
	case 4:
		if allEqual(sorted) {
			return Quadruplet, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func allEqual(ids []tiles.ID) bool {
	for _, id := range ids {
		if id != ids[0] {
			return false
		}
	}
	return true
}

func classifyPair(sorted []tiles.ID) (Variant, bool) {
	a, b := sorted[0], sorted[1]
	if a == b {
		return Pair, true
	}
	if !a.IsNumbered() || !b.IsNumbered() || a.Suit() != b.Suit() {
		return 0, false
	}
	rankA, rankB := a.Rank(), b.Rank()
	switch rankB - rankA {
	case 1:
		if rankA == 1 || rankA == 8 {
			return Penchan, true
		}
		if rankA >= 2 && rankA <= 7 {
			return Ryanmen, true
		}
		return 0, false
	case 2:
		if rankA >= 1 && rankA <= 7 {
			return Kanchan, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func classifyTriple(sorted []tiles.ID) (Variant, bool) {
	if allEqual(sorted) {
		return Triplet, true
	}
	a, b, c := sorted[0], sorted[1], sorted[2]
	if !a.IsNumbered() || !b.IsNumbered() || !c.IsNumbered() || a.Suit() != b.Suit() || b.Suit() != c.Suit() {
		return 0, false
	}
	if b-a == 1 && c-b == 1 {
		return Sequence, true
	}
	return 0, false
}

// CompletingTiles returns the tile ids that, if added, advance this meld.
// Complete melds return nil.
func (m Meld) CompletingTiles() []tiles.ID {
	switch m.Variant {
	case Sequence, Triplet, Quadruplet:
		return nil
	case SingleTile:
		return []tiles.ID{m.Tiles[0]}
	case Pair:
		return []tiles.ID{m.Tiles[0]}
	case Ryanmen:
		lo := m.Tiles[0]
		rank := lo.Rank()
		ids := make([]tiles.ID, 0, 2)
		if rank-1 >= 1 {
			ids = append(ids, lo-1)
		}
		if rank+2 <= 9 {
			ids = append(ids, m.Tiles[1]+1)
		}
		return ids
	case Kanchan:
		return []tiles.ID{m.Tiles[0] + 1}
	case Penchan:
		lo := m.Tiles[0]
		if lo.Rank() == 1 {
			return []tiles.ID{lo + 2}
		}
		return []tiles.ID{lo - 1}
	default:
		return nil
	}
}
