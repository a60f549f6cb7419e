package tiles

import (
	"sort"
	"strings"

	"mahjong/internal/errs"
)

// CountArray is a 34-wide count vector of a tile multiset, each entry 0..4,
// plus a parallel red-five count per the Open Question resolution in
// SPEC_FULL.md: red-five metadata travels with the count vector rather than
// as a separate caller-maintained list.
type CountArray struct {
	Counts [NumIDs]uint8
	Reds   [NumIDs]uint8 // only ever nonzero at Man5/Pin5/Sou5; Reds[i] <= Counts[i]
}

// Total returns the sum of all counts.
func (c CountArray) Total() int {
	total := 0
	for _, n := range c.Counts {
		total += int(n)
	}
	return total
}

// Count returns the number of copies of id present.
func (c CountArray) Count(id ID) uint8 {
	if !id.Valid() {
		return 0
	}
	return c.Counts[id]
}

// Add inserts one copy of id, optionally flagged red. Fails with
// InvalidTile if id is out of range or if red is requested on a tile that
// cannot be red, and with InvalidHand if the count would exceed 4.
func (c *CountArray) Add(id ID, red bool) error {
	if !id.Valid() {
		return errs.Wrapf(errs.ErrInvalidTile, "tiles: id %d out of range", id)
	}
	if red && !id.IsRedFiveEligible() {
		return errs.Wrapf(errs.ErrInvalidTile, "tiles: %s cannot be a red five", id)
	}
	if c.Counts[id] >= 4 {
		return errs.Wrapf(errs.ErrInvalidHand, "tiles: %s already at 4 copies", id)
	}
	c.Counts[id]++
	if red {
		c.Reds[id]++
	}
	return nil
}

// Remove deletes one copy of id. Fails with Underflow if none are present.
// Prefers removing a non-red copy first, so a caller removing an arbitrary
// copy of a five does not silently lose red-five metadata; RemoveRed is
// available when the caller specifically means the red one.
func (c *CountArray) Remove(id ID) error {
	if !id.Valid() || c.Counts[id] == 0 {
		return errs.Wrapf(errs.ErrUnderflow, "tiles: no %s to remove", id)
	}
	if c.Reds[id] > 0 && c.Reds[id] == c.Counts[id] {
		c.Reds[id]--
	}
	c.Counts[id]--
	return nil
}

// RemoveRed deletes one red copy of id specifically.
func (c *CountArray) RemoveRed(id ID) error {
	if !id.Valid() || c.Reds[id] == 0 {
		return errs.Wrapf(errs.ErrUnderflow, "tiles: no red %s to remove", id)
	}
	c.Reds[id]--
	c.Counts[id]--
	return nil
}

// DistinctIDs returns every id with count >= 1, ascending.
func (c CountArray) DistinctIDs() []ID {
	out := make([]ID, 0, NumIDs)
	for id := ID(0); id < NumIDs; id++ {
		if c.Counts[id] > 0 {
			out = append(out, id)
		}
	}
	return out
}

// AllIDs returns every id repeated by its multiplicity, ascending.
func (c CountArray) AllIDs() []ID {
	out := make([]ID, 0, c.Total())
	for id := ID(0); id < NumIDs; id++ {
		for i := uint8(0); i < c.Counts[id]; i++ {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns an independent copy.
func (c CountArray) Clone() CountArray {
	return c
}

// Merge returns a new CountArray with other's tiles added to c. Does not
// validate the 4-per-id cap: callers combining hand + declared melds for
// display purposes may legitimately exceed it transiently (e.g. when
// checking "is this the 4th copy"), but any caller feeding the result back
// into a public entry point is bound by the normal validation there.
func (c CountArray) Merge(other CountArray) CountArray {
	var out CountArray
	for id := ID(0); id < NumIDs; id++ {
		out.Counts[id] = c.Counts[id] + other.Counts[id]
		out.Reds[id] = c.Reds[id] + other.Reds[id]
	}
	return out
}

// Validate checks the InvalidHand invariants: no entry above 4.
func (c CountArray) Validate() error {
	for id := ID(0); id < NumIDs; id++ {
		if c.Counts[id] > 4 {
			return errs.Wrapf(errs.ErrInvalidHand, "tiles: %s has count %d > 4", id, c.Counts[id])
		}
		if c.Reds[id] > c.Counts[id] {
			return errs.Wrapf(errs.ErrInvalidHand, "tiles: %s has more red copies than total", id)
		}
	}
	return nil
}

// FromIDs builds a CountArray from an ordered list of non-red tile ids.
func FromIDs(ids []ID) (CountArray, error) {
	var c CountArray
	for _, id := range ids {
		if err := c.Add(id, false); err != nil {
			return CountArray{}, err
		}
	}
	return c, nil
}

// ParseMultiset parses an MSPZ hand string such as "123m11222p23456s" into a
// CountArray, honoring "0" as a red five in numbered suits. Whitespace is
// ignored; any other character inside a rank run is a ParseError.
func ParseMultiset(text string) (CountArray, error) {
	var c CountArray
	var rankRun []byte

	flush := func(suitCh byte) error {
		for _, rankCh := range rankRun {
			tile := string([]byte{rankCh, suitCh})
			id, red, err := Parse(tile)
			if err != nil {
				return err
			}
			if err := c.Add(id, red); err != nil {
				return err
			}
		}
		rankRun = rankRun[:0]
		return nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			continue
		case ch >= '0' && ch <= '9':
			rankRun = append(rankRun, ch)
		case ch == 'm' || ch == 'p' || ch == 's' || ch == 'z':
			if len(rankRun) == 0 {
				return CountArray{}, errs.Wrapf(errs.ErrParse, "tiles: suit %q with no preceding ranks", string(ch))
			}
			if err := flush(ch); err != nil {
				return CountArray{}, err
			}
		default:
			return CountArray{}, errs.Wrapf(errs.ErrParse, "tiles: unexpected character %q in %q", string(ch), text)
		}
	}
	if len(rankRun) != 0 {
		return CountArray{}, errs.Wrapf(errs.ErrParse, "tiles: rank run %q not terminated by a suit letter", string(rankRun))
	}
	return c, nil
}

// Render is the inverse of ParseMultiset: renders a CountArray back to MSPZ
// text, grouped by suit in m/p/s/z order, ranks ascending, red fives as "0".
func (c CountArray) Render() string {
	var sb strings.Builder
	suits := []Suit{SuitMan, SuitPin, SuitSou, SuitHonor}
	for _, suit := range suits {
		ids := idsInSuit(suit)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		var runeBuf strings.Builder
		for _, id := range ids {
			for i := uint8(0); i < c.Counts[id]; i++ {
				if i < c.Reds[id] {
					runeBuf.WriteByte('0')
				} else {
					runeBuf.WriteByte(byte('0' + id.Rank()))
				}
			}
		}
		if runeBuf.Len() > 0 {
			sb.WriteString(runeBuf.String())
			sb.WriteByte(suit.letter())
		}
	}
	return sb.String()
}

func idsInSuit(s Suit) []ID {
	out := make([]ID, 0, 9)
	for id := ID(0); id < NumIDs; id++ {
		if id.Suit() == s {
			out = append(out, id)
		}
	}
	return out
}
