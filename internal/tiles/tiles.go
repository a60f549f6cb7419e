// Package tiles implements the tile algebra: the 34 canonical tile values,
// MSPZ text conversions, and the 34-wide count-array type that every other
// package in the engine builds on.
package tiles

import (
	"strings"

	"mahjong/internal/errs"
)

// ID is a canonical tile value, 0..33.
type ID int

const NumIDs = 34

// Manzu 1-9
const (
	Man1 ID = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
)

// Pinzu 1-9
const (
	Pin1 ID = iota + 9
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
)

// Souzu 1-9
const (
	Sou1 ID = iota + 18
	Sou2
	Sou3
	Sou4
	Sou5
	Sou6
	Sou7
	Sou8
	Sou9
)

// Honors
const (
	East ID = iota + 27
	South
	West
	North
	White
	Green
	Red
)

// Suit identifies which of the four tile families an ID belongs to.
type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

// Wind is one of the four seat/round winds, ordered East->South->West->North.
type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

// Next returns the wind following this one in the East->South->West->North cycle.
func (w Wind) Next() Wind { return (w + 1) % 4 }

// ID returns the honor tile id for this wind.
func (w Wind) ID() ID { return East + ID(w) }

// Valid reports whether id is within the canonical 0..33 range.
func (id ID) Valid() bool { return id >= 0 && id < NumIDs }

// Suit classifies id by tile family. Panics if id is invalid: callers must
// validate with Valid first, matching the core's "panics only on invariant
// breaks" policy.
func (id ID) Suit() Suit {
	switch {
	case id >= Man1 && id <= Man9:
		return SuitMan
	case id >= Pin1 && id <= Pin9:
		return SuitPin
	case id >= Sou1 && id <= Sou9:
		return SuitSou
	case id >= East && id <= Red:
		return SuitHonor
	default:
		panic("tiles: id out of range")
	}
}

// IsNumbered reports whether id belongs to one of the three numbered suits.
func (id ID) IsNumbered() bool { return id.Suit() != SuitHonor }

// IsHonor reports whether id is a wind or dragon tile.
func (id ID) IsHonor() bool { return id.Suit() == SuitHonor }

// Rank returns the 1-9 numbered rank for numbered suits, or 1-7 for honors
// (1 East .. 4 North, 5 White, 6 Green, 7 Red).
func (id ID) Rank() int {
	switch id.Suit() {
	case SuitMan:
		return int(id-Man1) + 1
	case SuitPin:
		return int(id-Pin1) + 1
	case SuitSou:
		return int(id-Sou1) + 1
	default:
		return int(id-East) + 1
	}
}

// IsTerminal reports whether id is a 1 or 9 of a numbered suit.
func (id ID) IsTerminal() bool {
	return id.IsNumbered() && (id.Rank() == 1 || id.Rank() == 9)
}

// IsSimple reports whether id is a numbered tile that is neither terminal nor honor.
func (id ID) IsSimple() bool { return id.IsNumbered() && !id.IsTerminal() }

// IsTerminalOrHonor reports whether id counts as yaochuu (terminal or honor).
func (id ID) IsTerminalOrHonor() bool { return id.IsTerminal() || id.IsHonor() }

// IsDragon reports whether id is White, Green or Red.
func (id ID) IsDragon() bool { return id >= White && id <= Red }

// IsWind reports whether id is one of the four wind tiles.
func (id ID) IsWind() bool { return id >= East && id <= North }

// Wind returns the Wind value for a wind tile id. Panics if id is not a wind.
func (id ID) Wind() Wind {
	if !id.IsWind() {
		panic("tiles: id is not a wind tile")
	}
	return Wind(id - East)
}

// IsGreenTile reports whether id can appear in a ryuuiisou (all-green) hand:
// 2/3/4/6/8 souzu and the green dragon.
func (id ID) IsGreenTile() bool {
	if id == Green {
		return true
	}
	if id.Suit() != SuitSou {
		return false
	}
	switch id.Rank() {
	case 2, 3, 4, 6, 8:
		return true
	default:
		return false
	}
}

// letter is the MSPZ suit character for s.
func (s Suit) letter() byte {
	switch s {
	case SuitMan:
		return 'm'
	case SuitPin:
		return 'p'
	case SuitSou:
		return 's'
	default:
		return 'z'
	}
}

// String renders id in MSPZ form, e.g. "5m". Does not express red-five
// status: callers needing "0p" rendering use RenderRed.
func (id ID) String() string {
	if !id.Valid() {
		return "?"
	}
	rank := id.Rank()
	return string([]byte{byte('0' + rank), id.Suit().letter()})
}

// RenderRed renders id as its red-five form ("0m"/"0p"/"0s") if red is true
// and id is a numbered five; otherwise behaves like String.
func (id ID) RenderRed(red bool) string {
	if red && id.IsRedFiveEligible() {
		return string([]byte{'0', id.Suit().letter()})
	}
	return id.String()
}

// IsRedFiveEligible reports whether id is one of the three numbered fives
// (4, 13, 22) that can carry a red-five flag.
func (id ID) IsRedFiveEligible() bool {
	return id == Man5 || id == Pin5 || id == Sou5
}

// Parse reads a single MSPZ tile ("3m", "0p", "7z") and returns its canonical
// ID plus whether the "0" red-five form was used.
func Parse(text string) (ID, bool, error) {
	text = strings.TrimSpace(text)
	if len(text) != 2 {
		return 0, false, errs.Wrapf(errs.ErrParse, "tiles: malformed tile %q", text)
	}
	rankCh, suitCh := text[0], text[1]
	if rankCh < '0' || rankCh > '9' {
		return 0, false, errs.Wrapf(errs.ErrParse, "tiles: malformed rank in %q", text)
	}
	rank := int(rankCh - '0')

	switch suitCh {
	case 'm', 'p', 's':
		red := rank == 0
		if red {
			rank = 5
		}
		if rank < 1 || rank > 9 {
			return 0, false, errs.Wrapf(errs.ErrParse, "tiles: rank %d out of range for numbered suit in %q", rank, text)
		}
		var base ID
		switch suitCh {
		case 'm':
			base = Man1
		case 'p':
			base = Pin1
		case 's':
			base = Sou1
		}
		return base + ID(rank-1), red, nil
	case 'z':
		if rank < 1 || rank > 7 {
			return 0, false, errs.Wrapf(errs.ErrParse, "tiles: honor rank %d out of range in %q", rank, text)
		}
		if rank == 0 {
			return 0, false, errs.Wrapf(errs.ErrParse, "tiles: red flag not valid on honors %q", text)
		}
		return East + ID(rank-1), false, nil
	default:
		return 0, false, errs.Wrapf(errs.ErrParse, "tiles: unknown suit %q in %q", string(suitCh), text)
	}
}

// MustParse is Parse without the red flag, panicking on error. Intended for
// tests and literal construction, never for untrusted input.
func MustParse(text string) ID {
	id, _, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return id
}
