package shanten

import (
	"mahjong/internal/errs"
	"mahjong/internal/meld"
	"mahjong/internal/tiles"
)

// Shape tags which of the three independent decompositions an Interpretation
// was built from.
type Shape int

const (
	ShapeStandard Shape = iota
	ShapeChiitoitsu
	ShapeKokushi
)

// Wait classifies how the winning tile completed its group, for fu purposes.
type Wait int

const (
	WaitRyanmen Wait = iota
	WaitKanchan
	WaitPenchan
	WaitTanki
	WaitShanpon
	WaitNone // chiitoitsu/kokushi: fu is fixed, wait shape is not consulted
)

// Interpretation is one complete structural reading of a winning hand: the
// partition into melds, plus which group absorbed the winning tile and in
// what shape.
type Interpretation struct {
	Shape Shape
	Melds []meld.Meld
	// WinGroupIndex is the index into Melds of the group that contains the
	// winning tile's completion.
	WinGroupIndex int
	Wait          Wait
	// WinCompletesTripletByRon marks a triplet whose third tile arrived via
	// discard-ron: closed for han purposes (menzen unaffected) but open for
	// fu purposes per §4.6 step 4 and excluded from Sanankou per §4.5.
	WinCompletesTripletByRon bool
}

// WinGroup returns the meld the winning tile completed.
func (in Interpretation) WinGroup() meld.Meld { return in.Melds[in.WinGroupIndex] }

// EnumerateWinning returns every admissible interpretation of a completed
// (shanten == -1) 14-tile-equivalent hand, across standard, chiitoitsu and
// kokushi shapes, per §4.4/§4.7 step 1. freeWithWin must already include the
// winning tile; declared melds are the caller's locked calls.
func EnumerateWinning(freeWithWin tiles.CountArray, declared []meld.Meld, winningTile tiles.ID, wonByRon bool) ([]Interpretation, error) {
	if !winningTile.Valid() {
		return nil, errs.Wrapf(errs.ErrInvalidTile, "shanten: winning tile %d out of range", winningTile)
	}

	var out []Interpretation

	combos := standardCombos(freeWithWin, declared)
	for _, c := range combos {
		if standardShantenValue(c) != -1 {
			continue
		}
		out = append(out, standardWinInterpretations(c, winningTile, wonByRon)...)
	}

	if len(declared) == 0 {
		if s, ok := SevenPairsShanten(freeWithWin, declared); ok && s == -1 {
			if in, ok := chiitoitsuInterpretation(freeWithWin, winningTile); ok {
				out = append(out, in)
			}
		}
		if s, ok := KokushiShanten(freeWithWin, declared); ok && s == -1 {
			if in, ok := kokushiInterpretation(freeWithWin, winningTile); ok {
				out = append(out, in)
			}
		}
	}

	return out, nil
}

// standardWinInterpretations inspects one 4-complete+1-pair combo and
// derives every legal way the winning tile could have completed it: a
// sequence/triplet wait (ryanmen/kanchan/penchan), a shanpon (pair
// completed into a triplet), or a tanki (pair completed from a lone tile).
func standardWinInterpretations(c Combo, winningTile tiles.ID, wonByRon bool) []Interpretation {
	var out []Interpretation
	for i, m := range c.Melds {
		if !containsTile(m.Tiles, winningTile) {
			continue
		}
		switch m.Variant {
		case meld.Sequence:
			wait, ok := sequenceWait(m, winningTile)
			if !ok {
				continue
			}
			out = append(out, Interpretation{
				Shape: ShapeStandard, Melds: c.Melds, WinGroupIndex: i, Wait: wait,
			})
		case meld.Triplet:
			// A 4-complete+1-pair combo where the winning tile completes a
			// triplet necessarily held its other (single) pair elsewhere
			// before the win: the pre-win shape was 3 complete + 2 pairs,
			// i.e. a shanpon wait.
			out = append(out, Interpretation{
				Shape: ShapeStandard, Melds: c.Melds, WinGroupIndex: i, Wait: WaitShanpon,
				WinCompletesTripletByRon: wonByRon,
			})
		case meld.Pair:
			out = append(out, Interpretation{
				Shape: ShapeStandard, Melds: c.Melds, WinGroupIndex: i, Wait: WaitTanki,
			})
		}
	}
	return out
}

func containsTile(ids []tiles.ID, id tiles.ID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}

// sequenceWait classifies the wait shape of a sequence that the winning
// tile completed, by looking at where in the run the winning tile sits.
func sequenceWait(m meld.Meld, winningTile tiles.ID) (Wait, bool) {
	lo := m.Tiles[0]
	rank := lo.Rank()
	switch winningTile {
	case lo:
		// pre-win wait was (lo+1, lo+2); that pair is a penchan only when
		// lo+2 is the terminal 9, i.e. the run is 789 and lo has rank 7.
		if rank == 7 {
			return WaitPenchan, true
		}
		return WaitRyanmen, true
	case lo + 2:
		// pre-win wait was (lo, lo+1); that pair is a penchan only when lo
		// is the terminal 1, i.e. the run is 123.
		if rank == 1 {
			return WaitPenchan, true
		}
		return WaitRyanmen, true
	case lo + 1:
		return WaitKanchan, true
	default:
		return 0, false
	}
}

func chiitoitsuInterpretation(free tiles.CountArray, winningTile tiles.ID) (Interpretation, bool) {
	var melds []meld.Meld
	winIdx := -1
	for id := tiles.ID(0); id < tiles.NumIDs; id++ {
		n := free.Counts[id]
		if n == 0 {
			continue
		}
		if n != 2 {
			return Interpretation{}, false // four-of-a-kind or singleton: not a valid chiitoi shape
		}
		m, err := meld.New([]tiles.ID{id, id}, true)
		if err != nil {
			return Interpretation{}, false
		}
		if id == winningTile {
			winIdx = len(melds)
		}
		melds = append(melds, m)
	}
	if len(melds) != 7 || winIdx == -1 {
		return Interpretation{}, false
	}
	return Interpretation{Shape: ShapeChiitoitsu, Melds: melds, WinGroupIndex: winIdx, Wait: WaitNone}, true
}

func kokushiInterpretation(free tiles.CountArray, winningTile tiles.ID) (Interpretation, bool) {
	types := []tiles.ID{
		tiles.Man1, tiles.Man9, tiles.Pin1, tiles.Pin9, tiles.Sou1, tiles.Sou9,
		tiles.East, tiles.South, tiles.West, tiles.North, tiles.White, tiles.Green, tiles.Red,
	}
	var melds []meld.Meld
	winIdx := -1
	for _, id := range types {
		n := free.Counts[id]
		switch n {
		case 0:
			return Interpretation{}, false
		case 1:
			m, _ := meld.New([]tiles.ID{id}, true)
			if id == winningTile {
				winIdx = len(melds)
			}
			melds = append(melds, m)
		case 2:
			m, _ := meld.New([]tiles.ID{id, id}, true)
			if id == winningTile {
				winIdx = len(melds)
			}
			melds = append(melds, m)
		default:
			return Interpretation{}, false
		}
	}
	if winIdx == -1 {
		return Interpretation{}, false
	}
	return Interpretation{Shape: ShapeKokushi, Melds: melds, WinGroupIndex: winIdx, Wait: WaitNone}, true
}
