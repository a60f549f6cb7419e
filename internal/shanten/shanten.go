package shanten

import (
	"mahjong/internal/errs"
	"mahjong/internal/meld"
	"mahjong/internal/tiles"
)

// Combo is one full standard-shape decomposition of a hand: the declared
// melds plus every group the free-tile decomposition chose.
type Combo struct {
	Melds    []meld.Meld
	Complete int
	Partial  int // taatsu only (penchan/kanchan/ryanmen); pairs are tracked separately
	Pairs    int // number of pair groups chosen, across every suit and honors
	HasPair  bool
}

// suitCounts extracts the 9-wide per-suit slice of a 34-wide count array.
func suitCounts(c tiles.CountArray, base tiles.ID) [9]uint8 {
	var out [9]uint8
	for i := 0; i < 9; i++ {
		out[i] = c.Counts[base+tiles.ID(i)]
	}
	return out
}

// standardCombos enumerates every standard-shape decomposition of free,
// folding in declared (already-complete) melds. Declared melds' tiles are
// assumed not present in free, per §3.
func standardCombos(free tiles.CountArray, declared []meld.Meld) []Combo {
	manDecomps := decomposeSuit(suitCounts(free, tiles.Man1))
	pinDecomps := decomposeSuit(suitCounts(free, tiles.Pin1))
	souDecomps := decomposeSuit(suitCounts(free, tiles.Sou1))

	var honorMelds []meld.Meld
	honorComplete, honorPairs := 0, 0
	for id := tiles.East; id <= tiles.Red; id++ {
		m, complete, pair, present := honorDecomp(id, free.Counts[id])
		if !present {
			continue
		}
		if complete {
			honorComplete++
			honorMelds = append(honorMelds, m)
		} else if pair {
			honorPairs++
			honorMelds = append(honorMelds, m)
		}
		// SingleTile honors are dropped: not counted as partial, matching
		// numbered-suit floating singles.
	}

	declaredComplete := 0
	for _, m := range declared {
		if m.IsComplete() {
			declaredComplete++
		}
	}

	var combos []Combo
	for _, md := range manDecomps {
		for _, pd := range pinDecomps {
			for _, sd := range souDecomps {
				complete := declaredComplete + honorComplete + md.complete + pd.complete + sd.complete
				partial := md.partial + pd.partial + sd.partial
				pairs := honorPairs + md.pairs + pd.pairs + sd.pairs

				melds := make([]meld.Meld, 0, len(declared)+len(honorMelds)+len(md.groups)+len(pd.groups)+len(sd.groups))
				melds = append(melds, declared...)
				melds = append(melds, honorMelds...)
				melds = append(melds, md.toMelds(tiles.Man1)...)
				melds = append(melds, pd.toMelds(tiles.Pin1)...)
				melds = append(melds, sd.toMelds(tiles.Sou1)...)

				combos = append(combos, Combo{
					Melds:    melds,
					Complete: complete,
					Partial:  partial,
					Pairs:    pairs,
					HasPair:  pairs > 0,
				})
			}
		}
	}
	return combos
}

// standardShantenValue applies the §4.3 formula to one combo: two per
// complete set, one per usable taatsu (capped so sets+taatsu never exceed
// four), and one for a reserved pair head. A pair beyond the first cannot
// also serve as head, but it can still complete into a triplet, so it
// counts toward the taatsu total instead of being wasted.
func standardShantenValue(c Combo) int {
	complete := c.Complete
	if complete > 4 {
		complete = 4
	}

	extraPairs := 0
	if c.Pairs > 1 {
		extraPairs = c.Pairs - 1
	}
	taatsu := c.Partial + extraPairs
	if room := 4 - complete; taatsu > room {
		taatsu = room
	}

	pairAdj := 0
	if c.Pairs > 0 {
		pairAdj = 1
	}

	return 8 - 2*complete - taatsu - pairAdj
}

// StandardShanten returns the minimum standard-shape shanten and the combos
// achieving it.
func StandardShanten(free tiles.CountArray, declared []meld.Meld) (int, []Combo) {
	combos := standardCombos(free, declared)
	best := 99
	for _, c := range combos {
		if v := standardShantenValue(c); v < best {
			best = v
		}
	}
	var bestCombos []Combo
	for _, c := range combos {
		if standardShantenValue(c) == best {
			bestCombos = append(bestCombos, c)
		}
	}
	return best, bestCombos
}

// SevenPairsShanten implements §4.3's seven-pairs formula. Only valid when
// no melds are declared.
func SevenPairsShanten(free tiles.CountArray, declared []meld.Meld) (int, bool) {
	if len(declared) > 0 {
		return 0, false
	}
	distinct := 0
	distinctPairsOrMore := 0
	for id := tiles.ID(0); id < tiles.NumIDs; id++ {
		n := free.Counts[id]
		if n >= 1 {
			distinct++
		}
		if n >= 2 {
			distinctPairsOrMore++
		}
	}
	shanten := 6 - distinctPairsOrMore
	if distinct < 7 {
		shanten += 7 - distinct
	}
	return shanten, true
}

// KokushiShanten implements §4.3's thirteen-orphans formula. Only valid
// when no melds are declared.
func KokushiShanten(free tiles.CountArray, declared []meld.Meld) (int, bool) {
	if len(declared) > 0 {
		return 0, false
	}
	terminalsAndHonors := []tiles.ID{
		tiles.Man1, tiles.Man9, tiles.Pin1, tiles.Pin9, tiles.Sou1, tiles.Sou9,
		tiles.East, tiles.South, tiles.West, tiles.North, tiles.White, tiles.Green, tiles.Red,
	}
	distinct := 0
	hasPair := false
	for _, id := range terminalsAndHonors {
		n := free.Counts[id]
		if n >= 1 {
			distinct++
		}
		if n >= 2 {
			hasPair = true
		}
	}
	shanten := 13 - distinct
	if hasPair {
		shanten--
	}
	return shanten, true
}

// Shanten returns the overall minimum shanten across standard, seven-pairs
// and thirteen-orphans decompositions, in -1..8.
func Shanten(free tiles.CountArray, declared []meld.Meld) (int8, error) {
	if err := free.Validate(); err != nil {
		return 0, err
	}
	total := free.Total()
	for _, m := range declared {
		total += len(m.Tiles)
	}
	if total != 13 && total != 14 {
		return 0, errs.Wrapf(errs.ErrInvalidHand, "shanten: total tile count %d not in {13,14}", total)
	}

	best, _ := StandardShanten(free, declared)
	if s, ok := SevenPairsShanten(free, declared); ok && s < best {
		best = s
	}
	if s, ok := KokushiShanten(free, declared); ok && s < best {
		best = s
	}
	return int8(best), nil
}
