package yaku

import (
	"mahjong/internal/meld"
	"mahjong/internal/shanten"
	"mahjong/internal/tiles"
)

// Yakuman is one recognized limit hand: Name plus Multiplier (1 for a
// regular yakuman, 2 for a double yakuman).
type Yakuman struct {
	Name       string
	Multiplier int
}

type yakumanChecker func(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool)

var yakumanCatalogue = []yakumanChecker{
	checkKokushiMusou,
	checkSuuankou,
	checkDaisangen,
	checkDaisuushii,
	checkShousuushii,
	checkTsuuiisou,
	checkChinroutou,
	checkRyuuiisou,
	checkSuukantsu,
}

// EvaluateYakuman runs the limit-hand registry against one interpretation.
// Tenhou/Chiihou/Renhou are deliberately absent: they depend on turn-order
// bookkeeping (first uncalled draw of the hand) that this registry has no
// input for.
func EvaluateYakuman(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) []Yakuman {
	var out []Yakuman
	for _, check := range yakumanCatalogue {
		if y, ok := check(in, winningTile, hand, win); ok {
			out = append(out, y)
		}
	}
	return out
}

func checkKokushiMusou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	if in.Shape != shanten.ShapeKokushi {
		return Yakuman{}, false
	}
	if in.Melds[in.WinGroupIndex].Variant == meld.Pair {
		return Yakuman{Name: "KokushiMusouJuusanmen", Multiplier: 2}, true
	}
	return Yakuman{Name: "KokushiMusou", Multiplier: 1}, true
}

func checkSuuankou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	if in.Shape != shanten.ShapeStandard {
		return Yakuman{}, false
	}
	n := 0
	for i, m := range in.Melds {
		if isTripletLike(m.Variant) && effectiveClosed(in, i) {
			n++
		}
	}
	if n != 4 {
		return Yakuman{}, false
	}
	if in.Wait == shanten.WaitTanki {
		return Yakuman{Name: "SuuankouTanki", Multiplier: 2}, true
	}
	return Yakuman{Name: "Suuankou", Multiplier: 1}, true
}

func checkDaisangen(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	if in.Shape != shanten.ShapeStandard {
		return Yakuman{}, false
	}
	n := 0
	for _, m := range in.Melds {
		if isTripletLike(m.Variant) && m.Tiles[0].IsDragon() {
			n++
		}
	}
	if n == 3 {
		return Yakuman{Name: "Daisangen", Multiplier: 1}, true
	}
	return Yakuman{}, false
}

func windTripletCount(in shanten.Interpretation) (triplets int, pairIsWind bool) {
	for _, m := range in.Melds {
		if !m.Tiles[0].IsWind() {
			continue
		}
		switch m.Variant {
		case meld.Triplet, meld.Quadruplet:
			triplets++
		case meld.Pair:
			pairIsWind = true
		}
	}
	return
}

func checkDaisuushii(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	if in.Shape != shanten.ShapeStandard {
		return Yakuman{}, false
	}
	triplets, _ := windTripletCount(in)
	if triplets == 4 {
		return Yakuman{Name: "Daisuushii", Multiplier: 2}, true
	}
	return Yakuman{}, false
}

func checkShousuushii(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	if in.Shape != shanten.ShapeStandard {
		return Yakuman{}, false
	}
	triplets, pairIsWind := windTripletCount(in)
	if triplets == 3 && pairIsWind {
		return Yakuman{Name: "Shousuushii", Multiplier: 1}, true
	}
	return Yakuman{}, false
}

func checkTsuuiisou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	for _, m := range in.Melds {
		for _, t := range m.Tiles {
			if !t.IsHonor() {
				return Yakuman{}, false
			}
		}
	}
	return Yakuman{Name: "Tsuuiisou", Multiplier: 1}, true
}

func checkChinroutou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	for _, m := range in.Melds {
		for _, t := range m.Tiles {
			if !t.IsTerminal() {
				return Yakuman{}, false
			}
		}
	}
	return Yakuman{Name: "Chinroutou", Multiplier: 1}, true
}

func checkRyuuiisou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	for _, m := range in.Melds {
		for _, t := range m.Tiles {
			if !t.IsGreenTile() {
				return Yakuman{}, false
			}
		}
	}
	return Yakuman{Name: "Ryuuiisou", Multiplier: 1}, true
}

func checkSuukantsu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) (Yakuman, bool) {
	n := 0
	for _, m := range in.Melds {
		if m.Variant == meld.Quadruplet {
			n++
		}
	}
	if n == 4 {
		return Yakuman{Name: "Suukantsu", Multiplier: 1}, true
	}
	return Yakuman{}, false
}

// CheckChuurenPoutou is evaluated by the scorer directly against the raw
// count array (§4.5): the nine-gates shape is a property of the whole hand's
// tile multiset, not of any particular meld decomposition, so it does not
// fit the interpretation-based checker signature used above.
func CheckChuurenPoutou(free tiles.CountArray, declared []meld.Meld, winningTile tiles.ID) (Yakuman, bool) {
	if len(declared) != 0 || !winningTile.IsNumbered() {
		return Yakuman{}, false
	}
	suit := winningTile.Suit()
	base := idsInSuit(suit)
	want := [9]uint8{3, 1, 1, 1, 1, 1, 1, 1, 3}
	extra := -1
	for i, id := range base {
		n := free.Count(id)
		if n < want[i] {
			return Yakuman{}, false
		}
		diff := int(n) - int(want[i])
		switch {
		case diff == 0:
		case diff == 1 && extra == -1:
			extra = i
		default:
			return Yakuman{}, false
		}
	}
	for id := tiles.ID(0); id < tiles.NumIDs; id++ {
		if id.Suit() != suit && free.Count(id) != 0 {
			return Yakuman{}, false
		}
	}
	if extra == -1 {
		return Yakuman{}, false
	}
	if base[extra] == winningTile {
		return Yakuman{Name: "JunseiChuurenPoutou", Multiplier: 2}, true
	}
	return Yakuman{Name: "ChuurenPoutou", Multiplier: 1}, true
}

func idsInSuit(s tiles.Suit) [9]tiles.ID {
	var base tiles.ID
	switch s {
	case tiles.SuitMan:
		base = tiles.Man1
	case tiles.SuitPin:
		base = tiles.Pin1
	default:
		base = tiles.Sou1
	}
	var out [9]tiles.ID
	for i := 0; i < 9; i++ {
		out[i] = base + tiles.ID(i)
	}
	return out
}
