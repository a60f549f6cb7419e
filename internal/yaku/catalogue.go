package yaku

import (
	"mahjong/internal/meld"
	"mahjong/internal/shanten"
	"mahjong/internal/tiles"
)

// Contribution is one yaku's name and han value for a given interpretation.
// A checker that does not apply is simply omitted from the result slice.
type Contribution struct {
	Name string
	Han  int
}

// checker evaluates one named yaku against an interpretation and its
// surrounding context, returning the han it contributes (0 if inapplicable).
type checker func(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int

type entry struct {
	name string
	fn   checker
}

// Catalogue lists every non-yakuman checker in the registry shape of §4.5.
// Order is not significant; Evaluate sums every non-zero contribution.
var Catalogue = []entry{
	{"Menzentsumo", checkMenzentsumo},
	{"Riichi", checkRiichi},
	{"DoubleRiichi", checkDoubleRiichi},
	{"Ippatsu", checkIppatsu},
	{"Pinfu", checkPinfu},
	{"Iipeikou", checkIipeikou},
	{"Ryanpeikou", checkRyanpeikou},
	{"Haitei", checkHaitei},
	{"Houtei", checkHoutei},
	{"Rinshan", checkRinshan},
	{"Chankan", checkChankan},
	{"Tanyao", checkTanyao},
	{"Yakuhai", checkYakuhai},
	{"Chanta", checkChanta},
	{"Junchan", checkJunchan},
	{"SanshokuDoujun", checkSanshokuDoujun},
	{"Ittsu", checkIttsu},
	{"Toitoi", checkToitoi},
	{"Sanankou", checkSanankou},
	{"SanshokuDoukou", checkSanshokuDoukou},
	{"Sankantsu", checkSankantsu},
	{"Chiitoitsu", checkChiitoitsu},
	{"Honroutou", checkHonroutou},
	{"Shousangen", checkShousangen},
	{"Honitsu", checkHonitsu},
	{"Chinitsu", checkChinitsu},
}

// Evaluate runs every non-yakuman checker against one interpretation and
// returns the non-zero contributions.
func Evaluate(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) []Contribution {
	var out []Contribution
	for _, e := range Catalogue {
		if han := e.fn(in, winningTile, hand, win); han > 0 {
			out = append(out, Contribution{Name: e.name, Han: han})
		}
	}
	return out
}

// TotalHan sums the contributions.
func TotalHan(cs []Contribution) int {
	total := 0
	for _, c := range cs {
		total += c.Han
	}
	return total
}

// --- shared helpers -------------------------------------------------------

// effectiveClosed reports whether meld i counts as closed for fu/Sanankou
// purposes: a triplet whose third tile arrived via discard-ron is open even
// though its structural Closed flag (set during decomposition) is true.
func effectiveClosed(in shanten.Interpretation, i int) bool {
	m := in.Melds[i]
	if i == in.WinGroupIndex && in.WinCompletesTripletByRon && m.Variant == meld.Triplet {
		return false
	}
	return m.Closed
}

func pairIndex(in shanten.Interpretation) (int, bool) {
	for i, m := range in.Melds {
		if m.Variant == meld.Pair {
			return i, true
		}
	}
	return 0, false
}

func isTripletLike(v meld.Variant) bool { return v == meld.Triplet || v == meld.Quadruplet }

func allTilesTerminalOrHonor(m meld.Meld) bool {
	for _, t := range m.Tiles {
		if !t.IsTerminalOrHonor() {
			return false
		}
	}
	return true
}

func allTilesNumbered(m meld.Meld) bool {
	for _, t := range m.Tiles {
		if t.IsHonor() {
			return false
		}
	}
	return true
}

func groupHasTerminal(m meld.Meld) bool {
	for _, t := range m.Tiles {
		if t.IsTerminal() {
			return true
		}
	}
	return false
}

// yakuhaiValue returns the han a triplet/quad of id contributes as a value
// tile: 1 for a dragon, 1 more for each of round/seat wind it matches.
func yakuhaiValue(hand HandInfo, id tiles.ID) int {
	return PairValue(hand, id)
}

// PairValue reports how many yakuhai "hits" a dragon or wind tile scores
// against hand: 1 for a dragon, 1 for matching round wind, 1 for matching
// seat wind (so a double-wind tile scores 2). Used both for the Yakuhai
// yaku and, doubled, for the fu pair bonus of §4.6 step 5.
func PairValue(hand HandInfo, id tiles.ID) int {
	if id.IsDragon() {
		return 1
	}
	if !id.IsWind() {
		return 0
	}
	h := 0
	if id == hand.RoundWind.ID() {
		h++
	}
	if id == hand.SeatWind.ID() {
		h++
	}
	return h
}

// --- menzen / riichi / ippatsu --------------------------------------------

func checkMenzentsumo(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if hand.Closed && win.IsClosedDraw() {
		return 1
	}
	return 0
}

func checkRiichi(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if hand.Riichi == RiichiDeclared {
		return 1
	}
	return 0
}

func checkDoubleRiichi(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if hand.Riichi == RiichiDouble {
		return 2
	}
	return 0
}

func checkIppatsu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if hand.Riichi != RiichiNone && hand.Ippatsu {
		return 1
	}
	return 0
}

// --- standard-shape shape yaku ---------------------------------------------

func checkPinfu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard || !hand.Closed || in.Wait != shanten.WaitRyanmen {
		return 0
	}
	pi, ok := pairIndex(in)
	if !ok {
		return 0
	}
	if yakuhaiValue(hand, in.Melds[pi].Tiles[0]) > 0 {
		return 0
	}
	for i, m := range in.Melds {
		if i == pi {
			continue
		}
		if m.Variant != meld.Sequence {
			return 0
		}
	}
	return 1
}

func sequenceKey(m meld.Meld) int {
	return int(m.Tiles[0])
}

func duplicateSequencePairs(in shanten.Interpretation) int {
	counts := map[int]int{}
	for _, m := range in.Melds {
		if m.Variant == meld.Sequence {
			counts[sequenceKey(m)]++
		}
	}
	dup := 0
	for _, n := range counts {
		dup += n / 2
	}
	return dup
}

func checkIipeikou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard || !hand.Closed {
		return 0
	}
	if duplicateSequencePairs(in) == 1 {
		return 1
	}
	return 0
}

func checkRyanpeikou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard || !hand.Closed {
		return 0
	}
	if duplicateSequencePairs(in) == 2 {
		return 3
	}
	return 0
}

// --- situational yaku -------------------------------------------------------

func checkHaitei(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if win.Source == SourceSelfDraw && win.IsLast {
		return 1
	}
	return 0
}

func checkHoutei(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if win.Source == SourceDiscard && win.IsLast {
		return 1
	}
	return 0
}

func checkRinshan(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if win.Source == SourceAfterKan {
		return 1
	}
	return 0
}

func checkChankan(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if win.Source == SourceRobbingKan {
		return 1
	}
	return 0
}

// --- tile-composition yaku ---------------------------------------------------

func checkTanyao(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	for _, m := range in.Melds {
		for _, t := range m.Tiles {
			if t.IsTerminalOrHonor() {
				return 0
			}
		}
	}
	return 1
}

func checkYakuhai(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard {
		return 0
	}
	total := 0
	for _, m := range in.Melds {
		if !isTripletLike(m.Variant) {
			continue
		}
		total += yakuhaiValue(hand, m.Tiles[0])
	}
	return total
}

func chantaHolds(in shanten.Interpretation) bool {
	for _, m := range in.Melds {
		ok := false
		for _, t := range m.Tiles {
			if t.IsTerminalOrHonor() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func junchanHolds(in shanten.Interpretation) bool {
	for _, m := range in.Melds {
		if !allTilesNumbered(m) || !groupHasTerminal(m) {
			return false
		}
	}
	return true
}

func honroutouHolds(in shanten.Interpretation) bool {
	for _, m := range in.Melds {
		if !allTilesTerminalOrHonor(m) {
			return false
		}
	}
	return true
}

func checkChanta(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard || !chantaHolds(in) {
		return 0
	}
	if junchanHolds(in) || honroutouHolds(in) {
		return 0
	}
	if hand.Closed {
		return 2
	}
	return 1
}

func checkJunchan(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard || !junchanHolds(in) {
		return 0
	}
	if hand.Closed {
		return 3
	}
	return 2
}

func checkHonroutou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if !honroutouHolds(in) {
		return 0
	}
	return 2
}

func checkSanshokuDoujun(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard {
		return 0
	}
	bySuit := map[tiles.Suit]map[int]bool{tiles.SuitMan: {}, tiles.SuitPin: {}, tiles.SuitSou: {}}
	for _, m := range in.Melds {
		if m.Variant != meld.Sequence {
			continue
		}
		lo := m.Tiles[0]
		bySuit[lo.Suit()][lo.Rank()] = true
	}
	for rank := 1; rank <= 7; rank++ {
		if bySuit[tiles.SuitMan][rank] && bySuit[tiles.SuitPin][rank] && bySuit[tiles.SuitSou][rank] {
			if hand.Closed {
				return 2
			}
			return 1
		}
	}
	return 0
}

func checkIttsu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard {
		return 0
	}
	present := map[tiles.Suit]map[int]bool{tiles.SuitMan: {}, tiles.SuitPin: {}, tiles.SuitSou: {}}
	for _, m := range in.Melds {
		if m.Variant != meld.Sequence {
			continue
		}
		lo := m.Tiles[0]
		present[lo.Suit()][lo.Rank()] = true
	}
	for _, ranks := range present {
		if ranks[1] && ranks[4] && ranks[7] {
			if hand.Closed {
				return 2
			}
			return 1
		}
	}
	return 0
}

func checkToitoi(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard {
		return 0
	}
	for _, m := range in.Melds {
		if m.Variant == meld.Pair {
			continue
		}
		if !isTripletLike(m.Variant) {
			return 0
		}
	}
	return 2
}

func checkSanankou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard {
		return 0
	}
	n := 0
	for i, m := range in.Melds {
		if isTripletLike(m.Variant) && effectiveClosed(in, i) {
			n++
		}
	}
	if n == 3 {
		return 2
	}
	return 0
}

func checkSanshokuDoukou(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard {
		return 0
	}
	bySuit := map[tiles.Suit]map[int]bool{tiles.SuitMan: {}, tiles.SuitPin: {}, tiles.SuitSou: {}}
	for _, m := range in.Melds {
		if !isTripletLike(m.Variant) {
			continue
		}
		id := m.Tiles[0]
		if id.IsHonor() {
			continue
		}
		bySuit[id.Suit()][id.Rank()] = true
	}
	for rank := 1; rank <= 9; rank++ {
		if bySuit[tiles.SuitMan][rank] && bySuit[tiles.SuitPin][rank] && bySuit[tiles.SuitSou][rank] {
			return 2
		}
	}
	return 0
}

func checkSankantsu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	n := 0
	for _, m := range in.Melds {
		if m.Variant == meld.Quadruplet {
			n++
		}
	}
	if n == 3 {
		return 2
	}
	return 0
}

func checkChiitoitsu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape == shanten.ShapeChiitoitsu {
		return 2
	}
	return 0
}

func checkShousangen(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	if in.Shape != shanten.ShapeStandard {
		return 0
	}
	triplets := 0
	pairIsDragon := false
	for _, m := range in.Melds {
		if !m.Tiles[0].IsDragon() {
			continue
		}
		switch m.Variant {
		case meld.Triplet, meld.Quadruplet:
			triplets++
		case meld.Pair:
			pairIsDragon = true
		}
	}
	if triplets == 2 && pairIsDragon {
		return 2
	}
	return 0
}

func numberedSuitsAndHonorsUsed(in shanten.Interpretation) (suits map[tiles.Suit]bool, honors bool) {
	suits = map[tiles.Suit]bool{}
	for _, m := range in.Melds {
		for _, t := range m.Tiles {
			if t.IsHonor() {
				honors = true
			} else {
				suits[t.Suit()] = true
			}
		}
	}
	return
}

func checkHonitsu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	suits, honors := numberedSuitsAndHonorsUsed(in)
	if len(suits) == 1 && honors {
		if hand.Closed {
			return 3
		}
		return 2
	}
	return 0
}

func checkChinitsu(in shanten.Interpretation, winningTile tiles.ID, hand HandInfo, win WinInfo) int {
	suits, honors := numberedSuitsAndHonorsUsed(in)
	if len(suits) == 1 && !honors {
		if hand.Closed {
			return 6
		}
		return 5
	}
	return 0
}
