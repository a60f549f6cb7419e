// Package fu implements the fu (minipoint) calculator (C6): the 9-step
// procedure of §4.6 applied to one chosen winning interpretation.
package fu

import (
	"mahjong/internal/meld"
	"mahjong/internal/shanten"
	"mahjong/internal/yaku"
)

// effectiveClosed mirrors the package-private helper in internal/yaku: a
// triplet completed by a discard-ron on its third tile counts as open.
func effectiveClosed(in shanten.Interpretation, i int) bool {
	m := in.Melds[i]
	if i == in.WinGroupIndex && in.WinCompletesTripletByRon && m.Variant == meld.Triplet {
		return false
	}
	return m.Closed
}

// tripletFu is the step-4 contribution of one triplet/quad group.
func tripletFu(m meld.Meld, closed bool) int {
	base := 2
	if m.Tiles[0].IsTerminalOrHonor() {
		base *= 2
	}
	if m.Variant == meld.Quadruplet {
		base *= 4
	}
	if closed {
		base *= 2
	}
	return base
}

func pairFu(hand yaku.HandInfo, m meld.Meld) int {
	return yaku.PairValue(hand, m.Tiles[0]) * 2
}

func pinfuApplies(in shanten.Interpretation, hand yaku.HandInfo) bool {
	if in.Shape != shanten.ShapeStandard || !hand.Closed || in.Wait != shanten.WaitRyanmen {
		return false
	}
	for _, m := range in.Melds {
		if m.Variant == meld.Pair {
			if yaku.PairValue(hand, m.Tiles[0]) > 0 {
				return false
			}
			continue
		}
		if m.Variant != meld.Sequence {
			return false
		}
	}
	return true
}

// Calculate runs the §4.6 procedure against one interpretation.
func Calculate(in shanten.Interpretation, hand yaku.HandInfo, win yaku.WinInfo) int {
	switch in.Shape {
	case shanten.ShapeChiitoitsu:
		return 25
	case shanten.ShapeKokushi:
		return 0
	}

	fu := 20

	for i, m := range in.Melds {
		switch m.Variant {
		case meld.Triplet, meld.Quadruplet:
			fu += tripletFu(m, effectiveClosed(in, i))
		case meld.Pair:
			fu += pairFu(hand, m)
		}
	}

	switch in.Wait {
	case shanten.WaitKanchan, shanten.WaitPenchan, shanten.WaitTanki:
		fu += 2
	}

	isPinfu := pinfuApplies(in, hand)
	if win.IsClosedDraw() {
		if !isPinfu {
			fu += 2
		}
	} else if hand.Closed {
		fu += 10
	} else if fu == 20 {
		fu += 2
	}

	return roundUp10(fu)
}

func roundUp10(fu int) int {
	if fu%10 == 0 {
		return fu
	}
	return (fu/10 + 1) * 10
}
