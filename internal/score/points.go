package score

import "mahjong/internal/yaku"

// Points is the payment breakdown of §4.7 step 5. Only the fields relevant
// to the winning method (ron vs tsumo) are populated; the rest are zero.
type Points struct {
	Base int

	// Ron: the single discarder's payment.
	RonPayment int

	// Tsumo: per-payer amounts. TsumoFromDealer is zero when the winner is
	// the dealer (all three payers are non-dealers in that case).
	TsumoFromDealer    int
	TsumoFromNonDealer int

	// Total is the winner's full gain: payments plus honba plus riichi
	// sticks on the table.
	Total int
}

func ceilHundred(n int) int {
	if n%100 == 0 {
		return n
	}
	return (n/100 + 1) * 100
}

// baseFromHanFu computes the pre-multiplier base points of §4.7 step 5.
func baseFromHanFu(han, fu int) int {
	switch {
	case han >= 13:
		return 8000
	case han >= 11:
		return 6000
	case han >= 8:
		return 4000
	case han >= 6:
		return 3000
	}
	if han == 5 {
		return 2000
	}
	if han == 4 && fu >= 40 {
		return 2000
	}
	if han == 3 && fu >= 70 {
		return 2000
	}
	raw := fu << uint(2+han)
	if raw > 2000 {
		raw = 2000
	}
	return raw
}

func pointsFor(han, fu int, hand yaku.HandInfo, win yaku.WinInfo) Points {
	return buildPoints(baseFromHanFu(han, fu), hand, win)
}

func yakumanPoints(multiplier int, hand yaku.HandInfo, win yaku.WinInfo) Points {
	return buildPoints(8000*multiplier, hand, win)
}

func buildPoints(base int, hand yaku.HandInfo, win yaku.WinInfo) Points {
	honba := hand.Honba
	sticks := hand.RiichiSticks * 1000
	p := Points{Base: base}

	if isRon(win.Source) {
		mult := 4
		if hand.IsDealer() {
			mult = 6
		}
		p.RonPayment = ceilHundred(base*mult) + honba*100
		p.Total = p.RonPayment + sticks
		return p
	}

	if hand.IsDealer() {
		each := ceilHundred(base*2) + honba*100
		p.TsumoFromNonDealer = each
		p.Total = each*3 + sticks
		return p
	}

	p.TsumoFromDealer = ceilHundred(base*2) + honba*100
	p.TsumoFromNonDealer = ceilHundred(base*1) + honba*100
	p.Total = p.TsumoFromDealer + p.TsumoFromNonDealer*2 + sticks
	return p
}
