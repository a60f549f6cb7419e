// Package score implements the scorer (C7): it drives the interpretation
// enumerator (C4), the yaku catalogue (C5) and the fu calculator (C6) and
// converts the winning (han, fu) pair into a point payment.
package score

import (
	"mahjong/internal/fu"
	"mahjong/internal/meld"
	"mahjong/internal/shanten"
	"mahjong/internal/tiles"
	"mahjong/internal/yaku"
)

// Request bundles everything Score needs: the winning 14-tile-equivalent
// hand (free multiset plus any locked calls), the winning tile, and the
// surrounding hand/win context.
type Request struct {
	Free        tiles.CountArray
	Declared    []meld.Meld
	WinningTile tiles.ID
	Hand        yaku.HandInfo
	Win         yaku.WinInfo
}

// Result is one scored hand: the chosen interpretation plus its breakdown.
type Result struct {
	Interpretation shanten.Interpretation
	Han            int
	Fu             int
	Yaku           []yaku.Contribution
	Yakuman        []yaku.Yakuman
	DoraHan        int
	Points         Points
}

func isRon(source yaku.SourceKind) bool {
	return source == yaku.SourceDiscard || source == yaku.SourceRobbingKan
}

// Score runs §4.7's algorithm and returns the best-scoring interpretation.
// A hand that is not a winning shape, or that carries no yaku, yields a
// zero Result and a nil error.
func Score(req Request) (Result, error) {
	wonByRon := isRon(req.Win.Source)
	interps, err := shanten.EnumerateWinning(req.Free, req.Declared, req.WinningTile, wonByRon)
	if err != nil {
		return Result{}, err
	}
	if len(interps) == 0 {
		return Result{}, nil // not a winning shape: zero result, not an error
	}

	if ym := bestYakuman(interps, req); len(ym) > 0 {
		mult := 0
		for _, y := range ym {
			mult += y.Multiplier
		}
		return Result{
			Han:     13 * mult,
			Yakuman: ym,
			Points:  yakumanPoints(mult, req.Hand, req.Win),
		}, nil
	}

	var best *Result
	for _, in := range interps {
		if in.Shape == shanten.ShapeKokushi {
			continue // kokushi only ever scores via the yakuman path above
		}
		contributions := yaku.Evaluate(in, req.WinningTile, req.Hand, req.Win)
		hanSum := yaku.TotalHan(contributions)
		if hanSum == 0 {
			continue
		}
		dora := doraHan(in, req.Free, req.Hand.Dora)
		total := hanSum + dora
		fuVal := fu.Calculate(in, req.Hand, req.Win)

		if best == nil || total > best.Han || (total == best.Han && fuVal > best.Fu) {
			best = &Result{
				Interpretation: in,
				Han:            total,
				Fu:             fuVal,
				Yaku:           contributions,
				DoraHan:        dora,
			}
		}
	}

	if best == nil {
		return Result{}, nil // no yaku: zero result, not an error
	}
	best.Points = pointsFor(best.Han, best.Fu, req.Hand, req.Win)
	return *best, nil
}

// bestYakuman collects every yakuman found across every interpretation
// (including the suit-multiset-level nine-gates check, which does not
// depend on a particular decomposition) and dedupes by name, keeping the
// highest multiplier seen for each.
func bestYakuman(interps []shanten.Interpretation, req Request) []yaku.Yakuman {
	byName := map[string]yaku.Yakuman{}
	for _, in := range interps {
		for _, y := range yaku.EvaluateYakuman(in, req.WinningTile, req.Hand, req.Win) {
			if cur, ok := byName[y.Name]; !ok || y.Multiplier > cur.Multiplier {
				byName[y.Name] = y
			}
		}
	}
	if y, ok := yaku.CheckChuurenPoutou(req.Free, req.Declared, req.WinningTile); ok {
		if cur, exists := byName[y.Name]; !exists || y.Multiplier > cur.Multiplier {
			byName[y.Name] = y
		}
	}
	out := make([]yaku.Yakuman, 0, len(byName))
	for _, y := range byName {
		out = append(out, y)
	}
	return out
}

// doraHan counts dora-matching tiles across the winning meld list, plus one
// han per red-five tile recorded in the free count array. Red fives inside
// declared (called) melds are not tracked: Meld carries no red-flag
// metadata, so that case is out of scope (see DESIGN.md).
func doraHan(in shanten.Interpretation, free tiles.CountArray, dora []tiles.ID) int {
	total := 0
	for _, m := range in.Melds {
		for _, t := range m.Tiles {
			for _, d := range dora {
				if t == d {
					total++
				}
			}
		}
	}
	total += int(free.Reds[tiles.Man5]) + int(free.Reds[tiles.Pin5]) + int(free.Reds[tiles.Sou5])
	return total
}
