// Package montecarlo implements the draws-to-tenpai simulator (C8): given a
// 1-shanten hand and everything already visible to the player, it samples
// random draws from the remaining live pool and reports how quickly tenpai
// is reached and how wide the resulting wait is.
//
// Grounded on run_basic_analysis from the original Rust prototype: the
// per-trial loop, the precomputed discard-choice table, and the
// live-pool-without-replacement sampling all mirror that reference
// directly, adapted to this engine's Shanten/Ukiere primitives.
package montecarlo

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"mahjong/internal/errs"
	"mahjong/internal/meld"
	"mahjong/internal/shanten"
	"mahjong/internal/tiles"
)

// Request is one simulation run's parameters.
type Request struct {
	StartingHand tiles.CountArray // 13 tiles, must be exactly 1-shanten
	Declared     []meld.Meld
	Visible      tiles.CountArray // discards + dora indicators + opponents' calls; excludes StartingHand
	Trials       int
	MaxDraws     int
}

// Result is the aggregate outcome across every trial.
type Result struct {
	Trials                int
	Successes             int
	MeanDrawsToTenpai      float64
	VarianceDrawsToTenpai  float64
	MeanUkiereAtTenpai     float64
	DrawHistogram          []int // count of successes landing on draw i+1
}

// discardChoice is one discard that leaves the hand tenpai after drawing a
// starting-ukiere tile, paired with the tile ids that are ukiere after
// making that discard. Computed once against the caller's visible tiles
// (ids with no live copy are left out) and reused across every trial.
type discardChoice struct {
	discard tiles.ID
	ukiere  []tiles.ID
}

// Run executes Request.Trials independent trials and returns the aggregate
// statistics described in §4.8. Panics if a trial runs out of live tiles to
// draw before MaxDraws is reached: that is a caller configuration error
// (visible plus hand accounts for more of the wall than physically exists),
// not a recoverable condition.
func Run(req Request) (Result, error) {
	startShanten, err := shanten.Shanten(req.StartingHand, req.Declared)
	if err != nil {
		return Result{}, err
	}
	if startShanten != 1 {
		return Result{}, errs.Wrapf(errs.ErrInvalidHand, "montecarlo: starting hand is at shanten %d, not 1", startShanten)
	}

	startingUkiere, err := shanten.Ukiere(req.StartingHand, req.Declared, req.Visible)
	if err != nil {
		return Result{}, err
	}
	startingUkiereSet := map[tiles.ID]bool{}
	for _, u := range startingUkiere {
		startingUkiereSet[u.ID] = true
	}

	choicesByDraw := make(map[tiles.ID][]discardChoice, len(startingUkiere))
	for _, u := range startingUkiere {
		afterDraw := req.StartingHand.Clone()
		if err := afterDraw.Add(u.ID, false); err != nil {
			return Result{}, err
		}
		options, err := shanten.PostDiscardUkiere(afterDraw, req.Declared, req.Visible)
		if err != nil {
			return Result{}, err
		}
		choices := make([]discardChoice, 0, len(options))
		for _, opt := range options {
			afterDiscard := afterDraw.Clone()
			if err := afterDiscard.Remove(opt.Discard); err != nil {
				return Result{}, err
			}
			s, err := shanten.Shanten(afterDiscard, req.Declared)
			if err != nil {
				return Result{}, err
			}
			if s != 0 {
				continue
			}
			ids := make([]tiles.ID, 0, len(opt.Ukiere))
			for _, uk := range opt.Ukiere {
				ids = append(ids, uk.ID)
			}
			choices = append(choices, discardChoice{discard: opt.Discard, ukiere: ids})
		}
		choicesByDraw[u.ID] = choices
	}

	seen := req.Visible.Merge(req.StartingHand)

	drawsToTenpai := make([]float64, 0, req.Trials)
	histogram := make([]int, req.MaxDraws)
	successes := 0
	var ukiereSum float64

	for trial := 0; trial < req.Trials; trial++ {
		pool := buildPool(seen)
		totalVisible := seen.Clone()

		for draw := 1; draw <= req.MaxDraws; draw++ {
			if len(pool) == 0 {
				panic("montecarlo: no tiles left to draw")
			}
			idx := rand.IntN(len(pool))
			drawn := pool[idx]
			pool[idx] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]
			_ = totalVisible.Add(drawn, false)

			if !startingUkiereSet[drawn] {
				continue
			}

			best := 0
			for _, choice := range choicesByDraw[drawn] {
				live := 0
				for _, id := range choice.ukiere {
					if remaining := 4 - int(totalVisible.Count(id)); remaining > 0 {
						live += remaining
					}
				}
				if live > best {
					best = live
				}
			}

			successes++
			drawsToTenpai = append(drawsToTenpai, float64(draw))
			histogram[draw-1]++
			ukiereSum += float64(best)
			break
		}
	}

	result := Result{Trials: req.Trials, Successes: successes, DrawHistogram: histogram}
	if successes > 0 {
		result.MeanDrawsToTenpai, result.VarianceDrawsToTenpai = stat.MeanVariance(drawsToTenpai, nil)
		result.MeanUkiereAtTenpai = ukiereSum / float64(successes)
	}
	return result, nil
}

// buildPool expands a 34-wide count array into a flat slice of one entry
// per remaining physical copy, for uniform weighted-by-count sampling.
func buildPool(seen tiles.CountArray) []tiles.ID {
	var pool []tiles.ID
	for id := tiles.ID(0); id < tiles.NumIDs; id++ {
		remaining := 4 - int(seen.Count(id))
		for i := 0; i < remaining; i++ {
			pool = append(pool, id)
		}
	}
	return pool
}
