package shanten

import (
	"mahjong/internal/meld"
	"mahjong/internal/tiles"
)

// UkiereTile pairs a tile id that would reduce shanten with how many physical
// copies remain live (unseen by the caller).
type UkiereTile struct {
	ID        tiles.ID
	LiveCount uint16
}

// DiscardOption is one candidate discard and the ukiere it leaves behind.
type DiscardOption struct {
	Discard   tiles.ID
	Ukiere    []UkiereTile
	TotalLive uint16
}

func declaredTileCount(declared []meld.Meld, id tiles.ID) int {
	n := 0
	for _, m := range declared {
		for _, t := range m.Tiles {
			if t == id {
				n++
			}
		}
	}
	return n
}

// liveCount returns how many physical copies of id are still unseen,
// assuming visible does not double-count the caller's own free hand.
func liveCount(free tiles.CountArray, declared []meld.Meld, visible tiles.CountArray, id tiles.ID) int {
	remaining := 4 - int(free.Count(id)) - declaredTileCount(declared, id) - int(visible.Count(id))
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Ukiere computes the ukiere set of a 13-tile free multiset: every tile id
// whose addition would strictly lower standard/chiitoi/kokushi shanten,
// paired with its live (unseen) count. Ids with no live copy left are
// omitted.
func Ukiere(free tiles.CountArray, declared []meld.Meld, visible tiles.CountArray) ([]UkiereTile, error) {
	base, err := Shanten(free, declared)
	if err != nil {
		return nil, err
	}

	var out []UkiereTile
	for id := tiles.ID(0); id < tiles.NumIDs; id++ {
		if free.Count(id) >= 4 {
			continue
		}
		live := liveCount(free, declared, visible, id)
		if live <= 0 {
			continue
		}
		trial := free.Clone()
		if err := trial.Add(id, false); err != nil {
			continue
		}
		s, err := Shanten(trial, declared)
		if err != nil {
			continue
		}
		if s < base {
			out = append(out, UkiereTile{ID: id, LiveCount: uint16(live)})
		}
	}
	return out, nil
}

// PostDiscardUkiere computes, for a 14-tile multiset, the ukiere each
// candidate discard leaves behind.
func PostDiscardUkiere(freeWithDraw tiles.CountArray, declared []meld.Meld, visible tiles.CountArray) ([]DiscardOption, error) {
	var out []DiscardOption
	for _, id := range freeWithDraw.DistinctIDs() {
		trial := freeWithDraw.Clone()
		if err := trial.Remove(id); err != nil {
			return nil, err
		}
		uk, err := Ukiere(trial, declared, visible)
		if err != nil {
			return nil, err
		}
		var total uint16
		for _, u := range uk {
			total += u.LiveCount
		}
		out = append(out, DiscardOption{Discard: id, Ukiere: uk, TotalLive: total})
	}
	return out, nil
}
