// Package yaku implements the catalogue of named scoring patterns (C5):
// one predicate per yaku, each producing a han contribution given an
// interpretation and the surrounding hand/win context.
package yaku

import "mahjong/internal/tiles"

// RiichiState is the caller-supplied riichi declaration on the winning hand.
type RiichiState int

const (
	RiichiNone RiichiState = iota
	RiichiDeclared
	RiichiDouble
)

// HandInfo is the Context record of §3: everything about the hand that is
// not itself part of the tile shape.
type HandInfo struct {
	Closed      bool
	Riichi      RiichiState
	Ippatsu     bool
	RoundWind   tiles.Wind
	SeatWind    tiles.Wind
	RoundNumber int
	Honba       int
	RiichiSticks int
	Dora        []tiles.ID
}

// IsDealer reports whether the winner is the dealer for this hand, defined
// as sitting in the seat matching the current round wind.
func (h HandInfo) IsDealer() bool { return h.SeatWind == h.RoundWind }

// SourceKind is the provenance of the winning tile.
type SourceKind int

const (
	SourceDiscard SourceKind = iota
	SourceSelfDraw
	SourceAfterKan
	SourceRobbingKan
)

// WinInfo is the Winning-Tile Info record of §3.
type WinInfo struct {
	Source  SourceKind
	IsLast  bool // last tile of the live wall (SelfDraw) or last discard (Discard)
	IsFirst bool // first, uncalled self-draw; reserved for future yakuman extension
}

// IsClosedDraw reports whether the winning tile arrived without an opponent's
// discard: true for SelfDraw and AfterKan.
func (w WinInfo) IsClosedDraw() bool {
	return w.Source == SourceSelfDraw || w.Source == SourceAfterKan
}
