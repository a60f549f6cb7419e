// Package errs defines the sentinel error kinds shared by every public
// entry point in the engine. Callers compare with errors.Is; nothing here
// carries hidden control flow.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks malformed tile or multiset text.
	ErrParse = errors.New("mahjong: parse error")
	// ErrInvalidTile marks a tile id out of range or a red flag on a non-five.
	ErrInvalidTile = errors.New("mahjong: invalid tile")
	// ErrInvalidMeld marks a tile list that matches no meld variant.
	ErrInvalidMeld = errors.New("mahjong: invalid meld")
	// ErrInvalidHand marks a count vector with an out-of-range entry or total.
	ErrInvalidHand = errors.New("mahjong: invalid hand")
	// ErrUnderflow marks removal of a tile from a zero-count slot.
	ErrUnderflow = errors.New("mahjong: count underflow")
	// ErrNoProgress marks a Monte-Carlo draw with no tiles left in the pool.
	ErrNoProgress = errors.New("mahjong: no tiles left to draw")
	// ErrNoYaku marks a structurally complete hand with no admissible
	// interpretation carrying at least one han: it cannot legally win.
	ErrNoYaku = errors.New("mahjong: no yaku")
)

// Wrapf wraps one of the sentinels above with a formatted detail message
// while staying errors.Is-compatible with the sentinel.
func Wrapf(sentinel error, format string, args ...any) error {
	return &detailed{sentinel: sentinel, msg: fmt.Sprintf(format, args...)}
}

type detailed struct {
	sentinel error
	msg      string
}

func (d *detailed) Error() string { return d.msg }
func (d *detailed) Unwrap() error { return d.sentinel }
