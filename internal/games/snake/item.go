package snake

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ItemKind selects what eating an item does.
type ItemKind int

const (
	ItemNormal      ItemKind = iota // +1 score, grows the snake
	ItemBonusLife                   // +1 life, capped at the maximum
	ItemPenaltyLife                 // -1 life
)

func (k ItemKind) String() string {
	switch k {
	case ItemNormal:
		return "normal"
	case ItemBonusLife:
		return "bonus_life"
	case ItemPenaltyLife:
		return "penalty_life"
	default:
		return "unknown"
	}
}

// Special reports whether the kind expires.
func (k ItemKind) Special() bool {
	return k == ItemBonusLife || k == ItemPenaltyLife
}

// Kind draw: rng.Intn(kindDrawRange), above penaltyAbove is a penalty, above
// bonusAbove a bonus, the rest normal (7/2/1 out of 10).
const (
	kindDrawRange = 10
	bonusAbove    = 6
	penaltyAbove  = 8
)

// maxPlacementAttempts bounds rejection sampling before the free-cell scan.
const maxPlacementAttempts = 4096

// ErrBoardFull is returned when no cell is left for an item.
var ErrBoardFull = errors.New("snake: no free cell for item")

func kindForDraw(n int) ItemKind {
	switch {
	case n > penaltyAbove:
		return ItemPenaltyLife
	case n > bonusAbove:
		return ItemBonusLife
	default:
		return ItemNormal
	}
}

// Item is the single collectible on the board.
type Item struct {
	Pos       core.Point
	Kind      ItemKind
	SpawnedAt int64 // microseconds, drives expiry of special kinds
}

// Regenerate moves the item to a random free cell with a freshly drawn kind.
// Candidates are drawn over the whole window and rejected when outside the
// playable region or when exclude reports them occupied. After
// maxPlacementAttempts rejections the free cells are scanned directly.
func (it *Item) Regenerate(rng core.RandomSource, b Board, exclude func(core.Point) bool, now int64) error {
	for i := 0; i < maxPlacementAttempts; i++ {
		p := core.Point{
			X: core.SnapToCell(b.Cell, rng.Intn(b.Width-b.Cell)),
			Y: core.SnapToCell(b.Cell, rng.Intn(b.Height-b.Cell)),
		}
		kind := kindForDraw(rng.Intn(kindDrawRange))
		if !b.Playable(p) || exclude(p) {
			continue
		}
		it.place(p, kind, now)
		return nil
	}

	free := b.freeCells(exclude)
	if len(free) == 0 {
		return ErrBoardFull
	}
	it.place(free[rng.Intn(len(free))], kindForDraw(rng.Intn(kindDrawRange)), now)
	return nil
}

func (it *Item) place(p core.Point, kind ItemKind, now int64) {
	it.Pos = p
	it.Kind = kind
	it.SpawnedAt = now
}

// Expired reports whether a special item has outlived ttl.
func (it *Item) Expired(now, ttl int64) bool {
	return it.Kind.Special() && now-it.SpawnedAt > ttl
}

// Remaining returns the lifetime left for a special item, 0 for normal ones.
func (it *Item) Remaining(now, ttl int64) int64 {
	if !it.Kind.Special() {
		return 0
	}
	return max(0, ttl-(now-it.SpawnedAt))
}
