package engine

import "krojanty/internal/krojanty"

// DefaultTTSizePow gives 2^17 slots.
const DefaultTTSizePow = 17

// ttClamp bounds stored values so they fit an int16. Win scores are
// clamped too; they only need to keep their sign.
const ttClamp = 30000

type Bound uint8

const (
	BoundEmpty Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "exact"
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	default:
		return "empty"
	}
}

type Entry struct {
	Key   uint64
	Value int16
	Depth int8
	Bound Bound
	Best  krojanty.Move
}

// TT is a fixed-size, always-allocated table indexed by key & mask. Slots are
// shared by colliding keys; readers must compare Key.
type TT struct {
	entries []Entry
	mask    uint64
}

func NewTT(pow int) *TT {
	if pow <= 0 {
		pow = DefaultTTSizePow
	}
	size := 1 << pow
	return &TT{
		entries: make([]Entry, size),
		mask:    uint64(size - 1),
	}
}

// Probe returns the slot for key as is. Callers check Key == key and
// Bound != BoundEmpty before trusting it.
func (t *TT) Probe(key uint64) Entry {
	return t.entries[key&t.mask]
}

// Store writes the slot if it is empty or depth is at least the stored depth.
func (t *TT) Store(key uint64, depth, value int, bound Bound, best krojanty.Move) {
	e := &t.entries[key&t.mask]
	if e.Bound != BoundEmpty && depth < int(e.Depth) {
		return
	}
	e.Key = key
	e.Depth = int8(depth)
	e.Value = int16(clampEval(value))
	e.Bound = bound
	e.Best = best
}

func (t *TT) Clear() {
	clear(t.entries)
}

// Len counts occupied slots.
func (t *TT) Len() int {
	n := 0
	for i := range t.entries {
		if t.entries[i].Bound != BoundEmpty {
			n++
		}
	}
	return n
}

func (t *TT) Size() int { return len(t.entries) }

func clampEval(v int) int {
	if v > ttClamp {
		return ttClamp
	}
	if v < -ttClamp {
		return -ttClamp
	}
	return v
}
