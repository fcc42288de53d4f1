package krojanty

import "sync"

// zobristSeed is fixed so that keys are identical across runs and processes.
const zobristSeed = uint64(0xC0FFEE) ^ uint64(0x123456789)

var (
	zobristOnce sync.Once

	// indexed by Piece code; row 0 (Empty) stays unused
	zobristPieces [5][Size][Size]uint64
	zobristSide   uint64
)

// InitZobrist fills the key tables. Safe to call any number of times.
func InitZobrist() {
	zobristOnce.Do(func() {
		seed := zobristSeed
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for p := 0; p < len(zobristPieces); p++ {
			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					zobristPieces[p][r][c] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(p Piece, r, c int) uint64 {
	if p <= Empty || p > BlueKing {
		return 0
	}
	return zobristPieces[p][r][c]
}

// Hash computes the Zobrist key of b with side to move. The side key is
// mixed in when blue is to move.
func Hash(b *Board, side Side) uint64 {
	InitZobrist()

	var h uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if pc := b.Squares[r][c]; pc != Empty {
				h ^= pieceHashKey(pc, r, c)
			}
		}
	}
	if side == Blue {
		h ^= zobristSide
	}
	return h
}

// CalculateHash recomputes the key of the position from scratch.
func (p *Position) CalculateHash() uint64 {
	return Hash(&p.Board, p.SideToMove)
}

// EnsureHash fills Position.Hash if it has not been computed yet.
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
