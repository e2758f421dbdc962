package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Equal reports whether b and other have the same size and identical squares.
// Undo history and listeners are not compared.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, sq := range b.squares {
		if other.squares[i] != sq {
			return false
		}
	}
	return true
}

// Hash is consistent with Equal: equal boards have equal hashes.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	for _, sq := range b.squares {
		binary.Write(hasher, binary.LittleEndian, int64(sq.Side))
		binary.Write(hasher, binary.LittleEndian, int64(sq.Spots))
	}

	return StateHash(hasher.Sum64())
}
