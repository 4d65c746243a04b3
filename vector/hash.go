package vector

import (
	"encoding/binary"
	"hash/crc32"
)

// castagnoli is pre-computed once; crc32 uses hardware instructions for it
// where available.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Hash returns a CRC32-C digest of v's length and the canonical keys of its
// elements. Equal vectors hash equal. The hash of a nil vector is 0.
func (v *Vector[T]) Hash() uint32 {
	if v == nil {
		return 0
	}

	buf := binary.AppendUvarint(make([]byte, 0, 64), uint64(len(v.data)))
	crc := crc32.Update(0, castagnoli, buf)

	for _, x := range v.data {
		key := v.ring.AppendKey(buf[:0], x)
		// Length-prefix each key so variable-width keys cannot run together.
		var prefix [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(prefix[:], uint64(len(key)))
		crc = crc32.Update(crc, castagnoli, prefix[:n])
		crc = crc32.Update(crc, castagnoli, key)
		buf = key[:0]
	}

	return crc
}
