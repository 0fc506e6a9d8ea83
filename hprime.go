package argon2

import (
	"hash"

	"github.com/dchest/blake2b"
)

// hashLong is the variable-length hash H'. Outputs of up to 64 bytes are a
// single BLAKE2b digest over the little-endian output length followed by
// the input. Longer outputs chain full digests, emitting the first half of
// each and finishing with one digest sized to the remainder.
func hashLong(out, in []byte) {
	var buf [blake2b.Size]byte

	var h hash.Hash
	if len(out) < blake2b.Size {
		h = newDigest(len(out))
	} else {
		h = blake2b.New512()
	}
	put32(buf[:4], uint32(len(out)))
	h.Write(buf[:4])
	h.Write(in)

	if len(out) <= blake2b.Size {
		h.Sum(out[:0])
		return
	}

	h.Sum(buf[:0])
	copy(out, buf[:32])
	rest := out[32:]
	for len(rest) > blake2b.Size {
		h.Reset()
		h.Write(buf[:])
		h.Sum(buf[:0])
		copy(rest, buf[:32])
		rest = rest[32:]
	}

	// 33 to 64 bytes remain
	if len(rest) < blake2b.Size {
		h = newDigest(len(rest))
	} else {
		h.Reset()
	}
	h.Write(buf[:])
	h.Sum(rest[:0])

	wipeBytes(buf[:])
}

func newDigest(n int) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: uint8(n)})
	if err != nil {
		panic("argon2: internal error: " + err.Error())
	}
	return h
}
