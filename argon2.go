package argon2

import (
	"sync"
	"testing"

	"github.com/dchest/blake2b"
)

const syncPoints = 4

/*

inputs:

 P message
 S nonce
 K secret key (optional)
 X associated data (optional)

 p parallelism
 m memory size in KiB
 n iterations

*/

func argon2(output, P, S, K, X []byte, variant Variant, version, p, m, n uint32, sequential bool, t *testing.T) {
	if p == 0 || m < 8*p || n == 0 {
		panic("argon2: internal error: invalid params")
	}

	m0 := m
	// Round down to a multiple of 4 * p
	m = m / (4 * p) * (4 * p)

	// Argon2 operates over a matrix of 1024-byte blocks
	b := make([]block, m)
	q := m / p          // length of each lane
	g := q / syncPoints // length of each segment

	var scratch [72]byte
	var btmp [blockBytes]byte

	// Compute a hash of all the input parameters
	h := blake2b.New512()

	put32(scratch[0:], p)
	put32(scratch[4:], uint32(len(output)))
	put32(scratch[8:], m0)
	put32(scratch[12:], n)
	put32(scratch[16:], version)
	put32(scratch[20:], uint32(variant))
	h.Write(scratch[:24])

	put32(scratch[0:], uint32(len(P)))
	h.Write(scratch[0:4])
	h.Write(P)

	put32(scratch[0:], uint32(len(S)))
	h.Write(scratch[0:4])
	h.Write(S)

	put32(scratch[0:], uint32(len(K)))
	h.Write(scratch[0:4])
	h.Write(K)

	put32(scratch[0:], uint32(len(X)))
	h.Write(scratch[0:4])
	h.Write(X)

	h.Sum(scratch[:0])
	h.Reset()

	if t != nil {
		t.Logf("Iterations: %d, Memory: %d KiB, Parallelism: %d lanes, Tag length: %d bytes", n, m0, p, len(output))
		t.Logf("Password[%d]: % x", len(P), P)
		t.Logf("Salt[%d]: % x", len(S), S)
		t.Logf("Secret[%d]: % x", len(K), K)
		t.Logf("Associated data[%d]: % x", len(X), X)
		t.Logf("Pre-hashing digest: % x", scratch[:64])
	}

	// Use the hash to initialize the first two columns of the matrix
	for lane := uint32(0); lane < p; lane++ {
		// scratch[0:64] is the parameter hash
		put32(scratch[64:], 0)
		put32(scratch[68:], lane)
		hashLong(btmp[:], scratch[:72])
		b[lane*q+0].setBytes(btmp[:])

		scratch[64] = 1
		hashLong(btmp[:], scratch[:72])
		b[lane*q+1].setBytes(btmp[:])
	}

	wipeBytes(scratch[:])
	wipeBytes(btmp[:])

	// Get down to business
	for k := uint32(0); k < n; k++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			if sequential || p == 1 {
				for lane := uint32(0); lane < p; lane++ {
					fillSegment(b, variant, version, q, g, p, n, k, slice, lane)
				}
				continue
			}
			// Lanes within a slice are independent; the Wait is
			// the barrier that keeps references behind the
			// current slice.
			var wg sync.WaitGroup
			for lane := uint32(0); lane < p; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					fillSegment(b, variant, version, q, g, p, n, k, slice, lane)
				}(lane)
			}
			wg.Wait()
		}
		if t != nil {
			t.Log()
			t.Logf(" After pass %d:", k)
			for i := range b {
				t.Logf("  Block %.4d [0]: %x", i, b[i][0])
			}
		}
	}

	// XOR the blocks in the last column together
	for lane := uint32(0); lane < p-1; lane++ {
		for i, v := range b[lane*q+q-1] {
			b[m-1][i] ^= v
		}
	}

	// Output
	b[m-1].bytes(btmp[:])
	hashLong(output, btmp[:])
	if t != nil {
		t.Logf("Tag: % x", output)
	}

	wipeBytes(btmp[:])
	wipeBlocks(b)
}

// fillSegment fills one lane's share of a slice: columns slice*g through
// slice*g+g-1 of the lane. Each block is the compression of its
// predecessor with a reference block chosen by the variant's addressing
// scheme.
func fillSegment(b []block, variant Variant, version, q, g, p, n, k, slice, lane uint32) {
	var in, addrs block
	if variant == Argon2i {
		in[0] = uint64(k)
		in[1] = uint64(lane)
		in[2] = uint64(slice)
		in[3] = uint64(len(b))
		in[4] = uint64(n)
		in[5] = uint64(variant)
	}

	i := uint32(0)
	if k == 0 && slice == 0 {
		// the first two blocks of each lane come from H'
		i = 2
		if variant == Argon2i {
			in[6]++
			gTwo(&addrs, &in)
		}
	}

	j := lane*q + slice*g + i
	for ; i < g; i, j = i+1, j+1 {
		prev := j - 1
		if i == 0 && slice == 0 {
			prev = lane*q + q - 1
		}

		var rand uint64
		if variant == Argon2i {
			if i%blockWords == 0 {
				in[6]++
				gTwo(&addrs, &in)
			}
			rand = addrs[i%blockWords]
		} else {
			rand = b[prev][0]
		}

		rlane, ri := refIndex(rand, q, g, p, k, slice, lane, i)
		fillBlock(&b[j], &b[prev], &b[rlane*q+ri], version == Version13 && k > 0)
	}

	if variant == Argon2i {
		in.wipe()
		addrs.wipe()
	}
}

func put32(b []uint8, v uint32) {
	b[0] = uint8(v)
	b[1] = uint8(v >> 8)
	b[2] = uint8(v >> 16)
	b[3] = uint8(v >> 24)
}

func put64(b []uint8, v uint64) {
	b[0] = uint8(v)
	b[1] = uint8(v >> 8)
	b[2] = uint8(v >> 16)
	b[3] = uint8(v >> 24)
	b[4] = uint8(v >> 32)
	b[5] = uint8(v >> 40)
	b[6] = uint8(v >> 48)
	b[7] = uint8(v >> 56)
}

func read64(b []uint8) uint64 {
	return uint64(b[0]) |
		uint64(b[1])<<8 |
		uint64(b[2])<<16 |
		uint64(b[3])<<24 |
		uint64(b[4])<<32 |
		uint64(b[5])<<40 |
		uint64(b[6])<<48 |
		uint64(b[7])<<56
}
