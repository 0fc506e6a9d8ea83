package argon2

import "math/bits"

// The pair kernel works on whole 128-bit lanes of the 8x8 block matrix:
// two adjacent 64-bit words mixed in lockstep, which is the schedule a
// 128-bit vector unit executes. The diagonal step is expressed with lane
// cross swaps instead of index shuffling.

type pair struct {
	lo, hi uint64
}

func (v pair) xor(w pair) pair {
	return pair{v.lo ^ w.lo, v.hi ^ w.hi}
}

func (v pair) rotr(n int) pair {
	return pair{bits.RotateLeft64(v.lo, -n), bits.RotateLeft64(v.hi, -n)}
}

// madd is fBlaMka on both halves of a lane.
func madd(x, y pair) pair {
	return pair{
		x.lo + y.lo + 2*(x.lo&0xffffffff)*(y.lo&0xffffffff),
		x.hi + y.hi + 2*(x.hi&0xffffffff)*(y.hi&0xffffffff),
	}
}

func gPair(a, b, c, d pair) (pair, pair, pair, pair) {
	a = madd(a, b)
	d = d.xor(a).rotr(32)
	c = madd(c, d)
	b = b.xor(c).rotr(24)
	a = madd(a, b)
	d = d.xor(a).rotr(16)
	c = madd(c, d)
	b = b.xor(c).rotr(63)
	return a, b, c, d
}

// crossSwap recombines two lanes for the diagonal step:
// crossSwap((x0,x1), (x2,x3)) = ((x3,x0), (x1,x2)).
func crossSwap(v, w pair) (pair, pair) {
	return pair{w.hi, v.lo}, pair{v.hi, w.lo}
}

// roundPairs runs the P round on eight lanes holding the words v0..v15.
// The first quad mixes (v0,v4,v8,v12) in the low halves and (v1,v5,v9,v13)
// in the high halves, and so on; cross swaps realign the lanes for the
// diagonal quads and swap them back afterwards.
func roundPairs(v *[8]pair) {
	v[0], v[2], v[4], v[6] = gPair(v[0], v[2], v[4], v[6])
	v[1], v[3], v[5], v[7] = gPair(v[1], v[3], v[5], v[7])

	t74, t56 := crossSwap(v[2], v[3])
	tfc, tde := crossSwap(v[6], v[7])

	v[0], t56, v[5], tfc = gPair(v[0], t56, v[5], tfc)
	v[1], t74, v[4], tde = gPair(v[1], t74, v[4], tde)

	v[2], v[3] = crossSwap(t56, t74)
	v[6], v[7] = crossSwap(tde, tfc)
}

// permutePairs is the vector-shaped implementation of the P permutation.
// It is bit-identical to permuteGeneric.
func permutePairs(b *block) {
	var v [8]pair

	for i := 0; i < blockWords; i += 16 {
		for j := 0; j < 8; j++ {
			v[j] = pair{b[i+2*j], b[i+2*j+1]}
		}
		roundPairs(&v)
		for j := 0; j < 8; j++ {
			b[i+2*j], b[i+2*j+1] = v[j].lo, v[j].hi
		}
	}

	for c := 0; c < 16; c += 2 {
		for j := 0; j < 8; j++ {
			v[j] = pair{b[16*j+c], b[16*j+c+1]}
		}
		roundPairs(&v)
		for j := 0; j < 8; j++ {
			b[16*j+c], b[16*j+c+1] = v[j].lo, v[j].hi
		}
	}
}
