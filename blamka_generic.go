package argon2

import "math/bits"

// permuteGeneric applies the P permutation to the eight rows and then the
// eight columns of b. Each row is sixteen consecutive words; each column is
// the sixteen words of one 128-bit lane column of the 8x8 matrix.
func permuteGeneric(b *block) {
	for i := 0; i < blockWords; i += 16 {
		roundGeneric(
			&b[i], &b[i+1], &b[i+2], &b[i+3],
			&b[i+4], &b[i+5], &b[i+6], &b[i+7],
			&b[i+8], &b[i+9], &b[i+10], &b[i+11],
			&b[i+12], &b[i+13], &b[i+14], &b[i+15])
	}
	for i := 0; i < 16; i += 2 {
		roundGeneric(
			&b[i], &b[i+1], &b[i+16], &b[i+17],
			&b[i+32], &b[i+33], &b[i+48], &b[i+49],
			&b[i+64], &b[i+65], &b[i+80], &b[i+81],
			&b[i+96], &b[i+97], &b[i+112], &b[i+113])
	}
}

// roundGeneric is one BLAKE2b round over sixteen words, with the message
// schedule zeroed and the Argon2 multiply folded into each addition.
func roundGeneric(t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11, t12, t13, t14, t15 *uint64) {
	v0, v1, v2, v3 := *t0, *t1, *t2, *t3
	v4, v5, v6, v7 := *t4, *t5, *t6, *t7
	v8, v9, v10, v11 := *t8, *t9, *t10, *t11
	v12, v13, v14, v15 := *t12, *t13, *t14, *t15

	v0, v4, v8, v12 = mix(v0, v4, v8, v12)
	v1, v5, v9, v13 = mix(v1, v5, v9, v13)
	v2, v6, v10, v14 = mix(v2, v6, v10, v14)
	v3, v7, v11, v15 = mix(v3, v7, v11, v15)

	v0, v5, v10, v15 = mix(v0, v5, v10, v15)
	v1, v6, v11, v12 = mix(v1, v6, v11, v12)
	v2, v7, v8, v13 = mix(v2, v7, v8, v13)
	v3, v4, v9, v14 = mix(v3, v4, v9, v14)

	*t0, *t1, *t2, *t3 = v0, v1, v2, v3
	*t4, *t5, *t6, *t7 = v4, v5, v6, v7
	*t8, *t9, *t10, *t11 = v8, v9, v10, v11
	*t12, *t13, *t14, *t15 = v12, v13, v14, v15
}

func mix(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = bits.RotateLeft64(d^a, -32)
	c = fBlaMka(c, d)
	b = bits.RotateLeft64(b^c, -24)
	a = fBlaMka(a, b)
	d = bits.RotateLeft64(d^a, -16)
	c = fBlaMka(c, d)
	b = bits.RotateLeft64(b^c, -63)
	return a, b, c, d
}

// fBlaMka is the Argon2 variant of the BLAKE2b addition:
// a + b + 2 * lower32(a) * lower32(b).
func fBlaMka(x, y uint64) uint64 {
	return x + y + 2*(x&0xffffffff)*(y&0xffffffff)
}
