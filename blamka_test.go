package argon2

import (
	"math/rand"
	"testing"
)

// The two P kernels must agree bit for bit; the scalar kernel is the
// oracle for the pair kernel.
func TestPermuteKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		var b block
		for j := range b {
			b[j] = rng.Uint64()
		}
		gen, prs := b, b
		permuteGeneric(&gen)
		permutePairs(&prs)
		if gen != prs {
			t.Fatalf("kernels diverge on block %d", i)
		}
	}
}

func TestPermuteChangesBlock(t *testing.T) {
	var b block
	b[0] = 1
	p := b
	permute(&p)
	if p == b {
		t.Fatal("permutation is the identity")
	}
}

func TestFillBlockXor(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var x, y, old block
	for i := range x {
		x[i] = rng.Uint64()
		y[i] = rng.Uint64()
		old[i] = rng.Uint64()
	}

	var fresh block
	fillBlock(&fresh, &x, &y, false)

	folded := old
	fillBlock(&folded, &x, &y, true)

	for i := range folded {
		if folded[i] != old[i]^fresh[i] {
			t.Fatalf("word %d: xor mode did not fold into the old block", i)
		}
	}
}

func TestGTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var y, zero block
	for i := range y {
		y[i] = rng.Uint64()
	}

	var got block
	gTwo(&got, &y)

	// G(0, G(0, y)) spelled out with fillBlock
	var inner, want block
	fillBlock(&inner, &zero, &y, false)
	fillBlock(&want, &zero, &inner, false)

	if got != want {
		t.Fatal("gTwo does not equal two zero-input compressions")
	}
}

func TestRefIndexBounds(t *testing.T) {
	const (
		p = 4
		q = 32
		g = q / syncPoints
	)
	rng := rand.New(rand.NewSource(4))

	for trial := 0; trial < 20000; trial++ {
		k := uint32(rng.Intn(3))
		slice := uint32(rng.Intn(syncPoints))
		lane := uint32(rng.Intn(p))
		i := uint32(rng.Intn(g))
		if k == 0 && slice == 0 && i < 2 {
			continue
		}
		rlane, ri := refIndex(rng.Uint64(), q, g, p, k, slice, lane, i)
		if rlane >= p {
			t.Fatalf("reference lane %d out of range", rlane)
		}
		if ri >= q {
			t.Fatalf("reference column %d out of range", ri)
		}
		if k == 0 && slice == 0 && rlane != lane {
			t.Fatalf("pass 0 slice 0 referenced lane %d from lane %d", rlane, lane)
		}
		// never the immediately previous block
		cur := slice*g + i
		prev := cur - 1
		if cur == 0 {
			prev = q - 1
		}
		if rlane == lane && ri == prev {
			t.Fatalf("pass %d slice %d index %d referenced its own predecessor", k, slice, i)
		}
		// within one pass, cross-lane references stay behind the
		// current slice
		if k == 0 && rlane != lane && ri >= slice*g {
			t.Fatalf("pass 0 cross-lane reference %d reaches into slice %d", ri, slice)
		}
	}
}
