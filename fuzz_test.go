package argon2

import (
	"bytes"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzHash drives the whole pipeline with fuzzer-chosen inputs and
// parameters, checking determinism, sequential/parallel agreement, and the
// verify round trip.
func FuzzHash(f *testing.F) {
	f.Add([]byte("some seed material for the provider to chew through, long enough to matter"))
	f.Add(bytes.Repeat([]byte{0x5a}, 128))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip()
		}
		password, err := tp.GetBytes()
		if err != nil {
			t.Skip()
		}
		salt, err := tp.GetBytes()
		if err != nil {
			t.Skip()
		}
		pb, err := tp.GetByte()
		if err != nil {
			t.Skip()
		}
		mb, err := tp.GetUint16()
		if err != nil {
			t.Skip()
		}
		vb, err := tp.GetByte()
		if err != nil {
			t.Skip()
		}

		lanes := uint32(pb%4) + 1
		memory := uint32(mb%64) + 8*lanes
		passes := uint32(pb%3) + 1
		variant := Argon2d
		if vb&1 != 0 {
			variant = Argon2i
		}
		version := Version13
		if vb&2 != 0 {
			version = Version10
		}

		tag, err := Hash(variant, version, password, salt, nil, nil, passes, lanes, memory, 32)
		if err != nil {
			t.Fatalf("valid params rejected: %v", err)
		}

		again, err := Hash(variant, version, password, salt, nil, nil, passes, lanes, memory, 32)
		if err != nil || !bytes.Equal(tag, again) {
			t.Fatalf("hash is not deterministic")
		}

		var seq [32]byte
		argon2(seq[:], password, salt, nil, nil, variant, version, lanes, memory, passes, true, nil)
		if !bytes.Equal(tag, seq[:]) {
			t.Fatalf("sequential fill diverges from parallel fill")
		}

		if !Verify(tag, variant, version, password, salt, nil, nil, passes, lanes, memory) {
			t.Fatalf("freshly computed tag does not verify")
		}
		tag[7] ^= 1
		if Verify(tag, variant, version, password, salt, nil, nil, passes, lanes, memory) {
			t.Fatalf("corrupted tag verifies")
		}
	})
}
