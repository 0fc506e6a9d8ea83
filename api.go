package argon2

import (
	"crypto/subtle"
	"strconv"
)

// A Variant selects the addressing scheme used to pick reference blocks.
type Variant int

const (
	// Argon2d uses data-dependent addressing.
	Argon2d Variant = 0
	// Argon2i uses data-independent addressing.
	Argon2i Variant = 1
)

// Versions of the Argon2 function supported by this package. Version13
// folds recomputed blocks into their previous contents on the second and
// later passes; Version10 overwrites them.
const (
	Version10 uint32 = 0x10
	Version13 uint32 = 0x13
)

const (
	minPasses = 1

	minLanes = 1
	maxLanes = 1<<24 - 1

	minMemory = 8 // per lane

	minTag = 4

	maxLength = 1<<32 - 1 // password, salt, secret and associated data
)

// Defaults used by Simple2i and Simple2d.
const (
	defaultPasses = 3
	defaultLanes  = 1
	defaultMemory = 4096
	defaultTag    = 32
)

// An InvalidParamError reports a parameter outside the range Argon2
// accepts. Field names the offending parameter.
type InvalidParamError struct {
	Field string
	Value uint64
}

func (e *InvalidParamError) Error() string {
	return "argon2: invalid " + e.Field + ": " + strconv.FormatUint(e.Value, 10)
}

func check(variant Variant, version uint32, password, salt, secret, data []byte, passes, lanes, memory, tagLen uint32) error {
	if variant != Argon2d && variant != Argon2i {
		return &InvalidParamError{"variant", uint64(variant)}
	}
	if version != Version10 && version != Version13 {
		return &InvalidParamError{"version", uint64(version)}
	}
	if passes < minPasses {
		return &InvalidParamError{"passes", uint64(passes)}
	}
	if lanes < minLanes || lanes > maxLanes {
		return &InvalidParamError{"lanes", uint64(lanes)}
	}
	if uint64(memory) < minMemory*uint64(lanes) {
		return &InvalidParamError{"memory_kib", uint64(memory)}
	}
	if tagLen < minTag {
		return &InvalidParamError{"tag_length", uint64(tagLen)}
	}
	if uint64(len(password)) > maxLength {
		return &InvalidParamError{"password", uint64(len(password))}
	}
	if uint64(len(salt)) > maxLength {
		return &InvalidParamError{"salt", uint64(len(salt))}
	}
	if uint64(len(secret)) > maxLength {
		return &InvalidParamError{"secret", uint64(len(secret))}
	}
	if uint64(len(data)) > maxLength {
		return &InvalidParamError{"ad", uint64(len(data))}
	}
	return nil
}

// Hash derives a tag of tagLen bytes from the password and salt using the
// given variant, version and cost parameters. Secret and data are the
// optional key and associated data; either may be nil.
//
// Passes is the number of iterations over the memory. Memory is in
// kibibytes; it must be at least 8*lanes and is rounded down to a multiple
// of 4*lanes. Lanes may be filled in parallel.
func Hash(variant Variant, version uint32, password, salt, secret, data []byte, passes, lanes, memory, tagLen uint32) ([]byte, error) {
	if err := check(variant, version, password, salt, secret, data, passes, lanes, memory, tagLen); err != nil {
		return nil, err
	}
	output := make([]byte, tagLen)
	argon2(output, password, salt, secret, data, variant, version, lanes, memory, passes, lanes == 1, nil)
	return output, nil
}

// Verify recomputes the tag for the given inputs and parameters and
// compares it against tag in constant time. The comparison never
// short-circuits on a mismatched byte. Verify reports false, never an
// error: a tag of the wrong length or out-of-range parameters cannot match
// any hash.
func Verify(tag []byte, variant Variant, version uint32, password, salt, secret, data []byte, passes, lanes, memory uint32) bool {
	if len(tag) < minTag || uint64(len(tag)) > maxLength {
		return false
	}
	want, err := Hash(variant, version, password, salt, secret, data, passes, lanes, memory, uint32(len(tag)))
	if err != nil {
		return false
	}
	ok := subtle.ConstantTimeCompare(tag, want) == 1
	wipeBytes(want)
	return ok
}

// Simple2i hashes the password and salt with Argon2i version 0x13 and the
// default cost parameters, returning a 32-byte tag.
func Simple2i(password, salt []byte) []byte {
	output := make([]byte, defaultTag)
	argon2(output, password, salt, nil, nil, Argon2i, Version13, defaultLanes, defaultMemory, defaultPasses, true, nil)
	return output
}

// Simple2d hashes the password and salt with Argon2d version 0x13 and the
// default cost parameters, returning a 32-byte tag.
func Simple2d(password, salt []byte) []byte {
	output := make([]byte, defaultTag)
	argon2(output, password, salt, nil, nil, Argon2d, Version13, defaultLanes, defaultMemory, defaultPasses, true, nil)
	return output
}
