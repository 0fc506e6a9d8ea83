//go:build !purego

package argon2

func permute(b *block) {
	permutePairs(b)
}
