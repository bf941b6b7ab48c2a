package hashes

import (
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"edu/lolihash/pkg/hashing"
)

type digestHasher struct {
	algo string
	size int
	sum  func([]byte) []byte
}

func (d digestHasher) Name() string { return d.algo }

func (d digestHasher) Size() int { return d.size }

func (d digestHasher) Hash(plain string) string {
	return hex.EncodeToString(d.sum([]byte(plain)))
}

// Compare decodes target once and checks the raw digest in constant time.
func (d digestHasher) Compare(target string, plain string) bool {
	th, ok := decodeTargetHex(target, d.size)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(d.sum([]byte(plain)), th) == 1
}

func decodeTargetHex(target string, want int) ([]byte, bool) {
	t := strings.TrimSpace(target)
	if len(t) != want*2 {
		return nil, false
	}
	out := make([]byte, want)
	if _, err := hex.Decode(out, []byte(strings.ToLower(t))); err != nil {
		return nil, false
	}
	return out, true
}

func init() {
	Register(digestHasher{"sha3-512", hashing.SHA3512Size, hashing.SumSHA3512})
	Register(digestHasher{"whirlpool", hashing.WhirlpoolSize, hashing.SumWhirlpool})
	Register(digestHasher{"ripemd160", hashing.RIPEMD160Size, hashing.SumRIPEMD160})
}
