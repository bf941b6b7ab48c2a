// Package hashing renders SHA3-512, Whirlpool and RIPEMD-160 digests of text
// as lowercase hex strings.
//
// None of the digest algorithms are implemented here; they come from
// golang.org/x/crypto and github.com/pedroalbanese/whirlpool. Every function
// is a one-shot, stateless wrapper and is safe for concurrent use.
package hashing

import (
	"encoding/hex"

	"github.com/pedroalbanese/whirlpool"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Digest sizes in bytes.
const (
	SHA3512Size   = 64
	WhirlpoolSize = 64
	RIPEMD160Size = ripemd160.Size
)

// HashSHA3512 hashes the bytes of text with SHA3-512.
//
//	HashSHA3512("12345abcde") // "4a223fa925a250ea...ad4aa4949"
func HashSHA3512(text string) string {
	return hex.EncodeToString(SumSHA3512([]byte(text)))
}

// HashWhirlpool hashes the bytes of text with Whirlpool.
func HashWhirlpool(text string) string {
	return hex.EncodeToString(SumWhirlpool([]byte(text)))
}

// HashRIPEMD160 hashes the bytes of text with RIPEMD-160.
func HashRIPEMD160(text string) string {
	return hex.EncodeToString(SumRIPEMD160([]byte(text)))
}

// SumSHA3512 returns the raw SHA3-512 digest of b.
func SumSHA3512(b []byte) []byte {
	v := sha3.Sum512(b)
	return v[:]
}

// SumWhirlpool returns the raw Whirlpool digest of b.
func SumWhirlpool(b []byte) []byte {
	h := whirlpool.New()
	// hash.Hash.Write never returns an error
	h.Write(b)
	return h.Sum(nil)
}

// SumRIPEMD160 returns the raw RIPEMD-160 digest of b.
func SumRIPEMD160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b)
	return h.Sum(nil)
}
