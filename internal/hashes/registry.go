package hashes

import (
	"fmt"
	"sort"
	"strings"
)

// Hasher is a named digest that renders its output as lowercase hex.
type Hasher interface {
	Name() string
	// Size is the digest length in bytes.
	Size() int
	Hash(plain string) string
	Compare(target string, plain string) bool
}

var registry = map[string]Hasher{}

func Register(h Hasher) { registry[h.Name()] = h }

func Get(name string) (Hasher, error) {
	if h, ok := registry[normalize(name)]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("unknown algorithm: %s", name)
}

func List() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }
