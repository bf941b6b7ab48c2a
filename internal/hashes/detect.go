package hashes

import (
	"sort"
	"strings"
)

// preferred order when several algorithms share a digest length
var rank = map[string]int{
	"sha3-512":  0,
	"whirlpool": 1,
	"ripemd160": 2,
}

// Detect returns the registered algorithms whose digest shape matches target,
// most likely first.
func Detect(target string) []string {
	t := strings.TrimSpace(target)
	if t == "" {
		return nil
	}

	var out []string
	for _, name := range List() {
		if ok, _ := Validate(name, t); ok {
			out = append(out, name)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i]]
		rj, jok := rank[out[j]]
		if iok && jok && ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}
