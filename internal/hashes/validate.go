package hashes

import (
	"fmt"
	"regexp"
	"strings"
)

var reHex = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// Validate reports whether target looks like a digest produced by algo.
// The second return value explains a rejection.
func Validate(algo, target string) (bool, string) {
	t := strings.TrimSpace(target)
	h, err := Get(algo)
	if err != nil {
		return false, err.Error()
	}
	want := h.Size() * 2
	if len(t) == want && reHex.MatchString(t) {
		return true, ""
	}
	return false, fmt.Sprintf("%s must be %d hex chars", strings.ToUpper(h.Name()), want)
}
