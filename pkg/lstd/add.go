// Package lstd holds small generic helpers.
package lstd

import "golang.org/x/exp/constraints"

// Addable is satisfied by every type with a built-in + that yields the same type.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Add returns left + right with the overflow and precision rules of T.
func Add[T Addable](left, right T) T {
	return left + right
}
