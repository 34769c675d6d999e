package types

import "fmt"

// QuantumNumbers is a validated hydrogenic (n, l, m) triple.
//
// Invariants: n >= 1, 0 <= l <= n-1, -l <= m <= l. Construct through
// ParseQuantumNumbers; the zero value is not a valid state.
type QuantumNumbers struct {
	N int
	L int
	M int
}

// String returns the conventional "n=.. l=.. m=.." form.
func (q QuantumNumbers) String() string {
	return fmt.Sprintf("n=%d l=%d m=%d", q.N, q.L, q.M)
}

// ParseQuantumNumbers validates one to three positional quantum numbers.
// Omitted trailing values default to zero.
func ParseQuantumNumbers(values []int) (QuantumNumbers, error) {
	if len(values) < 1 || len(values) > 3 {
		return QuantumNumbers{}, &InvalidQuantumNumberError{
			Reason: "provide 1 to 3 quantum numbers: n [l] [m]",
		}
	}
	padded := [3]int{}
	copy(padded[:], values)
	n, l, m := padded[0], padded[1], padded[2]

	if n < 1 {
		return QuantumNumbers{}, &InvalidQuantumNumberError{
			Reason: fmt.Sprintf("principal quantum number n must be >= 1, got %d", n),
		}
	}
	if l < 0 || l > n-1 {
		return QuantumNumbers{}, &InvalidQuantumNumberError{
			Reason: fmt.Sprintf("angular momentum l must satisfy 0 <= l <= n-1, got l=%d for n=%d", l, n),
		}
	}
	if m < -l || m > l {
		return QuantumNumbers{}, &InvalidQuantumNumberError{
			Reason: fmt.Sprintf("magnetic number m must satisfy -l <= m <= l, got m=%d for l=%d", m, l),
		}
	}
	return QuantumNumbers{N: n, L: l, M: m}, nil
}
