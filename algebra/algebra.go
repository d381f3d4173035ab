// Package algebra provides small number-theory helpers used alongside the
// data structures of lvlalgo: greatest common divisor, least common multiple,
// a least-prime-divisor sieve, Euler's totient and exponentiation by squaring.
//
// All functions are generic over golang.org/x/exp/constraints.Integer.
// Overflow is the caller's concern, as with the built-in operators.
package algebra

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for modular arithmetic.
var (
	// ErrNonPositiveModulus indicates mod <= 0.
	ErrNonPositiveModulus = errors.New("algebra: modulus must be positive")

	// ErrNegativeExponent indicates an exponent below zero.
	ErrNegativeExponent = errors.New("algebra: exponent must be non-negative")

	// ErrNotInvertible indicates n has no inverse modulo mod.
	ErrNotInvertible = errors.New("algebra: value is not invertible")
)

// GCD returns the greatest common divisor of a and b by Euclid's algorithm.
// GCD(0, 0) == 0. For signed inputs the result carries the sign produced by
// Go's remainder; use non-negative arguments for the conventional answer.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b, dividing before
// multiplying to delay overflow. LCM(0, x) == 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return (a / GCD(a, b)) * b
}

// Sieve returns a table of length n where table[i] is the least prime
// divisor of i for composite i and 0 for primes, 0 and 1.
//
// Complexity: Time O(n log log n), Space O(n).
func Sieve[T constraints.Integer](n int) []T {
	if n < 0 {
		n = 0
	}
	table := make([]T, n)
	for i := 2; i*i < n; i++ {
		if table[i] != 0 {
			continue
		}
		for j := i * i; j < n; j += i {
			if table[j] == 0 {
				table[j] = T(i)
			}
		}
	}

	return table
}

// PhiSieve computes Euler's totient of n using a table produced by Sieve.
// n must be below len(table).
//
// Complexity: O(number of prime factors of n).
func PhiSieve[T constraints.Integer](n T, table []T) (T, error) {
	if n < 0 || int(n) >= len(table) {
		return 0, fmt.Errorf("algebra: %d outside sieve of size %d", n, len(table))
	}
	result := n
	for n > 1 {
		p := table[n]
		if p == 0 {
			p = n // prime
		}
		result = result / p * (p - 1)
		for n%p == 0 {
			n /= p
		}
	}

	return result, nil
}

// Phi computes Euler's totient of n by trial division.
// Phi(n) for n <= 0 is 0.
//
// Complexity: O(sqrt n).
func Phi[T constraints.Integer](n T) T {
	if n <= 0 {
		return 0
	}
	result := n
	for i := T(2); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		result = result / i * (i - 1)
		for n%i == 0 {
			n /= i
		}
	}
	if n > 1 {
		result = result / n * (n - 1)
	}

	return result
}

// Pow returns a**n by squaring. Negative n is treated as 0.
func Pow[T constraints.Integer](a, n T) T {
	result := T(1)
	for n > 0 {
		if n&1 == 1 {
			result *= a
		}
		a *= a
		n >>= 1
	}

	return result
}

// PowMod returns a**n mod mod, normalized into [0, mod).
//
// Errors:
//   - ErrNonPositiveModulus if mod <= 0.
//   - ErrNegativeExponent if n < 0.
func PowMod[T constraints.Integer](a, n, mod T) (T, error) {
	if mod <= 0 {
		return 0, ErrNonPositiveModulus
	}
	if n < 0 {
		return 0, ErrNegativeExponent
	}
	a %= mod
	if a < 0 {
		a += mod
	}
	result := T(1) % mod
	for n > 0 {
		if n&1 == 1 {
			result = result * a % mod
		}
		a = a * a % mod
		n >>= 1
	}

	return result, nil
}

// ModularInverse returns m with n*m ≡ 1 (mod mod) via Fermat's little
// theorem. mod must be prime.
//
// Errors:
//   - ErrNonPositiveModulus if mod <= 0.
//   - ErrNotInvertible if n ≡ 0 (mod mod).
func ModularInverse[T constraints.Integer](n, mod T) (T, error) {
	if mod <= 0 {
		return 0, ErrNonPositiveModulus
	}
	if n%mod == 0 {
		return 0, fmt.Errorf("%w: %d mod %d", ErrNotInvertible, n, mod)
	}

	return PowMod(n, mod-2, mod)
}
