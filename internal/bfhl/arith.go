package bfhl

import (
	"context"
	"math/big"
)

var bigOne = big.NewInt(1)

// Above this bound IsPrime switches from trial division to Baillie-PSW,
// which is exact for every int64.
const trialDivisionLimit = 1 << 53

// Fibonacci returns the first n terms of 0, 1, 1, 2, ...
func Fibonacci(n int) []*big.Int {
	if n <= 0 {
		return []*big.Int{}
	}
	out := make([]*big.Int, n)
	out[0] = big.NewInt(0)
	if n > 1 {
		out[1] = big.NewInt(1)
	}
	for i := 2; i < n; i++ {
		out[i] = new(big.Int).Add(out[i-1], out[i-2])
	}
	return out
}

// IsPrime uses 6k±1 trial division up to 2^53.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n > trialDivisionLimit {
		return big.NewInt(n).ProbablyPrime(0)
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// FilterPrimes keeps the primes of nums in their original order. It stops
// with ctx.Err() once ctx is done.
func FilterPrimes(ctx context.Context, nums []int64) ([]int64, error) {
	out := make([]int64, 0, len(nums))
	for _, n := range nums {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if IsPrime(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// GCD runs the Euclidean algorithm on |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Rem(x, y)
	}
	return x
}

// LCM returns |a*b| / gcd(a, b). Both arguments must be non-zero.
func LCM(a, b *big.Int) *big.Int {
	p := new(big.Int).Mul(a, b)
	p.Abs(p)
	return p.Quo(p, GCD(a, b))
}

// ArrayGCD folds GCD left to right and stops as soon as the prefix is 1.
func ArrayGCD(nums []int64) *big.Int {
	if len(nums) == 0 {
		return big.NewInt(0)
	}
	acc := big.NewInt(nums[0])
	for _, n := range nums[1:] {
		acc = GCD(acc, big.NewInt(n))
		if acc.Cmp(bigOne) == 0 {
			return acc
		}
	}
	return acc
}

// ArrayLCM folds LCM left to right.
func ArrayLCM(nums []int64) *big.Int {
	if len(nums) == 0 {
		return big.NewInt(0)
	}
	acc := big.NewInt(nums[0])
	for _, n := range nums[1:] {
		acc = LCM(acc, big.NewInt(n))
	}
	return acc
}
