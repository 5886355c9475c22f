package kociemba

// Small combinatorial number system helpers used to pack and unpack the
// coordinates in coords.go: factorial-base ranks for permutations and
// binomial-base ranks for combinations. None of this depends on cube
// semantics, so it lives separately from cubies.go and coords.go.

var factorialTable = [13]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600}

func factorial(n int) int {
	return factorialTable[n]
}

var binomialTable [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		binomialTable[n][0] = 1
		for k := 1; k <= n; k++ {
			binomialTable[n][k] = binomialTable[n-1][k-1]
			if k <= n-1 {
				binomialTable[n][k] += binomialTable[n-1][k]
			}
		}
	}
}

func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	return binomialTable[n][k]
}

// permIndex ranks a permutation of n distinct small integers (0..n-1) into
// 0..n!-1, lexicographically over the order the values appear in perm.
func permIndex(perm []int) int {
	n := len(perm)
	idx := 0
	for i := 0; i < n; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		idx += smaller * factorial(n-1-i)
	}
	return idx
}

// permUnrank is the inverse of permIndex: given a rank and n, reconstructs
// the permutation of 0..n-1 it encodes.
func permUnrank(rank, n int) []int {
	available := make([]int, n)
	for i := range available {
		available[i] = i
	}
	perm := make([]int, n)
	r := rank
	for i := 0; i < n; i++ {
		f := factorial(n - 1 - i)
		pick := r / f
		r %= f
		perm[i] = available[pick]
		available = append(available[:pick], available[pick+1:]...)
	}
	return perm
}

// combinationIndex ranks which positions of present are set (exactly k of
// them, for some k implied by the caller) into a binomial number in
// 0..C(len(present),k)-1. Used for the UDSlice coordinate, where k=4.
func combinationIndex(present []bool) int {
	n := len(present)
	a, x := 0, 0
	for j := n - 1; j >= 0; j-- {
		if present[j] {
			x += binomial(n-1-j, a+1)
			a++
		}
	}
	return x
}

// combinationUnrank is the inverse of combinationIndex for n positions and
// k of them set.
func combinationUnrank(rank, n, k int) []bool {
	present := make([]bool, n)
	a := k
	x := rank
	for j := 0; j < n; j++ {
		if a == 0 {
			break
		}
		c := binomial(n-1-j, a)
		if x >= c {
			present[j] = true
			x -= c
			a--
		}
	}
	return present
}
