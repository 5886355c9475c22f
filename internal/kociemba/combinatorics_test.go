package kociemba

import (
	"reflect"
	"testing"
)

func TestPermIndexRoundTrip(t *testing.T) {
	n := 5
	for rank := 0; rank < factorial(n); rank++ {
		perm := permUnrank(rank, n)
		if got := permIndex(perm); got != rank {
			t.Errorf("permIndex(permUnrank(%d)) = %d, want %d", rank, got, rank)
		}
	}
}

func TestPermUnrankProducesPermutation(t *testing.T) {
	n := 6
	perm := permUnrank(123, n)
	seen := make(map[int]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("permUnrank(123, %d) = %v is not a permutation of 0..%d", n, perm, n-1)
		}
		seen[v] = true
	}
}

func TestCombinationIndexRoundTrip(t *testing.T) {
	n, k := 12, 4
	total := binomial(n, k)
	for rank := 0; rank < total; rank++ {
		present := combinationUnrank(rank, n, k)
		count := 0
		for _, p := range present {
			if p {
				count++
			}
		}
		if count != k {
			t.Fatalf("combinationUnrank(%d, %d, %d) set %d positions, want %d", rank, n, k, count, k)
		}
		if got := combinationIndex(present); got != rank {
			t.Errorf("combinationIndex(combinationUnrank(%d)) = %d, want %d", rank, got, rank)
		}
	}
}

func TestCombinationIndexDistinctForDistinctInputs(t *testing.T) {
	a := []bool{true, true, false, false}
	b := []bool{false, false, true, true}
	if combinationIndex(a) == combinationIndex(b) {
		t.Errorf("distinct combinations ranked the same")
	}
}

func TestPermUnrankIdentity(t *testing.T) {
	n := 4
	want := []int{0, 1, 2, 3}
	if got := permUnrank(0, n); !reflect.DeepEqual(got, want) {
		t.Errorf("permUnrank(0, %d) = %v, want %v", n, got, want)
	}
}
