package worker

// Subsets enumerates every size-k subset of the ascending, duplicate-free
// slice universe, in lexicographic order on ascending indices into
// universe (spec §4.4 step 3: "Enumerate subsets S ⊆ A with |S| = ℓ in a
// deterministic order (e.g., lexicographic on ascending indices)").
//
// Each yielded subset is a freshly allocated []int in ascending value order
// (not just ascending position), matching spec §3's "ordered sequence of
// distinct variable indices" for a conditioning set.
//
// Complexity: O(C(len(universe), k) * k) time, O(k) memory per subset
// (the caller is handed one subset at a time via the yield callback so the
// whole C(n,k) family is never materialized at once).
func Subsets(universe []int, k int, yield func(s []int) (stop bool)) {
	n := len(universe)
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		yield([]int{})
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subset := make([]int, k)
		for i, pos := range idx {
			subset[i] = universe[pos]
		}
		if yield(subset) {
			return
		}

		// Advance idx to the next combination, lexicographically.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
