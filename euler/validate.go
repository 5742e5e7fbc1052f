package euler

import "fmt"

// Validate checks that circuit is a closed walk from start that uses every
// edge of adj exactly once: the multiset of consecutive circuit pairs must
// equal the multiset of undirected edges in adj. adj is only read.
// Complexity: O(V+E).
func Validate(adj [][]int, circuit []int, start int) error {
	if len(circuit) == 0 {
		return fmt.Errorf("%w: empty walk", ErrInvalidCircuit)
	}
	if circuit[0] != start || circuit[len(circuit)-1] != start {
		return fmt.Errorf("%w: walk %d…%d does not start and end at %d",
			ErrInvalidCircuit, circuit[0], circuit[len(circuit)-1], start)
	}

	want := make(map[[2]int]int)
	for u, nbrs := range adj {
		for _, v := range nbrs {
			if u < v {
				want[[2]int{u, v}]++
			}
		}
	}
	for i := 0; i+1 < len(circuit); i++ {
		key := edgeKey(circuit[i], circuit[i+1])
		if want[key] == 0 {
			return fmt.Errorf("%w: step %d uses %d–%d more often than available",
				ErrInvalidCircuit, i, circuit[i], circuit[i+1])
		}
		want[key]--
	}
	for key, left := range want {
		if left > 0 {
			return fmt.Errorf("%w: edge %d–%d unused %d time(s)", ErrInvalidCircuit, key[0], key[1], left)
		}
	}

	return nil
}

// edgeKey orders an undirected edge's endpoints.
func edgeKey(u, v int) [2]int {
	if u > v {
		return [2]int{v, u}
	}

	return [2]int{u, v}
}
