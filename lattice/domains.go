// SPDX-License-Identifier: MIT

package lattice

// Domains finds all clusters of equal-valued sites, where two sites belong
// to the same cluster if they are periodic nearest neighbours holding the
// same value. Every site belongs to exactly one domain.
//
// Returns the domains in order of their smallest site offset; each domain is
// a slice of row-major offsets in BFS order, starting from that smallest
// offset. To convert an offset back to (i,j), use Coordinate.
//
// A lattice with every site equal is a single domain; a checkerboard Ising
// configuration with even L has L² domains of size 1.
//
// Time:   O(L²·4).
// Memory: O(L²) for visited flags and output.
func Domains(L int, x []int32) ([][]int, error) {
	if err := Check(L, x); err != nil {
		return nil, err
	}
	seen := make([]bool, len(x))
	var domains [][]int

	for i0 := range x {
		if seen[i0] {
			continue
		}
		// BFS over equal-valued neighbours
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ui, uj := Coordinate(L, u)
			for _, v := range Neighbors(L, ui, uj) {
				if seen[v] || x[v] != x[u] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		domains = append(domains, queue)
	}
	return domains, nil
}

// Largest returns the size of the biggest domain, or 0 for no domains.
func Largest(domains [][]int) int {
	best := 0
	for _, d := range domains {
		if len(d) > best {
			best = len(d)
		}
	}
	return best
}
