// Command paths samples Ising and Potts lattices, evaluates RBM energies and
// runs annealing paths with free-energy estimates.
//
//	paths ising  --l 32 --beta 0.44 --sweeps 200
//	paths potts  --l 32 --q 3 --beta 1.0
//	paths rbm    --visible 16 --hidden 8
//	paths anneal --model ising --l 16 --paths 200 --reverse
//	paths config paths.json
//
// Every subcommand reads defaults from --config and lets flags override
// individual values.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
