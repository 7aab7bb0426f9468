// SPDX-License-Identifier: MIT

// Command lvrank computes exact and Monte Carlo PageRank over a directed
// edge list and reports the top-K error of the estimate.
//
//	lvrank generate --kind random --nodes 100 --p 0.05 --seed 1 > g.txt
//	lvrank run g.txt
//	lvrank rank g.txt --method montecarlo --walks 5 --top 10
package main

func main() {
	Execute()
}
