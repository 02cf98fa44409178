// Command mazepath solves text mazes with one of four search strategies.
//
// Usage:
//
//	mazepath solve maze.txt --algo 1
//	mazepath solve maze.txt --algo astar --explored --format json
//	mazepath inspect maze.txt
//
// Algorithm selectors: 0 (DFS), 1 (BFS), 2 (GBFS), 3 (A*). Unknown numbers
// run DFS.
package main

import (
	"os"
)

func main() {
	// cobra prints the error itself
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
