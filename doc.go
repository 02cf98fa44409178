// Package mazepath is a small toolkit for solving text mazes with classic
// uninformed and informed graph searches.
//
// 🚀 What is mazepath?
//
//	A pure-Go maze solver that brings together:
//		• Grid primitives: parse 'A'/'B' maze text, ordered neighbor queries
//		• Frontiers: Stack (DFS), Queue (BFS), Greedy (GBFS), A*
//		• One search loop shared by every strategy
//		• Connectivity checks: components, reachability, shortest distance
//		• A cobra CLI with YAML config, slog logging and Prometheus metrics
//
// Under the hood, everything is organized under these subpackages:
//
//	gridgraph/  - Coordinate, Action, Grid, Parse, Neighbors, components
//	frontier/   - node arena and the four frontier variants
//	search/     - Strategy selector, Solve loop, options, Result
//	metrics/    - Prometheus recorder plugged in as a search.Observer
//	config/     - YAML settings for the CLI
//	cmd/mazepath - command-line entry point
//
// Quick maze example:
//
//	A
//	# #
//	  B
//
// has exactly one route, right-down-down-right, through the gap in the
// middle wall. BFS finds it after 7 frontier removals.
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
