// Package repton computes the state space and continuous-time Markov
// generator of the Rubinstein–Duke "repton" lattice model of polymer
// reptation.
//
// 🚀 What is repton?
//
//	A pure-Go library that, for a chain of N links on a 2D lattice:
//		• Models the chain as an immutable value over five link states
//		  (Up, Down, Left, Right, Slack)
//		• Derives every configuration reachable by one elementary move:
//		  reptation, hernia creation/annihilation/redirection, barrier
//		  crossing, end contraction/extension/wiggle
//		• Discovers all 5^N configurations by fixed-point closure
//		• Assembles the transition-rate matrix from a caller-supplied
//		  table of per-move rates
//		• Exports the matrix as a dense gonum matrix, grayscale PNG,
//		  spreadsheet, or CSV
//
// Everything is organized under four packages:
//
//	chain/      — links, move kinds, the Polymer value, move rules & rates
//	statespace/ — state-space closure and the generator Matrix
//	render/     — state ordering, dense/PNG/XLSX/CSV export, summaries
//	cmd/        — reptonstates and reptonmatrix command-line tools
//
// Quick example:
//
//	table := chain.RateTable[float64]{chain.Reptation: 1.0, chain.EndExtension: 1.0}
//	m, err := statespace.NewRateMatrix(4, table)
//	if err != nil {
//		// handle chain.ErrEmptyChain or statespace.ErrOptionViolation
//	}
//	fmt.Println(m.Size()) // 625
//
//	go get github.com/katalvlaran/repton
package repton
