// SPDX-License-Identifier: MIT

// Package grouping turns cluster labels into fixed-size groups and refines them.
//
// The pipeline for one candidate is:
//
//	PackAll    greedy packing of each cluster into groups of size m
//	Balance    fix the group count to ceil(n/m) and the size spread to ≤ 1
//	LocalSearch  first-improvement hill climbing over single moves and swaps
//	Evaluate   satisfaction ratio and the composite equity/satisfaction objective
//
// All functions are deterministic: scans go in ascending group then participant
// order and ties resolve to the lowest index. Inputs are never mutated.
package grouping
