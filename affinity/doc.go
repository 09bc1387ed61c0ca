// SPDX-License-Identifier: MIT

// Package affinity turns preference ballots into a symmetric affinity matrix.
//
// Every participant spreads a fixed budget of points (100 by default) over the
// classmates they would like to work with. Build renormalizes each ballot,
// records ballots whose total is off by more than the tolerance, and combines
// the directional matrix with its transpose so reciprocated preferences weigh
// more than one-sided ones.
package affinity
