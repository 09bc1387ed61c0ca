// SPDX-License-Identifier: MIT

// Package camarades forms fixed-size groups of participants from
// preference ballots, maximizing mutual satisfaction.
//
// Every participant distributes a budget of points among peers. The
// ballots become a directional affinity matrix, which is symmetrized with a
// bonus for reciprocated choices. Candidate groupings come from several
// clustering strategies (k-means on per-participant features, spectral
// clustering of the affinity graph, random baselines); each candidate is
// packed into groups, size-balanced and refined by local search, and the
// best one under a combined equity and satisfaction objective wins.
//
// Packages, leaves first:
//
//	matrix         dense row-major matrix, validators, Jacobi eigensolver, column statistics
//	affinity       roster, ballot normalization, symmetrized affinity
//	features       per-participant feature vectors and standardization
//	cluster        Strategy interface (KMeans, Spectral, Random), seed streams
//	grouping       Partition, Pack, Balance, LocalSearch, Evaluate
//	hybrid         multi-attempt optimizer with fallback and best-of selection
//	ingest         CSV and YAML/JSON ballot loaders
//	report         per-group analysis and text/YAML/JSON rendering
//	config         run configuration (viper, pflag)
//	logging        logr over zap
//	metrics        Recorder with no-op and Prometheus implementations
//	cmd/camarades  command line front end
//
// Determinism: for a fixed configuration (including Seed) and ballot order,
// results are bit-identical regardless of Parallelism.
package camarades
