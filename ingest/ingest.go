// SPDX-License-Identifier: MIT

// Package ingest loads preference ballots from files.
//
// Two shapes are accepted:
//   - CSV form exports: one row per voter, an identity column (default "nom")
//     and one column per peer holding the points given to that peer;
//   - YAML or JSON documents with a top-level "ballots" list of
//     {voter, points} entries.
//
// Loaders only parse. Normalization, exclusions and validation of names
// against the roster happen in package affinity.
package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
)

// Sentinel errors.
var (
	ErrMissingFile     = errors.New("ingest: file not found")
	ErrMalformed       = errors.New("ingest: malformed input")
	ErrMissingIdentity = errors.New("ingest: identity column not found")
)

// LoadFile reads ballots from path, choosing the parser by extension:
// .csv uses LoadCSV with opts, .yaml/.yml/.json use LoadDocument.
func LoadFile(path string, opts CSVOptions) ([]affinity.Ballot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}

		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	var ballots []affinity.Ballot
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		ballots, err = LoadCSV(f, opts)
	case ".yaml", ".yml", ".json":
		ballots, err = LoadDocument(f)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported extension %q", ErrMalformed, path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ballots, nil
}

// checkDuplicates rejects a second ballot from the same voter.
func checkDuplicates(ballots []affinity.Ballot) error {
	seen := make(map[string]int, len(ballots))
	for i, b := range ballots {
		name := strings.TrimSpace(b.Voter)
		if first, ok := seen[name]; ok {
			return fmt.Errorf("%w: ballots %d and %d: voter %q: %w", ErrMalformed, first+1, i+1, name, affinity.ErrDuplicateName)
		}
		seen[name] = i
	}

	return nil
}
