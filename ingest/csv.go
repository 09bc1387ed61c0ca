// SPDX-License-Identifier: MIT

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
)

// DefaultIdentityColumn is the header of the voter name column in form exports.
const DefaultIdentityColumn = "nom"

const utf8BOM = "\ufeff"

// CSVOptions configures LoadCSV. The zero value reads comma-separated files
// with a "nom" identity column.
type CSVOptions struct {
	IdentityColumn string
	Comma          rune
}

func (o CSVOptions) withDefaults() CSVOptions {
	if o.IdentityColumn == "" {
		o.IdentityColumn = DefaultIdentityColumn
	}
	if o.Comma == 0 {
		o.Comma = ','
	}

	return o
}

// LoadCSV parses a form export. Every non-identity column header names a
// peer; its cell holds the points given to that peer. Empty and "NaN" cells
// are skipped. Rows keep file order.
//
// Errors: ErrMissingIdentity when the header lacks the identity column;
// ErrMalformed for unreadable CSV, repeated column headers, non-numeric
// cells and duplicate voters.
func LoadCSV(r io.Reader, opts CSVOptions) ([]affinity.Ballot, error) {
	opts = opts.withDefaults()
	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	id := -1
	seen := make(map[string]int, len(header))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if first, dup := seen[header[i]]; dup && header[i] != "" {
			return nil, fmt.Errorf("%w: column %q repeated at %d and %d", ErrMalformed, header[i], first+1, i+1)
		}
		seen[header[i]] = i
		if header[i] == opts.IdentityColumn && id < 0 {
			id = i
		}
	}
	if id < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingIdentity, opts.IdentityColumn)
	}

	var ballots []affinity.Ballot
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		b := affinity.Ballot{Voter: strings.TrimSpace(record[id]), Points: make(map[string]float64)}
		for col, cell := range record {
			if col == id {
				continue
			}
			v, ok, err := parsePoints(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %q: %w", ErrMalformed, line, header[col], err)
			}
			if ok {
				b.Points[header[col]] = v
			}
		}
		ballots = append(ballots, b)
	}
	if err := checkDuplicates(ballots); err != nil {
		return nil, err
	}

	return ballots, nil
}

// parsePoints reads one cell. ok is false for blank and NaN cells.
func parsePoints(cell string) (float64, bool, error) {
	s := strings.TrimSpace(cell)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("infinite value %q", s)
	}

	return v, true, nil
}
