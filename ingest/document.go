// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Clement-Szewczyk/clusteringDeCamarades/affinity"
)

// Document is the YAML/JSON ballot file layout.
//
//	ballots:
//	  - voter: Ana
//	    points: {Bob: 60, Cleo: 40}
type Document struct {
	Ballots []affinity.Ballot `json:"ballots" yaml:"ballots"`
}

// LoadDocument decodes a Document. JSON input is read by the same YAML
// decoder. Unknown fields are rejected.
func LoadDocument(r io.Reader) ([]affinity.Ballot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := checkDuplicates(doc.Ballots); err != nil {
		return nil, err
	}

	return doc.Ballots, nil
}

// WriteDocument encodes ballots as a YAML Document.
func WriteDocument(w io.Writer, ballots []affinity.Ballot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Ballots: ballots}); err != nil {
		return fmt.Errorf("ingest: encode: %w", err)
	}

	return enc.Close()
}
