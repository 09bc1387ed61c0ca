// SPDX-License-Identifier: MIT

package affinity

import (
	"fmt"
	"strings"
)

// Participant is one person taking part in a run. Index is stable for the
// lifetime of the Roster that issued it.
type Participant struct {
	Index int
	Name  string
}

// Roster is the participant arena: names in input order with a name→index table.
// A Roster is immutable once built and safe for concurrent reads.
type Roster struct {
	people []Participant
	index  map[string]int
}

// NewRoster builds a Roster from names in order, dropping every name listed in
// exclusions. Names are compared after trimming surrounding whitespace.
//
// Errors: ErrEmptyName, ErrDuplicateName (wrapped with the offending name).
// An empty result is not an error here; callers decide (see Build).
func NewRoster(names []string, exclusions []string) (*Roster, error) {
	excluded := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		excluded[strings.TrimSpace(e)] = struct{}{}
	}

	r := &Roster{
		people: make([]Participant, 0, len(names)),
		index:  make(map[string]int, len(names)),
	}
	for pos, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("position %d: %w", pos, ErrEmptyName)
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		if _, dup := r.index[name]; dup {
			return nil, fmt.Errorf("participant %q: %w", name, ErrDuplicateName)
		}
		r.index[name] = len(r.people)
		r.people = append(r.people, Participant{Index: len(r.people), Name: name})
	}

	return r, nil
}

// Len returns the number of participants.
func (r *Roster) Len() int { return len(r.people) }

// Name returns the name at index i. It panics on an out-of-range index, like a slice.
func (r *Roster) Name(i int) string { return r.people[i].Name }

// Index returns the index of name and whether it is present.
func (r *Roster) Index(name string) (int, bool) {
	i, ok := r.index[strings.TrimSpace(name)]

	return i, ok
}

// Names returns a copy of all names in index order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.people))
	for i, p := range r.people {
		out[i] = p.Name
	}

	return out
}
