package dataset

import "errors"

var ErrEmptyStore = errors.New("no dataset has been imported")

// Store holds the dataset for the current session. Each successful import
// replaces the held dataset wholesale. Training reads the held dataset but
// must not mutate it. Access is single threaded by design since every user
// action runs to completion before the next is accepted.
type Store struct {
	d *Dataset
}

func NewStore() *Store {
	return &Store{}
}

// Replace swaps out any previously held dataset.
func (s *Store) Replace(d *Dataset) {
	s.d = d
}

// Current returns the held dataset or ErrEmptyStore if no import has
// occurred yet.
func (s *Store) Current() (*Dataset, error) {
	if s.d == nil {
		return nil, ErrEmptyStore
	}
	return s.d, nil
}

func (s *Store) Clear() {
	s.d = nil
}
